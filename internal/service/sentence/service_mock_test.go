package sentence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

var _ sentenceRepo = &sentenceRepoMock{}

type sentenceRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	ListByDatasetFunc func(ctx context.Context, datasetID uuid.UUID) ([]domain.Sentence, error)
	CreateFunc        func(ctx context.Context, s *domain.Sentence) (*domain.Sentence, error)
	BulkInsertFunc    func(ctx context.Context, sentences []domain.Sentence) (int, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByDataset []struct {
			Ctx       context.Context
			DatasetID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Sentence
		}
		BulkInsert []struct {
			Ctx       context.Context
			Sentences []domain.Sentence
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID       sync.RWMutex
	lockListByDataset sync.RWMutex
	lockCreate        sync.RWMutex
	lockBulkInsert    sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *sentenceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	if mock.GetByIDFunc == nil {
		panic("sentenceRepoMock.GetByIDFunc: method is nil but sentenceRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sentenceRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sentenceRepoMock) ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.Sentence, error) {
	if mock.ListByDatasetFunc == nil {
		panic("sentenceRepoMock.ListByDatasetFunc: method is nil but sentenceRepo.ListByDataset was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DatasetID uuid.UUID
	}{Ctx: ctx, DatasetID: datasetID}
	mock.lockListByDataset.Lock()
	mock.calls.ListByDataset = append(mock.calls.ListByDataset, callInfo)
	mock.lockListByDataset.Unlock()
	return mock.ListByDatasetFunc(ctx, datasetID)
}

func (mock *sentenceRepoMock) ListByDatasetCalls() []struct {
	Ctx       context.Context
	DatasetID uuid.UUID
} {
	mock.lockListByDataset.RLock()
	calls := mock.calls.ListByDataset
	mock.lockListByDataset.RUnlock()
	return calls
}

func (mock *sentenceRepoMock) Create(ctx context.Context, s *domain.Sentence) (*domain.Sentence, error) {
	if mock.CreateFunc == nil {
		panic("sentenceRepoMock.CreateFunc: method is nil but sentenceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Sentence
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sentenceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Sentence
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sentenceRepoMock) BulkInsert(ctx context.Context, sentences []domain.Sentence) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("sentenceRepoMock.BulkInsertFunc: method is nil but sentenceRepo.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Sentences []domain.Sentence
	}{Ctx: ctx, Sentences: sentences}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, sentences)
}

func (mock *sentenceRepoMock) BulkInsertCalls() []struct {
	Ctx       context.Context
	Sentences []domain.Sentence
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}

func (mock *sentenceRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sentenceRepoMock.DeleteFunc: method is nil but sentenceRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sentenceRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ datasetRepo = &datasetRepoMock{}

type datasetRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *datasetRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	if mock.GetByIDFunc == nil {
		panic("datasetRepoMock.GetByIDFunc: method is nil but datasetRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *datasetRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ importRecorder = &importRecorderMock{}

type importRecorderMock struct {
	SentencesImportedFunc func(n int)

	calls struct {
		SentencesImported []struct {
			N int
		}
	}
	lockSentencesImported sync.RWMutex
}

func (mock *importRecorderMock) SentencesImported(n int) {
	if mock.SentencesImportedFunc == nil {
		panic("importRecorderMock.SentencesImportedFunc: method is nil but importRecorder.SentencesImported was just called")
	}
	callInfo := struct {
		N int
	}{N: n}
	mock.lockSentencesImported.Lock()
	mock.calls.SentencesImported = append(mock.calls.SentencesImported, callInfo)
	mock.lockSentencesImported.Unlock()
	mock.SentencesImportedFunc(n)
}

func (mock *importRecorderMock) SentencesImportedCalls() []struct {
	N int
} {
	mock.lockSentencesImported.RLock()
	calls := mock.calls.SentencesImported
	mock.lockSentencesImported.RUnlock()
	return calls
}
