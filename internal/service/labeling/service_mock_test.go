package labeling

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Tag, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *tagRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if mock.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
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

func (mock *tagRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ sentenceRepo = &sentenceRepoMock{}

type sentenceRepoMock struct {
	GetByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	ListUnlabeledInDatasetsFunc func(ctx context.Context, datasetIDs []uuid.UUID) ([]domain.Sentence, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListUnlabeledInDatasets []struct {
			Ctx        context.Context
			DatasetIDs []uuid.UUID
		}
	}
	lockGetByID                 sync.RWMutex
	lockListUnlabeledInDatasets sync.RWMutex
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

func (mock *sentenceRepoMock) ListUnlabeledInDatasets(ctx context.Context, datasetIDs []uuid.UUID) ([]domain.Sentence, error) {
	if mock.ListUnlabeledInDatasetsFunc == nil {
		panic("sentenceRepoMock.ListUnlabeledInDatasetsFunc: method is nil but sentenceRepo.ListUnlabeledInDatasets was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DatasetIDs []uuid.UUID
	}{Ctx: ctx, DatasetIDs: datasetIDs}
	mock.lockListUnlabeledInDatasets.Lock()
	mock.calls.ListUnlabeledInDatasets = append(mock.calls.ListUnlabeledInDatasets, callInfo)
	mock.lockListUnlabeledInDatasets.Unlock()
	return mock.ListUnlabeledInDatasetsFunc(ctx, datasetIDs)
}

func (mock *sentenceRepoMock) ListUnlabeledInDatasetsCalls() []struct {
	Ctx        context.Context
	DatasetIDs []uuid.UUID
} {
	mock.lockListUnlabeledInDatasets.RLock()
	calls := mock.calls.ListUnlabeledInDatasets
	mock.lockListUnlabeledInDatasets.RUnlock()
	return calls
}

var _ labelRepo = &labelRepoMock{}

type labelRepoMock struct {
	CreateFunc              func(ctx context.Context, ls *domain.LabeledSentence) (*domain.LabeledSentence, error)
	ListByDatasetAndTagFunc func(ctx context.Context, datasetID uuid.UUID, tagID uuid.UUID) ([]domain.LabeledSentenceView, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ls  *domain.LabeledSentence
		}
		ListByDatasetAndTag []struct {
			Ctx       context.Context
			DatasetID uuid.UUID
			TagID     uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockListByDatasetAndTag sync.RWMutex
}

func (mock *labelRepoMock) Create(ctx context.Context, ls *domain.LabeledSentence) (*domain.LabeledSentence, error) {
	if mock.CreateFunc == nil {
		panic("labelRepoMock.CreateFunc: method is nil but labelRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ls  *domain.LabeledSentence
	}{Ctx: ctx, Ls: ls}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ls)
}

func (mock *labelRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ls  *domain.LabeledSentence
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *labelRepoMock) ListByDatasetAndTag(ctx context.Context, datasetID uuid.UUID, tagID uuid.UUID) ([]domain.LabeledSentenceView, error) {
	if mock.ListByDatasetAndTagFunc == nil {
		panic("labelRepoMock.ListByDatasetAndTagFunc: method is nil but labelRepo.ListByDatasetAndTag was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DatasetID uuid.UUID
		TagID     uuid.UUID
	}{Ctx: ctx, DatasetID: datasetID, TagID: tagID}
	mock.lockListByDatasetAndTag.Lock()
	mock.calls.ListByDatasetAndTag = append(mock.calls.ListByDatasetAndTag, callInfo)
	mock.lockListByDatasetAndTag.Unlock()
	return mock.ListByDatasetAndTagFunc(ctx, datasetID, tagID)
}

func (mock *labelRepoMock) ListByDatasetAndTagCalls() []struct {
	Ctx       context.Context
	DatasetID uuid.UUID
	TagID     uuid.UUID
} {
	mock.lockListByDatasetAndTag.RLock()
	calls := mock.calls.ListByDatasetAndTag
	mock.lockListByDatasetAndTag.RUnlock()
	return calls
}

var _ accessGuard = &accessGuardMock{}

type accessGuardMock struct {
	CurrentOperatorFunc   func(ctx context.Context) (*domain.Operator, error)
	RequireAccessFunc     func(ctx context.Context, datasetID uuid.UUID) (*domain.Operator, error)
	PermittedDatasetsFunc func(ctx context.Context, operatorID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		CurrentOperator []struct {
			Ctx context.Context
		}
		RequireAccess []struct {
			Ctx       context.Context
			DatasetID uuid.UUID
		}
		PermittedDatasets []struct {
			Ctx        context.Context
			OperatorID uuid.UUID
		}
	}
	lockCurrentOperator   sync.RWMutex
	lockRequireAccess     sync.RWMutex
	lockPermittedDatasets sync.RWMutex
}

func (mock *accessGuardMock) CurrentOperator(ctx context.Context) (*domain.Operator, error) {
	if mock.CurrentOperatorFunc == nil {
		panic("accessGuardMock.CurrentOperatorFunc: method is nil but accessGuard.CurrentOperator was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCurrentOperator.Lock()
	mock.calls.CurrentOperator = append(mock.calls.CurrentOperator, callInfo)
	mock.lockCurrentOperator.Unlock()
	return mock.CurrentOperatorFunc(ctx)
}

func (mock *accessGuardMock) CurrentOperatorCalls() []struct {
	Ctx context.Context
} {
	mock.lockCurrentOperator.RLock()
	calls := mock.calls.CurrentOperator
	mock.lockCurrentOperator.RUnlock()
	return calls
}

func (mock *accessGuardMock) RequireAccess(ctx context.Context, datasetID uuid.UUID) (*domain.Operator, error) {
	if mock.RequireAccessFunc == nil {
		panic("accessGuardMock.RequireAccessFunc: method is nil but accessGuard.RequireAccess was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DatasetID uuid.UUID
	}{Ctx: ctx, DatasetID: datasetID}
	mock.lockRequireAccess.Lock()
	mock.calls.RequireAccess = append(mock.calls.RequireAccess, callInfo)
	mock.lockRequireAccess.Unlock()
	return mock.RequireAccessFunc(ctx, datasetID)
}

func (mock *accessGuardMock) RequireAccessCalls() []struct {
	Ctx       context.Context
	DatasetID uuid.UUID
} {
	mock.lockRequireAccess.RLock()
	calls := mock.calls.RequireAccess
	mock.lockRequireAccess.RUnlock()
	return calls
}

func (mock *accessGuardMock) PermittedDatasets(ctx context.Context, operatorID uuid.UUID) ([]uuid.UUID, error) {
	if mock.PermittedDatasetsFunc == nil {
		panic("accessGuardMock.PermittedDatasetsFunc: method is nil but accessGuard.PermittedDatasets was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OperatorID uuid.UUID
	}{Ctx: ctx, OperatorID: operatorID}
	mock.lockPermittedDatasets.Lock()
	mock.calls.PermittedDatasets = append(mock.calls.PermittedDatasets, callInfo)
	mock.lockPermittedDatasets.Unlock()
	return mock.PermittedDatasetsFunc(ctx, operatorID)
}

func (mock *accessGuardMock) PermittedDatasetsCalls() []struct {
	Ctx        context.Context
	OperatorID uuid.UUID
} {
	mock.lockPermittedDatasets.RLock()
	calls := mock.calls.PermittedDatasets
	mock.lockPermittedDatasets.RUnlock()
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

var _ labelRecorder = &labelRecorderMock{}

type labelRecorderMock struct {
	LabelCreatedFunc func()

	calls struct {
		LabelCreated []struct{}
	}
	lockLabelCreated sync.RWMutex
}

func (mock *labelRecorderMock) LabelCreated() {
	if mock.LabelCreatedFunc == nil {
		panic("labelRecorderMock.LabelCreatedFunc: method is nil but labelRecorder.LabelCreated was just called")
	}
	callInfo := struct{}{}
	mock.lockLabelCreated.Lock()
	mock.calls.LabelCreated = append(mock.calls.LabelCreated, callInfo)
	mock.lockLabelCreated.Unlock()
	mock.LabelCreatedFunc()
}

func (mock *labelRecorderMock) LabelCreatedCalls() []struct{} {
	mock.lockLabelCreated.RLock()
	calls := mock.calls.LabelCreated
	mock.lockLabelCreated.RUnlock()
	return calls
}
