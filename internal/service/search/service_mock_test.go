package search

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

var _ labelSearcher = &labelSearcherMock{}

type labelSearcherMock struct {
	SearchFunc func(ctx context.Context, datasetID uuid.UUID, textConfig string, query string) ([]domain.LabeledSentenceView, error)

	calls struct {
		Search []struct {
			Ctx        context.Context
			DatasetID  uuid.UUID
			TextConfig string
			Query      string
		}
	}
	lockSearch sync.RWMutex
}

func (mock *labelSearcherMock) Search(ctx context.Context, datasetID uuid.UUID, textConfig string, query string) ([]domain.LabeledSentenceView, error) {
	if mock.SearchFunc == nil {
		panic("labelSearcherMock.SearchFunc: method is nil but labelSearcher.Search was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DatasetID  uuid.UUID
		TextConfig string
		Query      string
	}{Ctx: ctx, DatasetID: datasetID, TextConfig: textConfig, Query: query}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, datasetID, textConfig, query)
}

func (mock *labelSearcherMock) SearchCalls() []struct {
	Ctx        context.Context
	DatasetID  uuid.UUID
	TextConfig string
	Query      string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

var _ accessGuard = &accessGuardMock{}

type accessGuardMock struct {
	RequireAccessFunc func(ctx context.Context, datasetID uuid.UUID) (*domain.Operator, error)

	calls struct {
		RequireAccess []struct {
			Ctx       context.Context
			DatasetID uuid.UUID
		}
	}
	lockRequireAccess sync.RWMutex
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
