package rest

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/internal/service/auth"
	"github.com/heartmarshall/tagger-backend/internal/service/dataset"
	"github.com/heartmarshall/tagger-backend/internal/service/labeling"
	"github.com/heartmarshall/tagger-backend/internal/service/permission"
	"github.com/heartmarshall/tagger-backend/internal/service/sentence"
	"github.com/heartmarshall/tagger-backend/internal/service/tag"
	"github.com/heartmarshall/tagger-backend/internal/service/user"
)

// Fakes return zero values unless a func is set, so routing tests only wire
// what they assert on.

type fakeAuth struct {
	login func(ctx context.Context, in auth.LoginInput) (*auth.LoginResult, error)
}

func (f *fakeAuth) Login(ctx context.Context, in auth.LoginInput) (*auth.LoginResult, error) {
	return f.login(ctx, in)
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (*domain.User, error) {
	return &domain.User{Username: "me"}, nil
}

type fakeDatasets struct {
	create func(ctx context.Context, in dataset.CreateDatasetInput) (*domain.Dataset, error)
	update func(ctx context.Context, in dataset.UpdateDatasetInput) (*domain.Dataset, error)
}

func (f *fakeDatasets) GetDataset(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	return &domain.Dataset{ID: id}, nil
}

func (f *fakeDatasets) ListDatasets(ctx context.Context) ([]domain.Dataset, error) { return nil, nil }

func (f *fakeDatasets) CreateDataset(ctx context.Context, in dataset.CreateDatasetInput) (*domain.Dataset, error) {
	return f.create(ctx, in)
}

func (f *fakeDatasets) UpdateDataset(ctx context.Context, in dataset.UpdateDatasetInput) (*domain.Dataset, error) {
	return f.update(ctx, in)
}

func (f *fakeDatasets) DeleteDataset(ctx context.Context, id uuid.UUID) error { return nil }

type fakeTags struct {
	setActive func(ctx context.Context, id uuid.UUID, active bool) (*domain.Tag, error)
}

func (f *fakeTags) ListActiveTags(ctx context.Context, datasetID uuid.UUID) ([]domain.Tag, error) {
	return []domain.Tag{{DatasetID: datasetID, Name: "positive", IsActive: true}}, nil
}

func (f *fakeTags) ListAllTags(ctx context.Context, datasetID uuid.UUID) ([]domain.Tag, error) {
	return nil, nil
}

func (f *fakeTags) CreateTag(ctx context.Context, in tag.CreateTagInput) (*domain.Tag, error) {
	return &domain.Tag{DatasetID: in.DatasetID, Name: in.Name, IsActive: in.IsActive}, nil
}

func (f *fakeTags) SetTagActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tag, error) {
	return f.setActive(ctx, id, active)
}

func (f *fakeTags) DeleteTag(ctx context.Context, id uuid.UUID) error { return nil }

type fakeSentences struct {
	bulkImport func(ctx context.Context, datasetID uuid.UUID, r io.Reader) (*domain.ImportResult, error)
}

func (f *fakeSentences) ListSentences(ctx context.Context, datasetID uuid.UUID) ([]domain.Sentence, error) {
	return nil, nil
}

func (f *fakeSentences) CreateSentence(ctx context.Context, in sentence.CreateSentenceInput) (*domain.Sentence, error) {
	return &domain.Sentence{DatasetID: &in.DatasetID, Body: in.Body}, nil
}

func (f *fakeSentences) DeleteSentence(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeSentences) BulkImport(ctx context.Context, datasetID uuid.UUID, r io.Reader) (*domain.ImportResult, error) {
	return f.bulkImport(ctx, datasetID, r)
}

type fakeLabeling struct {
	label  func(ctx context.Context, in labeling.LabelInput) (*domain.LabeledSentence, error)
	search func(ctx context.Context, datasetID uuid.UUID, q string) ([]domain.LabeledSentenceView, error)
}

func (f *fakeLabeling) Label(ctx context.Context, in labeling.LabelInput) (*domain.LabeledSentence, error) {
	return f.label(ctx, in)
}

func (f *fakeLabeling) ListUnlabeled(ctx context.Context) ([]domain.Sentence, error) {
	return []domain.Sentence{}, nil
}

func (f *fakeLabeling) ListByTag(ctx context.Context, datasetID, tagID uuid.UUID) ([]domain.LabeledSentenceView, error) {
	return nil, nil
}

func (f *fakeLabeling) Search(ctx context.Context, datasetID uuid.UUID, q string) ([]domain.LabeledSentenceView, error) {
	return f.search(ctx, datasetID, q)
}

type fakeAdmin struct {
	grant func(ctx context.Context, in permission.GrantInput) (*domain.Permission, error)
	list  func(ctx context.Context, filter domain.PermissionFilter) ([]domain.Permission, error)
}

func (f *fakeAdmin) ListPermissions(ctx context.Context, filter domain.PermissionFilter) ([]domain.Permission, error) {
	return f.list(ctx, filter)
}

func (f *fakeAdmin) GrantPermission(ctx context.Context, in permission.GrantInput) (*domain.Permission, error) {
	return f.grant(ctx, in)
}

func (f *fakeAdmin) UpdatePermission(ctx context.Context, id uuid.UUID, in permission.GrantInput) (*domain.Permission, error) {
	return &domain.Permission{ID: id, DatasetID: in.DatasetID, OperatorID: in.OperatorID}, nil
}

func (f *fakeAdmin) RevokePermission(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeAdmin) CreateUser(ctx context.Context, in user.CreateUserInput) (*domain.User, error) {
	return &domain.User{Username: in.Username, IsAdmin: in.IsAdmin}, nil
}

func (f *fakeAdmin) ProvisionOperator(ctx context.Context, userID uuid.UUID) (*domain.Operator, error) {
	return &domain.Operator{UserID: userID}, nil
}

func (f *fakeAdmin) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	return []domain.Operator{{Username: "alice"}}, nil
}
