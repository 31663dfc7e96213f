package rest

import (
	"time"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

type datasetResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toDatasetResponse(d *domain.Dataset) datasetResponse {
	return datasetResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type tagResponse struct {
	ID        string    `json:"id"`
	DatasetID string    `json:"datasetId"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTagResponse(t *domain.Tag) tagResponse {
	return tagResponse{
		ID:        t.ID.String(),
		DatasetID: t.DatasetID.String(),
		Name:      t.Name,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

type sentenceResponse struct {
	ID        string    `json:"id"`
	DatasetID *string   `json:"datasetId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSentenceResponse(s *domain.Sentence) sentenceResponse {
	resp := sentenceResponse{
		ID:        s.ID.String(),
		Body:      s.Body,
		CreatedAt: s.CreatedAt,
	}
	if s.DatasetID != nil {
		id := s.DatasetID.String()
		resp.DatasetID = &id
	}
	return resp
}

type labelResponse struct {
	ID         string    `json:"id"`
	SentenceID string    `json:"sentenceId"`
	TagID      string    `json:"tagId"`
	OperatorID string    `json:"operatorId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toLabelResponse(l *domain.LabeledSentence) labelResponse {
	return labelResponse{
		ID:         l.ID.String(),
		SentenceID: l.SentenceID.String(),
		TagID:      l.TagID.String(),
		OperatorID: l.OperatorID.String(),
		CreatedAt:  l.CreatedAt,
	}
}

type labeledSentenceResponse struct {
	labelResponse
	DatasetID string `json:"datasetId"`
	Sentence  string `json:"sentence"`
	Tag       string `json:"tag"`
}

func toLabeledSentenceResponse(v *domain.LabeledSentenceView) labeledSentenceResponse {
	return labeledSentenceResponse{
		labelResponse: toLabelResponse(&v.LabeledSentence),
		DatasetID:     v.DatasetID.String(),
		Sentence:      v.SentenceBody,
		Tag:           v.TagName,
	}
}

type permissionResponse struct {
	ID         string    `json:"id"`
	DatasetID  string    `json:"datasetId"`
	OperatorID string    `json:"operatorId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toPermissionResponse(p *domain.Permission) permissionResponse {
	return permissionResponse{
		ID:         p.ID.String(),
		DatasetID:  p.DatasetID.String(),
		OperatorID: p.OperatorID.String(),
		CreatedAt:  p.CreatedAt,
	}
}

type operatorResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toOperatorResponse(o *domain.Operator) operatorResponse {
	return operatorResponse{
		ID:        o.ID.String(),
		UserID:    o.UserID.String(),
		Username:  o.Username,
		CreatedAt: o.CreatedAt,
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt,
	}
}

// mapSlice converts a slice of domain values with a pointer-taking mapper.
// The result is never nil so empty lists encode as [].
func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}
