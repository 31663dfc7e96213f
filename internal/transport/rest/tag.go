package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/internal/service/tag"
)

type tagService interface {
	ListActiveTags(ctx context.Context, datasetID uuid.UUID) ([]domain.Tag, error)
	ListAllTags(ctx context.Context, datasetID uuid.UUID) ([]domain.Tag, error)
	CreateTag(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	SetTagActive(ctx context.Context, tagID uuid.UUID, active bool) (*domain.Tag, error)
	DeleteTag(ctx context.Context, tagID uuid.UUID) error
}

// TagHandler serves the tag catalog.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

type createTagRequest struct {
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

type patchTagRequest struct {
	IsActive *bool `json:"isActive"`
}

// ListActive handles GET /api/datasets/{datasetID}/tags.
func (h *TagHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListActiveTags)
}

// ListAll handles GET /api/datasets/{datasetID}/tags/all.
func (h *TagHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListAllTags)
}

func (h *TagHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, uuid.UUID) ([]domain.Tag, error)) {
	datasetID, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	tags, err := fetch(r.Context(), datasetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(tags, toTagResponse))
}

// Create handles POST /api/datasets/{datasetID}/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	datasetID, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req createTagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.CreateTag(r.Context(), tag.CreateTagInput{
		DatasetID: datasetID,
		Name:      req.Name,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTagResponse(t))
}

// Patch handles PATCH /api/tags/{tagID}. Only the active flag is mutable.
func (h *TagHandler) Patch(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathUUID(r, "tagID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req patchTagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.IsActive == nil {
		respondError(w, r, h.log, domain.NewValidationError("isActive", "required"))
		return
	}

	t, err := h.svc.SetTagActive(r.Context(), tagID, *req.IsActive)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(t))
}

// Delete handles DELETE /api/tags/{tagID}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathUUID(r, "tagID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTag(r.Context(), tagID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
