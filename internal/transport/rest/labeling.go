package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/internal/service/labeling"
)

type labelingService interface {
	Label(ctx context.Context, input labeling.LabelInput) (*domain.LabeledSentence, error)
	ListUnlabeled(ctx context.Context) ([]domain.Sentence, error)
	ListByTag(ctx context.Context, datasetID, tagID uuid.UUID) ([]domain.LabeledSentenceView, error)
}

type searchService interface {
	Search(ctx context.Context, datasetID uuid.UUID, query string) ([]domain.LabeledSentenceView, error)
}

// LabelingHandler serves the operator-facing workflow.
type LabelingHandler struct {
	labels labelingService
	search searchService
	log    *slog.Logger
}

// NewLabelingHandler creates a LabelingHandler.
func NewLabelingHandler(labels labelingService, search searchService, logger *slog.Logger) *LabelingHandler {
	return &LabelingHandler{
		labels: labels,
		search: search,
		log:    logger.With("handler", "labeling"),
	}
}

type labelRequest struct {
	SentenceID string `json:"sentenceId"`
	TagID      string `json:"tagId"`
}

// Label handles POST /api/labels.
func (h *LabelingHandler) Label(w http.ResponseWriter, r *http.Request) {
	var req labelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	sentenceID, err := parseUUIDField("sentenceId", req.SentenceID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	tagID, err := parseUUIDField("tagId", req.TagID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	label, err := h.labels.Label(r.Context(), labeling.LabelInput{SentenceID: sentenceID, TagID: tagID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLabelResponse(label))
}

// Unlabeled handles GET /api/sentences/unlabeled.
func (h *LabelingHandler) Unlabeled(w http.ResponseWriter, r *http.Request) {
	items, err := h.labels.ListUnlabeled(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toSentenceResponse))
}

// ByTag handles GET /api/datasets/{datasetID}/tags/{tagID}/labels.
func (h *LabelingHandler) ByTag(w http.ResponseWriter, r *http.Request) {
	datasetID, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	tagID, err := pathUUID(r, "tagID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, err := h.labels.ListByTag(r.Context(), datasetID, tagID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toLabeledSentenceResponse))
}

// Search handles GET /api/datasets/{datasetID}/search?subject=...
// "q" is accepted as an alias of "subject".
func (h *LabelingHandler) Search(w http.ResponseWriter, r *http.Request) {
	datasetID, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	query := r.URL.Query().Get("subject")
	if query == "" {
		query = r.URL.Query().Get("q")
	}

	items, err := h.search.Search(r.Context(), datasetID, query)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toLabeledSentenceResponse))
}
