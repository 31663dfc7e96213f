package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/internal/service/dataset"
)

type datasetService interface {
	GetDataset(ctx context.Context, datasetID uuid.UUID) (*domain.Dataset, error)
	ListDatasets(ctx context.Context) ([]domain.Dataset, error)
	CreateDataset(ctx context.Context, input dataset.CreateDatasetInput) (*domain.Dataset, error)
	UpdateDataset(ctx context.Context, input dataset.UpdateDatasetInput) (*domain.Dataset, error)
	DeleteDataset(ctx context.Context, datasetID uuid.UUID) error
}

// DatasetHandler serves dataset administration.
type DatasetHandler struct {
	svc datasetService
	log *slog.Logger
}

// NewDatasetHandler creates a DatasetHandler.
func NewDatasetHandler(svc datasetService, logger *slog.Logger) *DatasetHandler {
	return &DatasetHandler{svc: svc, log: logger.With("handler", "dataset")}
}

type createDatasetRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateDatasetRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /api/datasets.
func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListDatasets(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toDatasetResponse))
}

// Get handles GET /api/datasets/{datasetID}.
func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ds, err := h.svc.GetDataset(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDatasetResponse(ds))
}

// Create handles POST /api/datasets.
func (h *DatasetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDatasetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ds, err := h.svc.CreateDataset(r.Context(), dataset.CreateDatasetInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDatasetResponse(ds))
}

// Update handles PUT /api/datasets/{datasetID}. Omitted fields are kept.
func (h *DatasetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateDatasetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ds, err := h.svc.UpdateDataset(r.Context(), dataset.UpdateDatasetInput{
		DatasetID:   id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDatasetResponse(ds))
}

// Delete handles DELETE /api/datasets/{datasetID}.
func (h *DatasetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteDataset(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
