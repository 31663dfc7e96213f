package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/internal/service/sentence"
)

type sentenceService interface {
	ListSentences(ctx context.Context, datasetID uuid.UUID) ([]domain.Sentence, error)
	CreateSentence(ctx context.Context, input sentence.CreateSentenceInput) (*domain.Sentence, error)
	DeleteSentence(ctx context.Context, sentenceID uuid.UUID) error
	BulkImport(ctx context.Context, datasetID uuid.UUID, r io.Reader) (*domain.ImportResult, error)
}

// SentenceHandler serves the sentence catalog and CSV uploads.
type SentenceHandler struct {
	svc            sentenceService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewSentenceHandler creates a SentenceHandler. Uploads larger than
// maxUploadBytes are rejected with 413.
func NewSentenceHandler(svc sentenceService, maxUploadBytes int64, logger *slog.Logger) *SentenceHandler {
	return &SentenceHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "sentence"),
	}
}

type createSentenceRequest struct {
	Body string `json:"body"`
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// List handles GET /api/datasets/{datasetID}/sentences.
func (h *SentenceHandler) List(w http.ResponseWriter, r *http.Request) {
	datasetID, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, err := h.svc.ListSentences(r.Context(), datasetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toSentenceResponse))
}

// Create handles POST /api/datasets/{datasetID}/sentences.
func (h *SentenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	datasetID, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req createSentenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	s, err := h.svc.CreateSentence(r.Context(), sentence.CreateSentenceInput{
		DatasetID: datasetID,
		Body:      req.Body,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSentenceResponse(s))
}

// Delete handles DELETE /api/sentences/{sentenceID}.
func (h *SentenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sentenceID, err := pathUUID(r, "sentenceID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteSentence(r.Context(), sentenceID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /api/datasets/{datasetID}/sentences/import. The CSV is
// either the multipart field "file" or the raw request body.
func (h *SentenceHandler) Import(w http.ResponseWriter, r *http.Request) {
	datasetID, err := pathUUID(r, "datasetID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	body := &limitedBody{r: http.MaxBytesReader(w, r.Body, h.maxUploadBytes)}

	var src io.Reader = body
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "multipart/form-data" {
		r.Body = body
		part, err := findFilePart(r)
		if err != nil {
			if body.tooLarge {
				writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
				return
			}
			respondError(w, r, h.log, err)
			return
		}
		defer part.Close()
		src = part
	}

	result, err := h.svc.BulkImport(r.Context(), datasetID, src)
	if body.tooLarge {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{Imported: result.Imported, Skipped: result.Skipped})
}

// findFilePart streams the multipart body up to the "file" field.
func findFilePart(r *http.Request) (io.ReadCloser, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, domain.NewValidationError("file", "malformed multipart body")
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("file", "required")
		}
		if err != nil {
			return nil, domain.NewValidationError("file", "malformed multipart body")
		}
		if part.FormName() == "file" {
			return part, nil
		}
		part.Close()
	}
}

// limitedBody remembers whether the size limit was hit, since the CSV reader
// downstream reports it only as a generic read failure.
type limitedBody struct {
	r        io.ReadCloser
	tooLarge bool
}

func (b *limitedBody) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		b.tooLarge = true
	}
	return n, err
}

func (b *limitedBody) Close() error { return b.r.Close() }
