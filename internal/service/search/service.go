// Package search runs full-text queries over labeled sentences.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

type labelSearcher interface {
	Search(ctx context.Context, datasetID uuid.UUID, textConfig, query string) ([]domain.LabeledSentenceView, error)
}

type accessGuard interface {
	RequireAccess(ctx context.Context, datasetID uuid.UUID) (*domain.Operator, error)
}

// Config holds full-text search settings.
type Config struct {
	TextConfig string
}

// Service answers dataset-scoped search queries.
type Service struct {
	labels labelSearcher
	access accessGuard
	cfg    Config
	log    *slog.Logger
}

// NewService creates a new Search service.
func NewService(log *slog.Logger, labels labelSearcher, access accessGuard, cfg Config) *Service {
	return &Service{
		labels: labels,
		access: access,
		cfg:    cfg,
		log:    log.With("service", "search"),
	}
}

// Search returns every labeled sentence of the dataset whose sentence text,
// dataset name and description or tag name match the query, best matches
// first. Permission is checked before the query is looked at.
func (s *Service) Search(ctx context.Context, datasetID uuid.UUID, query string) ([]domain.LabeledSentenceView, error) {
	if _, err := s.access.RequireAccess(ctx, datasetID); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("subject", "required")
	}

	results, err := s.labels.Search(ctx, datasetID, s.cfg.TextConfig, query)
	if err != nil {
		return nil, fmt.Errorf("search labels: %w", err)
	}

	s.log.DebugContext(ctx, "search executed",
		slog.String("dataset_id", datasetID.String()),
		slog.Int("results", len(results)),
	)

	return results, nil
}
