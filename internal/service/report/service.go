// Package report builds the daily per-operator labeling activity report.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

type activityRepo interface {
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.LabelActivity, error)
}

type reportRecorder interface {
	ReportGenerated()
}

// Config holds report output settings.
type Config struct {
	Dir      string
	Location *time.Location
}

// Service generates and persists activity reports.
type Service struct {
	labels  activityRepo
	metrics reportRecorder
	cfg     Config
	log     *slog.Logger
}

// NewService creates a new Report service. A nil location means UTC.
func NewService(log *slog.Logger, labels activityRepo, metrics reportRecorder, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		labels:  labels,
		metrics: metrics,
		cfg:     cfg,
		log:     log.With("service", "report"),
	}
}
