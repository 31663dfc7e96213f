package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Run generates the report for the day containing day and writes it to
// <dir>/daily_activity_report_<YYYY-MM-DD>.txt, replacing an earlier file
// for the same day. It returns the written path.
func (s *Service) Run(ctx context.Context, day time.Time) (string, error) {
	report, err := s.Generate(ctx, day)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(s.cfg.Dir, FileName(report.Day))
	if err := writeFileAtomic(path, []byte(Render(report))); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	s.metrics.ReportGenerated()

	s.log.InfoContext(ctx, "report saved",
		slog.String("path", path),
		slog.String("day", report.Day.Format(dayLayout)),
		slog.Int("operators", len(report.Operators)),
		slog.Int("total", report.TotalCount),
	)

	return path, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
