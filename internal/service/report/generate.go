package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

const dayLayout = "2006-01-02"

// DayStart returns midnight of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Generate counts the labels each operator created on the calendar day
// containing day, in the configured time zone. Operators without labels
// that day are absent. Rows are ordered by username, then operator id.
func (s *Service) Generate(ctx context.Context, day time.Time) (*domain.ActivityReport, error) {
	from := DayStart(day, s.cfg.Location)
	to := from.AddDate(0, 0, 1)

	activity, err := s.labels.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	byOperator := make(map[uuid.UUID]*domain.OperatorActivity)
	for _, a := range activity {
		row, ok := byOperator[a.OperatorID]
		if !ok {
			row = &domain.OperatorActivity{OperatorID: a.OperatorID, Username: a.Username}
			byOperator[a.OperatorID] = row
		}
		row.Count++
	}

	report := &domain.ActivityReport{
		Day:        from,
		Operators:  make([]domain.OperatorActivity, 0, len(byOperator)),
		TotalCount: len(activity),
	}
	for _, row := range byOperator {
		report.Operators = append(report.Operators, *row)
	}
	sort.Slice(report.Operators, func(i, j int) bool {
		a, b := report.Operators[i], report.Operators[j]
		if a.Username != b.Username {
			return a.Username < b.Username
		}
		return a.OperatorID.String() < b.OperatorID.String()
	})

	return report, nil
}

// Render formats a report as plain text.
func Render(report *domain.ActivityReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily Activity Report for %s\n", report.Day.Format(dayLayout))
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")
	for _, row := range report.Operators {
		fmt.Fprintf(&b, "Operator %s performed %d actions today.\n", row.Username, row.Count)
	}
	return b.String()
}

// FileName is the report file name for the given day.
func FileName(day time.Time) string {
	return "daily_activity_report_" + day.Format(dayLayout) + ".txt"
}
