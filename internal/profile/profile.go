// Package profile assembles the dashboard view of a student's enrollments:
// confirmed vs pending, joined against event records, plus coverage gaps
// across fest days and categories.
package profile

import (
	"context"
	"errors"
	"fmt"

	"festfront/internal/models"
	"festfront/internal/upstream"
)

// The fest runs three days, and full participation covers every category.
const (
	FirstDay = 1
	LastDay  = 3
)

var Categories = []string{"technical", "cultural", "sports", "gaming"}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSource
type EventSource interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
}

// Entry is an enrollment joined with its event record.
type Entry struct {
	Enrollment models.Enrollment `json:"enrollment"`
	Event      models.Event      `json:"event"`
}

type Summary struct {
	Confirmed []Entry  `json:"confirmed"`
	Pending   []Entry  `json:"pending"`
	Gaps      []string `json:"gaps,omitempty"`
}

// BelongsTo decides whether an enrollment counts for a student. The roster
// always contains the enroller, so matching on team membership also covers
// records the student created; this is the policy that shows a team event on
// every member's profile.
func BelongsTo(e models.Enrollment, rollNumber string) bool {
	return e.HasMember(rollNumber)
}

// Build joins the student's enrollments with their events and partitions
// them by payment state. Enrollments whose event no longer exists are
// skipped rather than failing the whole view.
func Build(ctx context.Context, src EventSource, transactions []models.Enrollment, rollNumber string) (*Summary, error) {
	summary := &Summary{}

	for _, tx := range transactions {
		if !BelongsTo(tx, rollNumber) {
			continue
		}

		event, err := src.GetEvent(ctx, tx.EventID)
		if err != nil {
			if errors.Is(err, upstream.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load event %s: %w", tx.EventID, err)
		}

		entry := Entry{Enrollment: tx, Event: *event}

		if tx.Confirmed() {
			summary.Confirmed = append(summary.Confirmed, entry)
		} else {
			summary.Pending = append(summary.Pending, entry)
		}
	}

	summary.Gaps = coverageGaps(summary.Confirmed)

	return summary, nil
}

// coverageGaps reports the fest days and categories with no confirmed
// enrollment.
func coverageGaps(confirmed []Entry) []string {
	days := make(map[int]bool)
	categories := make(map[string]bool)

	for _, entry := range confirmed {
		days[entry.Event.EventDay] = true
		categories[entry.Event.EventCategory] = true
	}

	var gaps []string

	for day := FirstDay; day <= LastDay; day++ {
		if !days[day] {
			gaps = append(gaps, fmt.Sprintf("no confirmed enrollment on day %d", day))
		}
	}

	for _, category := range Categories {
		if !categories[category] {
			gaps = append(gaps, fmt.Sprintf("no confirmed enrollment in the %s category", category))
		}
	}

	return gaps
}
