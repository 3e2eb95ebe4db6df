// Package enrollment implements the event-enrollment workflow: team
// assembly, validation against event constraints, seat accounting, and
// submission of the transaction record to the fest API.
package enrollment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"festfront/internal/models"
	"festfront/internal/upstream"
)

type State string

const (
	StateEmpty        State = "empty"
	StateBuildingTeam State = "building_team"
	StateReady        State = "ready"
	StateSubmitting   State = "submitting"
	StateSucceeded    State = "succeeded"
	StateFailed       State = "failed"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentDirectory
type StudentDirectory interface {
	LookupStudent(ctx context.Context, rollNumber string) (*models.Student, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TransactionSource
type TransactionSource interface {
	GetTransactions(ctx context.Context, rollNumber string) ([]models.Enrollment, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TransactionCreator
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, enrollment models.Enrollment) (*models.Enrollment, error)
}

// Workflow is one in-flight enrollment for one student and one event. It is
// not safe for concurrent use on its own; drafts held by a DraftStore are
// only read as snapshots and mutated through Mutate, which locks the entry.
type Workflow struct {
	Event       models.Event `json:"event"`
	Roster      []string     `json:"roster"`
	TeamName    string       `json:"teamName,omitempty"`
	FilledSeats int          `json:"filledSeats"`
	State       State        `json:"state"`
	LastError   string       `json:"lastError,omitempty"`
}

// Clone returns a deep copy, safe to render while the original keeps
// changing under the draft store's lock.
func (w *Workflow) Clone() *Workflow {
	c := *w
	c.Roster = append([]string(nil), w.Roster...)

	return &c
}

// Begin seeds the roster with the enrolling student and takes the initial
// confirmed-seat reading. Individual events start Ready, team events start
// BuildingTeam.
func Begin(ctx context.Context, src TransactionSource, event models.Event, rollNumber string) (*Workflow, error) {
	transactions, err := src.GetTransactions(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seat count: %w", err)
	}

	w := &Workflow{
		Event:       event,
		Roster:      []string{rollNumber},
		FilledSeats: CountFilledSeats(transactions, event.ID),
		State:       StateReady,
	}

	if event.IsTeamEvent() {
		w.State = StateBuildingTeam
	}

	return w, nil
}

// AddMember validates and appends a team member. A rejected add leaves the
// roster untouched; a successful one clears the previous error.
func (w *Workflow) AddMember(ctx context.Context, directory StudentDirectory, rollNumber string) error {
	rollNumber = strings.TrimSpace(rollNumber)

	for _, m := range w.Roster {
		if m == rollNumber {
			w.LastError = ErrDuplicateMember.Error()
			return ErrDuplicateMember
		}
	}

	if len(w.Roster) >= w.Event.TeamSize {
		w.LastError = ErrTeamFull.Error()
		return ErrTeamFull
	}

	if _, err := directory.LookupStudent(ctx, rollNumber); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			w.LastError = ErrUnregisteredMember.Error()
			return ErrUnregisteredMember
		}
		return fmt.Errorf("failed to look up member: %w", err)
	}

	w.Roster = append(w.Roster, rollNumber)
	w.LastError = ""

	if len(w.Roster) == w.Event.TeamSize {
		w.State = StateReady
	}

	return nil
}

// SetTeamName records the team name for team events; required non-empty
// before submission.
func (w *Workflow) SetTeamName(name string) error {
	if !w.Event.IsTeamEvent() {
		return ErrNotTeamEvent
	}

	w.TeamName = strings.TrimSpace(name)

	return nil
}

// Submit re-checks seat availability against a fresh listing, validates the
// team name, and creates the pending transaction. On upstream failure the
// roster and team name survive so the user can resubmit without re-entering
// data.
func (w *Workflow) Submit(ctx context.Context, src TransactionSource, creator TransactionCreator) (*models.Enrollment, error) {
	if w.State == StateSucceeded {
		return nil, ErrAlreadySubmitted
	}

	if w.Event.RequiresEnrollmentGating() {
		transactions, err := src.GetTransactions(ctx, "")
		if err != nil {
			w.State = StateFailed
			return nil, fmt.Errorf("failed to fetch seat count: %w", err)
		}

		w.FilledSeats = CountFilledSeats(transactions, w.Event.ID)
		if w.FilledSeats >= w.Event.MaxSeats {
			w.LastError = ErrSeatsFull.Error()
			return nil, ErrSeatsFull
		}
	}

	if w.Event.IsTeamEvent() && w.TeamName == "" {
		w.LastError = ErrMissingTeamName.Error()
		return nil, ErrMissingTeamName
	}

	w.State = StateSubmitting

	enrollment := models.Enrollment{
		EventID:     w.Event.ID,
		EnrolledID:  w.Roster[0],
		TeamMembers: append([]string(nil), w.Roster...),
		Amount:      w.Event.EffectiveEntryFees(),
		Payment:     models.PaymentPending,
	}
	if w.Event.IsTeamEvent() {
		enrollment.TeamName = w.TeamName
	}

	created, err := creator.CreateTransaction(ctx, enrollment)
	if err != nil {
		w.State = StateFailed
		w.LastError = "enrollment could not be submitted"
		return nil, fmt.Errorf("failed to submit enrollment: %w", err)
	}

	w.State = StateSucceeded
	w.LastError = ""

	return created, nil
}
