package models

import "encoding/json"

// Event is read-only from this service's perspective; the fest API owns it.
// MaxSeats == 0 means unlimited intake, TeamSize == 1 means individual
// participation.
type Event struct {
	ID            string `json:"_id"`
	EventName     string `json:"eventName"`
	EventDay      int    `json:"eventDay"`
	EventCategory string `json:"eventCategory"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	MaxSeats      int    `json:"maxSeats"`
	EntryFees     int    `json:"entryFees"`
	TeamSize      int    `json:"teamSize"`
	IsFeatured    bool   `json:"isFeatured"`
	EventDetails  string `json:"eventDetails"`
	EventBanner   string `json:"eventBanner"`
}

// UnmarshalJSON defaults an absent or zero teamSize to 1. The upstream
// records historically omit the field for individual events.
func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	if a.TeamSize < 1 {
		a.TeamSize = 1
	}

	*e = Event(a)

	return nil
}

func (e Event) IsTeamEvent() bool {
	return e.TeamSize > 1
}

// RequiresEnrollmentGating reports whether seat limits apply. Events with
// unlimited intake skip seat checks but still accept enrollments.
func (e Event) RequiresEnrollmentGating() bool {
	return e.MaxSeats > 0
}

// EffectiveEntryFees is zero for unlimited-intake events, matching the
// catalog display rule of the fest site.
func (e Event) EffectiveEntryFees() int {
	if e.MaxSeats == 0 {
		return 0
	}

	return e.EntryFees
}
