package models

// Payment states of an enrollment. Confirmation is flipped by an external
// backend process; this service only ever creates pending records.
const (
	PaymentPending   = 0
	PaymentConfirmed = 1
)

// Enrollment is the transaction record created when a student (or team)
// enrolls in an event.
type Enrollment struct {
	ID          string   `json:"_id,omitempty"`
	EventID     string   `json:"eventId"`
	EnrolledID  string   `json:"enrolledId"`
	TeamName    string   `json:"teamName,omitempty"`
	TeamMembers []string `json:"teamMembers"`
	Amount      int      `json:"amount"`
	Payment     int      `json:"payment"`
}

func (e Enrollment) Confirmed() bool {
	return e.Payment == PaymentConfirmed
}

// HasMember reports whether a roll number appears in the team roster.
func (e Enrollment) HasMember(rollNumber string) bool {
	for _, m := range e.TeamMembers {
		if m == rollNumber {
			return true
		}
	}

	return false
}
