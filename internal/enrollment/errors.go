package enrollment

import "errors"

var (
	ErrDuplicateMember    = errors.New("roll number is already in the team")
	ErrTeamFull           = errors.New("team is already full")
	ErrUnregisteredMember = errors.New("student not registered yet")
	ErrSeatsFull          = errors.New("no seats left for this event")
	ErrMissingTeamName    = errors.New("team name is required")
	ErrNotTeamEvent       = errors.New("event is for individual participation")
	ErrAlreadySubmitted   = errors.New("enrollment already submitted")
)

// Class groups workflow errors for HTTP status mapping. Everything outside
// the named classes is an upstream/network failure and retryable as-is.
type Class int

const (
	ClassNetwork Class = iota
	ClassValidation
	ClassNotFound
	ClassCapacity
)

func Classify(err error) Class {
	switch {
	case errors.Is(err, ErrDuplicateMember),
		errors.Is(err, ErrTeamFull),
		errors.Is(err, ErrMissingTeamName),
		errors.Is(err, ErrNotTeamEvent),
		errors.Is(err, ErrAlreadySubmitted):
		return ClassValidation
	case errors.Is(err, ErrUnregisteredMember):
		return ClassNotFound
	case errors.Is(err, ErrSeatsFull):
		return ClassCapacity
	default:
		return ClassNetwork
	}
}
