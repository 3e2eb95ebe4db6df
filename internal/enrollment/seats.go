package enrollment

import "festfront/internal/models"

// CountFilledSeats counts confirmed enrollments for an event. Pending
// records do not hold a seat. The count is computed from a listing fetched
// once per request, so it can be stale relative to concurrent enrollments;
// the fest API remains the authority.
func CountFilledSeats(enrollments []models.Enrollment, eventID string) int {
	filled := 0

	for _, e := range enrollments {
		if e.EventID == eventID && e.Confirmed() {
			filled++
		}
	}

	return filled
}
