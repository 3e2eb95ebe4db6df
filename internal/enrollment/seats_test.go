package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"festfront/internal/models"
)

func TestCountFilledSeats(t *testing.T) {
	t.Parallel()

	enrollments := []models.Enrollment{
		{EventID: "E1", Payment: models.PaymentConfirmed},
		{EventID: "E1", Payment: models.PaymentPending},
		{EventID: "E2", Payment: models.PaymentConfirmed},
		{EventID: "E1", Payment: models.PaymentConfirmed},
	}

	assert.Equal(t, 2, CountFilledSeats(enrollments, "E1"), "pending records do not hold seats")
	assert.Equal(t, 1, CountFilledSeats(enrollments, "E2"))
	assert.Equal(t, 0, CountFilledSeats(enrollments, "E3"))
	assert.Equal(t, 0, CountFilledSeats(nil, "E1"))
}
