package services

import (
	"testing"

	"VisionCare360/models"

	"github.com/stretchr/testify/assert"
)

func TestValidAppointmentTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want error
	}{
		{"pending to approved", models.AppointmentPending, models.AppointmentApproved, nil},
		{"pending to rejected", models.AppointmentPending, models.AppointmentRejected, nil},
		{"approved is terminal", models.AppointmentApproved, models.AppointmentRejected, ErrStatusFinalized},
		{"rejected is terminal", models.AppointmentRejected, models.AppointmentApproved, ErrStatusFinalized},
		{"no way back to pending", models.AppointmentApproved, models.AppointmentPending, ErrInvalidStatus},
		{"unknown target", models.AppointmentPending, "cancelled", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAppointmentTransition(tt.from, tt.to))
		})
	}
}
