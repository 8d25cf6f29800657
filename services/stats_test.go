package services

import (
	"fmt"
	"testing"
	"time"

	"VisionCare360/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestComputeAppointmentBucketsStableAxis(t *testing.T) {
	now := day(t, "2025-06-10T15:30:00Z")

	buckets := ComputeAppointmentBuckets(nil, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, "Jun 04", buckets[0].Name)
	assert.Equal(t, "Jun 10", buckets[6].Name)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Count)
	}
}

func TestComputeAppointmentBucketsCountsByCreationDay(t *testing.T) {
	now := day(t, "2025-06-10T15:30:00Z")
	appointments := []models.Appointment{
		{CreatedAt: day(t, "2025-06-10T09:00:00Z")},
		{CreatedAt: day(t, "2025-06-10T23:59:00Z")},
		{CreatedAt: day(t, "2025-06-08T00:00:00Z")},
		// outside the window
		{CreatedAt: day(t, "2025-06-03T12:00:00Z")},
	}

	buckets := ComputeAppointmentBuckets(appointments, now)

	assert.Equal(t, 2, buckets[6].Count)
	assert.Equal(t, 1, buckets[4].Count)
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 3, total)
}

func TestComputeAppointmentBucketsFallbackDate(t *testing.T) {
	now := day(t, "2025-06-10T15:30:00Z")
	appointments := []models.Appointment{
		// createdAt not yet materialized, raw date string parses
		{PreferredDate: "2025-06-09"},
		// unparseable, excluded without error
		{PreferredDate: "next tuesday"},
	}

	buckets := ComputeAppointmentBuckets(appointments, now)

	assert.Equal(t, 1, buckets[5].Count)
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 1, total)
}

func TestComputeDashboardStats(t *testing.T) {
	now := day(t, "2025-06-10T15:30:00Z")
	appointments := []models.Appointment{
		{Status: models.AppointmentPending, CreatedAt: day(t, "2025-06-10T09:00:00Z")},
		{Status: models.AppointmentApproved, CreatedAt: day(t, "2025-06-09T09:00:00Z")},
		{Status: models.AppointmentPending, CreatedAt: day(t, "2025-06-01T09:00:00Z")},
	}
	contacts := []models.ContactRequest{
		{IsRead: false},
		{IsRead: true},
		{IsRead: false},
	}
	doctors := []models.Doctor{{Name: "Dr. A"}, {Name: "Dr. B"}}
	serviceList := []models.Service{{Title: "LASIK"}}

	stats := ComputeDashboardStats(appointments, doctors, serviceList, contacts, now)

	assert.Equal(t, 3, stats.TotalAppointments)
	assert.Equal(t, 2, stats.PendingAppointments)
	assert.Equal(t, 1, stats.TodayAppointments)
	assert.Equal(t, 2, stats.TotalDoctors)
	assert.Equal(t, 1, stats.TotalServices)
	assert.Equal(t, 3, stats.TotalContacts)
	assert.Equal(t, 2, stats.UnreadContacts)
	require.Len(t, stats.Chart, 7)
	require.Len(t, stats.RecentAppointments, 3)
	assert.Equal(t, day(t, "2025-06-10T09:00:00Z"), stats.RecentAppointments[0].CreatedAt)
}

// A legacy document counted into today's bucket via the fallback date
// must show up in the today counter too.
func TestTodayCounterAgreesWithTodayBucket(t *testing.T) {
	now := day(t, "2025-06-10T15:30:00Z")
	appointments := []models.Appointment{
		{CreatedAt: day(t, "2025-06-10T09:00:00Z")},
		{PreferredDate: "2025-06-10"},
		{CreatedAt: day(t, "2025-06-09T09:00:00Z")},
	}

	stats := ComputeDashboardStats(appointments, nil, nil, nil, now)

	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, stats.Chart[6].Count, stats.TodayAppointments)
}

func TestRecentAppointmentsNewestFirstAndCapped(t *testing.T) {
	now := day(t, "2025-06-10T15:30:00Z")
	appointments := []models.Appointment{}
	// oldest first, so the snapshot has to order them itself
	for i := 0; i < 7; i++ {
		appointments = append(appointments, models.Appointment{
			PatientName: fmt.Sprintf("Patient %d", i),
			CreatedAt:   now.Add(time.Duration(i-6) * time.Hour),
		})
	}

	stats := ComputeDashboardStats(appointments, nil, nil, nil, now)

	require.Len(t, stats.RecentAppointments, 5)
	assert.Equal(t, "Patient 6", stats.RecentAppointments[0].PatientName)
	assert.Equal(t, "Patient 2", stats.RecentAppointments[4].PatientName)
}
