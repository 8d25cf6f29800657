package services

import (
	"sort"
	"time"

	"VisionCare360/models"
)

// DayBucket is one bar of the 7-day chart.
type DayBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats is the snapshot pushed to admin dashboard clients.
type DashboardStats struct {
	TotalAppointments   int                  `json:"totalAppointments"`
	PendingAppointments int                  `json:"pendingAppointments"`
	TodayAppointments   int                  `json:"todayAppointments"`
	TotalDoctors        int                  `json:"totalDoctors"`
	TotalServices       int                  `json:"totalServices"`
	TotalContacts       int                  `json:"totalContacts"`
	UnreadContacts      int                  `json:"unreadContacts"`
	Chart               []DayBucket          `json:"chart"`
	RecentAppointments  []models.Appointment `json:"recentAppointments"`
	GeneratedAt         time.Time            `json:"generatedAt"`
}

// How many appointments the recent-activity panel shows.
const recentAppointmentLimit = 5

// Layouts tried when an appointment predates server-assigned timestamps
// and only carries a raw date string.
var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02-01-2006",
	"January 2, 2006",
}

/*
* Charting is keyed by creation date
* Older documents without a materialized createdAt fall back to the raw
* preferred-date string, unparseable values are excluded, not an error
 */
func appointmentBucketTime(a models.Appointment) (time.Time, bool) {
	if !a.CreatedAt.IsZero() {
		return a.CreatedAt, true
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, a.PreferredDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

/*
* Bucket the appointments into the most recent 7 calendar days
* Every day appears even at count 0 so the chart's x-axis stays stable,
* oldest day first
 */
func ComputeAppointmentBuckets(appointments []models.Appointment, now time.Time) []DayBucket {
	type day struct {
		start time.Time
		count int
	}
	days := make([]day, 7)
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := range days {
		days[i].start = startOfToday.AddDate(0, 0, i-6)
	}

	for _, a := range appointments {
		t, ok := appointmentBucketTime(a)
		if !ok {
			continue
		}
		t = t.In(now.Location())
		for i := range days {
			end := days[i].start.AddDate(0, 0, 1)
			if !t.Before(days[i].start) && t.Before(end) {
				days[i].count++
				break
			}
		}
	}

	buckets := make([]DayBucket, 7)
	for i, d := range days {
		buckets[i] = DayBucket{Name: d.start.Format("Jan 02"), Count: d.count}
	}
	return buckets
}

// recentAppointments returns the newest few entries for the dashboard's
// recent-activity panel, without assuming the input is already sorted.
func recentAppointments(appointments []models.Appointment) []models.Appointment {
	recent := make([]models.Appointment, len(appointments))
	copy(recent, appointments)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentAppointmentLimit {
		recent = recent[:recentAppointmentLimit]
	}
	return recent
}

/*
* Recompute every dashboard number from the full collection contents
* Elementary counting, kept pure so it is trivially testable
 */
func ComputeDashboardStats(
	appointments []models.Appointment,
	doctors []models.Doctor,
	services []models.Service,
	contacts []models.ContactRequest,
	now time.Time,
) DashboardStats {
	stats := DashboardStats{
		TotalAppointments:  len(appointments),
		TotalDoctors:       len(doctors),
		TotalServices:      len(services),
		TotalContacts:      len(contacts),
		Chart:              ComputeAppointmentBuckets(appointments, now),
		RecentAppointments: recentAppointments(appointments),
		GeneratedAt:        now,
	}

	// The today counter keys off the same resolved time as the chart so
	// the two numbers agree on legacy documents.
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfToday := startOfToday.AddDate(0, 0, 1)
	for _, a := range appointments {
		if a.Status == models.AppointmentPending {
			stats.PendingAppointments++
		}
		if t, ok := appointmentBucketTime(a); ok {
			t = t.In(now.Location())
			if !t.Before(startOfToday) && t.Before(endOfToday) {
				stats.TodayAppointments++
			}
		}
	}
	for _, c := range contacts {
		if !c.IsRead {
			stats.UnreadContacts++
		}
	}
	return stats
}
