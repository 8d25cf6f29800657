package services

import (
	"testing"

	"VisionCare360/models"
	"VisionCare360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDoctorsSampleSet(t *testing.T) {
	doctors := DefaultDoctors()

	require.Len(t, doctors, 4)
	directors := 0
	for _, d := range doctors {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Qualification)
		assert.NotEmpty(t, d.Image)
		if d.Role == models.RoleDirector {
			directors++
		} else {
			assert.Equal(t, models.RoleDoctor, d.Role)
		}
	}
	assert.Equal(t, 2, directors)
}

func TestDefaultSeedIconsAreValid(t *testing.T) {
	for _, s := range DefaultServices() {
		assert.True(t, util.IsValidIcon(s.Icon), "service %q icon %q", s.Title, s.Icon)
	}
	for _, f := range DefaultFeatures() {
		assert.True(t, util.IsValidIcon(f.Icon), "feature %q icon %q", f.Title, f.Icon)
	}
}

func TestDefaultSetSizes(t *testing.T) {
	assert.Len(t, DefaultServices(), 6)
	assert.Len(t, DefaultFeatures(), 5)
	assert.Len(t, DefaultTestimonials(), 3)
}

func TestDefaultTestimonialRatingsInRange(t *testing.T) {
	for _, tm := range DefaultTestimonials() {
		assert.GreaterOrEqual(t, tm.Rating, 1)
		assert.LessOrEqual(t, tm.Rating, 5)
	}
}

func TestDefaultsReturnFreshSlices(t *testing.T) {
	first := DefaultDoctors()
	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", DefaultDoctors()[0].Name)
}
