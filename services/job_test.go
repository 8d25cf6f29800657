package services

import (
	"testing"

	"VisionCare360/models"

	"github.com/stretchr/testify/assert"
)

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, ValidApplicationStatus(models.ApplicationReviewed))
	assert.True(t, ValidApplicationStatus(models.ApplicationInterview))
	assert.True(t, ValidApplicationStatus(models.ApplicationRejected))

	// Pending is the initial state, never an admin target
	assert.False(t, ValidApplicationStatus(models.ApplicationPending))
	assert.False(t, ValidApplicationStatus("Hired"))
	assert.False(t, ValidApplicationStatus(""))
}

// Setting Reviewed after Interview is accepted; the workflow imposes no
// ordering between the non-Pending states.
func TestApplicationStatusAllowsRegression(t *testing.T) {
	assert.True(t, ValidApplicationStatus(models.ApplicationInterview))
	assert.True(t, ValidApplicationStatus(models.ApplicationReviewed))
}
