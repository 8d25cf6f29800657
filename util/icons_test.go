package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIcon(t *testing.T) {
	assert.True(t, IsValidIcon("Eye"))
	assert.True(t, IsValidIcon("Microscope"))

	// no silent fallback on typos
	assert.False(t, IsValidIcon("eye"))
	assert.False(t, IsValidIcon("Eyeball"))
	assert.False(t, IsValidIcon(""))
}
