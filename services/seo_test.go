package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSeoPage(t *testing.T) {
	for _, pageId := range SeoPageIds() {
		assert.True(t, IsValidSeoPage(pageId))
	}
	assert.False(t, IsValidSeoPage("checkout"))
	assert.False(t, IsValidSeoPage(""))
}

func TestSeoPageIdsCopy(t *testing.T) {
	ids := SeoPageIds()
	ids[0] = "tampered"
	assert.NotEqual(t, "tampered", SeoPageIds()[0])
}
