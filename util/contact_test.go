package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("917535021231", "Hello there")
	assert.Equal(t, "https://wa.me/917535021231?text=Hello+there", link)
}

func TestWhatsAppLinkDefaults(t *testing.T) {
	link := WhatsAppLink("", "")
	assert.Contains(t, link, "https://wa.me/"+HospitalPhone)
	assert.Contains(t, link, "?text=")
}

func TestTelLink(t *testing.T) {
	assert.Equal(t, "tel:+917535021231", TelLink(""))
	assert.Equal(t, "tel:+911234567890", TelLink("911234567890"))
}
