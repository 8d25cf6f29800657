package util

import (
	"fmt"
	"net/url"
)

// Outbound links used by the site chat widget and the download banner.
const (
	HospitalPhone      = "917535021231"
	DefaultChatMessage = "Hello! I would like to know more about your eye care services."
	AndroidAppPath     = "/downloads/visioncare360.apk"
)

/*
* Build the wa.me deep link for the chat widget
* The message rides in the text query parameter, url-encoded
 */
func WhatsAppLink(phone, message string) string {
	if phone == "" {
		phone = HospitalPhone
	}
	if message == "" {
		message = DefaultChatMessage
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

func TelLink(phone string) string {
	if phone == "" {
		phone = HospitalPhone
	}
	return "tel:+" + phone
}
