package util

// The icon names the frontend maps to components. Free-text icon strings
// used to silently fall back to a default on a typo; writes are now
// rejected unless the name is one of these.
var iconNames = map[string]bool{
	"Eye":         true,
	"Sparkles":    true,
	"Zap":         true,
	"Target":      true,
	"Baby":        true,
	"Shield":      true,
	"UserCheck":   true,
	"Microscope":  true,
	"Heart":       true,
	"BadgeCheck":  true,
	"Users":       true,
	"Stethoscope": true,
	"Glasses":     true,
	"Activity":    true,
}

func IsValidIcon(name string) bool {
	return iconNames[name]
}
