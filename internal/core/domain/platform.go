package domain

import "strings"

// Platform is the originating ad-serving system of an export.
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformGoogle   Platform = "google"
	PlatformShareIT  Platform = "shareit"
	// PlatformGeneric is the detector fallback when no header marker matches.
	PlatformGeneric Platform = "generic"
	// PlatformUnknown labels campaigns whose platform could not be determined.
	PlatformUnknown Platform = "unknown"
)

var platformAliases = map[string]Platform{
	"facebook":     PlatformFacebook,
	"facebook ads": PlatformFacebook,
	"fb":           PlatformFacebook,
	"meta":         PlatformFacebook,
	"google":       PlatformGoogle,
	"google ads":   PlatformGoogle,
	"adwords":      PlatformGoogle,
	"shareit":      PlatformShareIT,
	"share it":     PlatformShareIT,
}

// NormalizePlatform maps a free-form platform label onto the value used in
// campaign identities. Known platforms collapse to their canonical tag, other
// values are trimmed and lower-cased, and empty input yields PlatformUnknown.
func NormalizePlatform(label string) Platform {
	s := strings.ToLower(strings.Join(strings.Fields(label), " "))
	if s == "" {
		return PlatformUnknown
	}
	if p, ok := platformAliases[s]; ok {
		return p
	}
	return Platform(s)
}

// Known reports whether p is one of the detectable platform profiles.
func (p Platform) Known() bool {
	switch p {
	case PlatformFacebook, PlatformGoogle, PlatformShareIT:
		return true
	}
	return false
}

func (p Platform) String() string { return string(p) }
