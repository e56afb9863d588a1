package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlatform(t *testing.T) {
	tests := map[string]Platform{
		"Facebook":      PlatformFacebook,
		"  META ":       PlatformFacebook,
		"Google  Ads":   PlatformGoogle,
		"ShareIt":       PlatformShareIT,
		"":              PlatformUnknown,
		"   ":           PlatformUnknown,
		"TikTok":        Platform("tiktok"),
		"Snap   Chat  ": Platform("snap chat"),
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePlatform(in), "input %q", in)
	}
}

func TestAccountHelpers(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
	assert.Equal(t, "jane.doe", UsernameFromEmail(" Jane.Doe@Example.com"))
	assert.Equal(t, "nobody", UsernameFromEmail("nobody"))
}
