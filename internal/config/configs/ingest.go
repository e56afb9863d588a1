package configs

import "ads-reconciler/internal/core/ingest"

// Ingest holds the defaults applied to uploaded files. Zero values keep the
// profile's own setting.
type Ingest struct {
	Profile      string `env:"PROFILE" envDefault:"agency"`
	AccountField string `env:"ACCOUNT_FIELD" envDefault:"client_email"`
	// FuzzyDistance enables the edit-distance header fallback when positive.
	FuzzyDistance int `env:"FUZZY_DISTANCE" envDefault:"0"`
	MaxRowErrors  int `env:"MAX_ROW_ERRORS" envDefault:"100"`
}

// Overrides returns the settings layered over any named profile.
func (c Ingest) Overrides() ingest.Overrides {
	return ingest.Overrides{
		AccountField:  c.AccountField,
		FuzzyDistance: c.FuzzyDistance,
		MaxRowErrors:  c.MaxRowErrors,
	}
}
