// Package ingest holds the building blocks of the CSV reconciliation engine:
// table reading, platform detection, column resolution and row decoding. The
// package is free of storage concerns; the engine that applies decoded rows
// lives in the usecase adapter.
package ingest

import (
	"fmt"
	"strings"

	"ads-reconciler/internal/core/domain"
)

// MetricPolicy selects how a row's counters are merged into existing state.
type MetricPolicy string

const (
	// MetricAccumulate adds counters; budget and status are kept from creation.
	MetricAccumulate MetricPolicy = "accumulate"
	// MetricSnapshot treats each row as the full current state and overwrites
	// counters, budget and status.
	MetricSnapshot MetricPolicy = "snapshot"
)

// ReadMode selects how permissive the table reader is.
type ReadMode string

const (
	// ReadLenient tries UTF-8, UTF-16 and 8-bit encodings, sniffs the delimiter
	// and accepts stray quotes.
	ReadLenient ReadMode = "lenient"
	// ReadStrict tries UTF-8 and 8-bit encodings and expects comma separated
	// values with well-formed quoting.
	ReadStrict ReadMode = "strict"
)

// DatePolicy selects what happens to a row whose date cannot be parsed.
type DatePolicy string

const (
	DateFallbackNow DatePolicy = "fallback_now"
	DateReject      DatePolicy = "reject"
)

// SynonymScope selects which synonym table drives column resolution.
type SynonymScope string

const (
	SynonymsPerPlatform SynonymScope = "per_platform"
	SynonymsGlobal      SynonymScope = "global"
)

// AccountPolicy selects how the owning account of a row is found.
type AccountPolicy string

const (
	// AccountLookup resolves accounts by email; unknown emails fail the row.
	AccountLookup AccountPolicy = "lookup"
	// AccountProvision creates a placeholder account for unknown emails.
	AccountProvision AccountPolicy = "provision"
	// AccountOwner assigns every row to the submitting account.
	AccountOwner AccountPolicy = "owner"
)

// Options is the full strategy configuration of one import.
type Options struct {
	Profile       string
	MetricPolicy  MetricPolicy
	ReadMode      ReadMode
	DatePolicy    DatePolicy
	SynonymScope  SynonymScope
	AccountPolicy AccountPolicy
	// AccountField is the semantic name of the account identifier column.
	AccountField string
	// RequirePlatform makes the platform column mandatory.
	RequirePlatform bool
	// DefaultStatus is used for campaigns created from rows without a status.
	DefaultStatus string
	// FuzzyDistance is the largest edit distance accepted when no header
	// matches a field exactly. Zero disables fuzzy matching.
	FuzzyDistance int
	// MaxRowErrors bounds the number of row errors kept on a result.
	MaxRowErrors int
	// AllowSpreadsheets enables .xlsx intake.
	AllowSpreadsheets bool
	// PlatformHint, when set, labels every campaign in the file.
	PlatformHint domain.Platform
}

const (
	ProfileAgency      = "agency"
	ProfileScheduled   = "scheduled"
	ProfileSelfService = "self_service"
	ProfileBootstrap   = "bootstrap"
)

var profiles = map[string]Options{
	ProfileAgency: {
		MetricPolicy:      MetricAccumulate,
		ReadMode:          ReadLenient,
		DatePolicy:        DateFallbackNow,
		SynonymScope:      SynonymsPerPlatform,
		AccountPolicy:     AccountLookup,
		DefaultStatus:     "Active",
		AllowSpreadsheets: true,
	},
	ProfileScheduled: {
		MetricPolicy:    MetricAccumulate,
		ReadMode:        ReadStrict,
		DatePolicy:      DateReject,
		SynonymScope:    SynonymsGlobal,
		AccountPolicy:   AccountLookup,
		RequirePlatform: true,
		DefaultStatus:   "In-Progress",
	},
	ProfileSelfService: {
		MetricPolicy:      MetricSnapshot,
		ReadMode:          ReadLenient,
		DatePolicy:        DateReject,
		SynonymScope:      SynonymsGlobal,
		AccountPolicy:     AccountOwner,
		DefaultStatus:     "Active",
		AllowSpreadsheets: true,
	},
	ProfileBootstrap: {
		MetricPolicy:  MetricSnapshot,
		ReadMode:      ReadStrict,
		DatePolicy:    DateReject,
		SynonymScope:  SynonymsGlobal,
		AccountPolicy: AccountProvision,
		DefaultStatus: "Active",
	},
}

// DefaultMaxRowErrors is used when Options.MaxRowErrors is not positive.
const DefaultMaxRowErrors = 100

// ProfileOptions returns the preset registered under name.
func ProfileOptions(name string) (Options, error) {
	opts, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Options{}, fmt.Errorf("unknown import profile %q", name)
	}
	opts.Profile = strings.ToLower(strings.TrimSpace(name))
	opts.AccountField = string(FieldClientEmail)
	opts.MaxRowErrors = DefaultMaxRowErrors
	return opts, nil
}

// ProfileNames lists the registered presets.
func ProfileNames() []string {
	return []string{ProfileAgency, ProfileScheduled, ProfileSelfService, ProfileBootstrap}
}

// Validate checks that every strategy holds a known value.
func (o Options) Validate() error {
	switch o.MetricPolicy {
	case MetricAccumulate, MetricSnapshot:
	default:
		return fmt.Errorf("unknown metric policy %q", o.MetricPolicy)
	}
	switch o.ReadMode {
	case ReadLenient, ReadStrict:
	default:
		return fmt.Errorf("unknown read mode %q", o.ReadMode)
	}
	switch o.DatePolicy {
	case DateFallbackNow, DateReject:
	default:
		return fmt.Errorf("unknown date policy %q", o.DatePolicy)
	}
	switch o.SynonymScope {
	case SynonymsPerPlatform, SynonymsGlobal:
	default:
		return fmt.Errorf("unknown synonym scope %q", o.SynonymScope)
	}
	switch o.AccountPolicy {
	case AccountLookup, AccountProvision, AccountOwner:
	default:
		return fmt.Errorf("unknown account policy %q", o.AccountPolicy)
	}
	if o.FuzzyDistance < 0 {
		return fmt.Errorf("fuzzy distance must not be negative, got %d", o.FuzzyDistance)
	}
	return nil
}

// accountField returns the configured identifier field or the default.
func (o Options) accountField() Field {
	if f := strings.TrimSpace(o.AccountField); f != "" {
		return Field(f)
	}
	return FieldClientEmail
}

// RequiredFields lists the columns whose absence fails the whole batch.
func (o Options) RequiredFields() []Field {
	fields := make([]Field, 0, 7)
	if o.AccountPolicy != AccountOwner {
		fields = append(fields, o.accountField())
	}
	fields = append(fields, FieldCampaignName)
	if o.RequirePlatform {
		fields = append(fields, FieldPlatform)
	}
	return append(fields, FieldDate, FieldImpressions, FieldClicks, FieldSpent)
}

// OptionalFields lists the columns that are used when present.
func (o Options) OptionalFields() []Field {
	fields := []Field{FieldReach, FieldBudget, FieldStatus}
	if !o.RequirePlatform {
		fields = append([]Field{FieldPlatform}, fields...)
	}
	return fields
}

// Overrides are deployment-wide settings layered over a profile preset.
// Zero values keep the preset.
type Overrides struct {
	AccountField      string
	FuzzyDistance     int
	MaxRowErrors      int
	AllowSpreadsheets bool
}

// Resolve returns the preset registered under name with o applied.
func (o Overrides) Resolve(name string) (Options, error) {
	opts, err := ProfileOptions(name)
	if err != nil {
		return Options{}, err
	}
	if f := strings.TrimSpace(o.AccountField); f != "" {
		opts.AccountField = f
	}
	if o.FuzzyDistance > 0 {
		opts.FuzzyDistance = o.FuzzyDistance
	}
	if o.MaxRowErrors > 0 {
		opts.MaxRowErrors = o.MaxRowErrors
	}
	if o.AllowSpreadsheets {
		opts.AllowSpreadsheets = true
	}
	return opts, nil
}
