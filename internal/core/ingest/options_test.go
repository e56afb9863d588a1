package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesAreValid(t *testing.T) {
	for _, name := range ProfileNames() {
		opts, err := ProfileOptions(name)
		require.NoError(t, err, name)
		assert.NoError(t, opts.Validate(), name)
		assert.Equal(t, name, opts.Profile)
		assert.Equal(t, DefaultMaxRowErrors, opts.MaxRowErrors)
	}

	_, err := ProfileOptions("nightly")
	assert.Error(t, err)

	opts, err := ProfileOptions("  Agency ")
	require.NoError(t, err)
	assert.Equal(t, ProfileAgency, opts.Profile)
}

func TestValidateRejectsUnknownStrategies(t *testing.T) {
	base, err := ProfileOptions(ProfileAgency)
	require.NoError(t, err)

	mutations := map[string]func(*Options){
		"metric":  func(o *Options) { o.MetricPolicy = "average" },
		"read":    func(o *Options) { o.ReadMode = "" },
		"date":    func(o *Options) { o.DatePolicy = "guess" },
		"scope":   func(o *Options) { o.SynonymScope = "fuzzy" },
		"account": func(o *Options) { o.AccountPolicy = "invite" },
		"fuzzy":   func(o *Options) { o.FuzzyDistance = -1 },
	}
	for name, mutate := range mutations {
		opts := base
		mutate(&opts)
		assert.Error(t, opts.Validate(), name)
	}
}

func TestRequiredFields(t *testing.T) {
	agency, _ := ProfileOptions(ProfileAgency)
	assert.Equal(t,
		[]Field{FieldClientEmail, FieldCampaignName, FieldDate, FieldImpressions, FieldClicks, FieldSpent},
		agency.RequiredFields())
	assert.Equal(t, []Field{FieldPlatform, FieldReach, FieldBudget, FieldStatus}, agency.OptionalFields())

	scheduled, _ := ProfileOptions(ProfileScheduled)
	assert.Contains(t, scheduled.RequiredFields(), FieldPlatform)
	assert.NotContains(t, scheduled.OptionalFields(), FieldPlatform)

	owner, _ := ProfileOptions(ProfileSelfService)
	assert.NotContains(t, owner.RequiredFields(), FieldClientEmail)

	agency.AccountField = "advertiser_id"
	assert.Equal(t, Field("advertiser_id"), agency.RequiredFields()[0])
}

func TestOverridesResolve(t *testing.T) {
	opts, err := Overrides{}.Resolve(ProfileScheduled)
	require.NoError(t, err)
	assert.False(t, opts.AllowSpreadsheets)
	assert.Zero(t, opts.FuzzyDistance)

	opts, err = Overrides{
		AccountField:      "customer_email",
		FuzzyDistance:     2,
		MaxRowErrors:      5,
		AllowSpreadsheets: true,
	}.Resolve(ProfileScheduled)
	require.NoError(t, err)
	assert.Equal(t, "customer_email", opts.AccountField)
	assert.Equal(t, 2, opts.FuzzyDistance)
	assert.Equal(t, 5, opts.MaxRowErrors)
	assert.True(t, opts.AllowSpreadsheets)
	assert.Equal(t, MetricAccumulate, opts.MetricPolicy)

	_, err = Overrides{}.Resolve("unknown")
	assert.Error(t, err)
}

func TestMissingColumnsErrorNamesFields(t *testing.T) {
	err := &MissingColumnsError{Fields: []Field{FieldSpent, FieldDate}}
	assert.Equal(t, "missing required columns: spent, date", err.Error())
}
