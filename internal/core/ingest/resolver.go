package ingest

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"ads-reconciler/internal/core/domain"
)

// Field is the semantic name of a logical column.
type Field string

const (
	FieldClientEmail  Field = "client_email"
	FieldCampaignName Field = "campaign_name"
	FieldPlatform     Field = "platform"
	FieldDate         Field = "date"
	FieldImpressions  Field = "impressions"
	FieldClicks       Field = "clicks"
	FieldSpent        Field = "spent"
	FieldReach        Field = "reach"
	FieldBudget       Field = "budget"
	FieldStatus       Field = "status"
)

// SynonymTable maps a field to the header spellings that carry it, in
// preference order.
type SynonymTable map[Field][]string

var globalSynonyms = SynonymTable{
	FieldClientEmail:  {"email", "client", "user_email"},
	FieldCampaignName: {"campaign", "name", "ad_name"},
	FieldPlatform:     {"channel", "source"},
	FieldDate:         {"day", "reporting_date"},
	FieldImpressions:  {"views", "impr"},
	FieldClicks:       {"click", "click_throughs"},
	FieldSpent:        {"spend", "cost", "amount_spent"},
	FieldReach:        {"audience", "unique_views"},
	FieldBudget:       {"daily_budget", "total_budget"},
	FieldStatus:       {"state", "campaign_status"},
}

var platformSynonyms = map[domain.Platform]SynonymTable{
	domain.PlatformFacebook: {
		FieldClientEmail:  {"client_email", "account_email", "advertiser_email"},
		FieldCampaignName: {"campaign_name", "campaign name", "campaign"},
		FieldDate:         {"date", "reporting_starts", "reporting starts", "day"},
		FieldImpressions:  {"impressions"},
		FieldClicks:       {"clicks", "link_clicks", "link clicks"},
		FieldSpent:        {"spend", "amount_spent", "amount spent (usd)", "amount spent", "cost"},
		FieldReach:        {"reach", "unique_reach"},
		FieldBudget:       {"budget", "lifetime_budget", "daily_budget"},
	},
	domain.PlatformGoogle: {
		FieldClientEmail:  {"client_email", "customer_email", "account_email"},
		FieldCampaignName: {"campaign", "campaign_name"},
		FieldDate:         {"date", "day"},
		FieldImpressions:  {"impressions", "impr", "impr."},
		FieldClicks:       {"clicks"},
		FieldSpent:        {"cost", "spend", "cost_micros"},
		FieldReach:        {"reach", "unique_users"},
		FieldBudget:       {"budget", "average_daily_budget"},
	},
	domain.PlatformShareIT: {
		FieldClientEmail:  {"client_email", "advertiser_email"},
		FieldCampaignName: {"campaign_name", "campaign"},
		FieldDate:         {"date", "report_date"},
		FieldImpressions:  {"impressions", "views"},
		FieldClicks:       {"clicks", "taps"},
		FieldSpent:        {"spend", "cost"},
		FieldReach:        {"reach", "unique_users"},
		FieldBudget:       {"budget", "campaign_budget"},
	},
}

// Column is a resolved header.
type Column struct {
	Index     int
	Header    string
	Candidate string
	Fuzzy     bool
}

// Mapping holds the resolved column of every field that was found.
type Mapping map[Field]Column

// Missing returns the fields of required that have no column, in order.
func (m Mapping) Missing(required []Field) []Field {
	var missing []Field
	for _, f := range required {
		if _, ok := m[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// Resolver maps semantic fields onto the headers of a concrete file.
type Resolver struct {
	scope         SynonymScope
	fuzzyDistance int
}

// NewResolver creates a resolver using the given synonym scope. A positive
// fuzzyDistance enables edit-distance matching for fields without an exact
// match.
func NewResolver(scope SynonymScope, fuzzyDistance int) *Resolver {
	return &Resolver{scope: scope, fuzzyDistance: fuzzyDistance}
}

// Candidates returns the header spellings tried for field, in order: the
// synonym list of the platform table (or the global table), then the field
// name itself. Platform tables fall back to the global list for fields they do
// not define.
func (r *Resolver) Candidates(field Field, platform domain.Platform) []string {
	var synonyms []string
	if r.scope == SynonymsPerPlatform {
		if table, ok := platformSynonyms[platform]; ok {
			synonyms = table[field]
		}
	}
	if synonyms == nil {
		synonyms = globalSynonyms[field]
	}

	out := make([]string, 0, len(synonyms)+1)
	seen := make(map[string]bool, len(synonyms)+1)
	add := func(s string) {
		key := normalizeHeader(s)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, key)
	}
	for _, s := range synonyms {
		add(s)
	}
	add(string(field))
	return out
}

// Resolve finds the column carrying field using exact, case-insensitive and
// whitespace-trimmed comparison. Earlier candidates win over later ones and,
// for one candidate, the leftmost column wins.
func (r *Resolver) Resolve(headers []string, field Field, platform domain.Platform) (Column, bool) {
	normalized := normalizeHeaders(headers)
	return r.resolveExact(headers, normalized, r.Candidates(field, platform), nil)
}

// ResolveAll resolves every field in fields. Exact matches are assigned first
// for all fields; fuzzy matching, when enabled, then runs for the remaining
// fields against columns no other field claimed.
func (r *Resolver) ResolveAll(headers []string, fields []Field, platform domain.Platform) Mapping {
	normalized := normalizeHeaders(headers)
	mapping := make(Mapping, len(fields))
	claimed := make(map[int]bool, len(fields))

	for _, f := range fields {
		if col, ok := r.resolveExact(headers, normalized, r.Candidates(f, platform), claimed); ok {
			mapping[f] = col
			claimed[col.Index] = true
		}
	}
	if r.fuzzyDistance <= 0 {
		return mapping
	}
	for _, f := range fields {
		if _, ok := mapping[f]; ok {
			continue
		}
		if col, ok := r.resolveFuzzy(headers, normalized, r.Candidates(f, platform), claimed); ok {
			mapping[f] = col
			claimed[col.Index] = true
		}
	}
	return mapping
}

func (r *Resolver) resolveExact(headers, normalized, candidates []string, claimed map[int]bool) (Column, bool) {
	for _, c := range candidates {
		for i, h := range normalized {
			if claimed[i] || h != c {
				continue
			}
			return Column{Index: i, Header: headers[i], Candidate: c}, true
		}
	}
	return Column{}, false
}

func (r *Resolver) resolveFuzzy(headers, normalized, candidates []string, claimed map[int]bool) (Column, bool) {
	best := Column{Index: -1}
	bestDistance := r.fuzzyDistance + 1
	for _, c := range candidates {
		for i, h := range normalized {
			if claimed[i] || h == "" {
				continue
			}
			d := levenshtein.DistanceForStrings([]rune(h), []rune(c), levenshtein.DefaultOptionsWithSub)
			// A distance as large as the shorter word would match anything.
			if d >= min(len([]rune(h)), len([]rune(c))) {
				continue
			}
			if d < bestDistance {
				bestDistance = d
				best = Column{Index: i, Header: headers[i], Candidate: c, Fuzzy: true}
			}
		}
	}
	return best, best.Index >= 0
}

func normalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = normalizeHeader(h)
	}
	return out
}

// normalizeHeader lower-cases and trims a header, dropping a UTF-8 byte order
// mark some exporters leave on the first column.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}
