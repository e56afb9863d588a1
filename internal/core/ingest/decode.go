package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"ads-reconciler/internal/core/domain"
)

// currencyMarks are stripped from the ends of money cells. Longer marks come
// first so "R$" is not left as "R".
var currencyMarks = []string{"US$", "R$", "A$", "C$", "USD", "EUR", "GBP", "$", "€", "£", "¥", "₹", "₩"}

var microsDivisor = decimal.NewFromInt(1_000_000)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// Parsed dates outside [minDateYear, maxDateYear] are junk the date parser
// accepted, such as "7/" read as year 0.
const (
	minDateYear = 1900
	maxDateYear = 2999
)

// ParseInt coerces a cell into an integer. Thousands separators are dropped
// and any fractional part is truncated. Empty, unparseable or out-of-range
// input yields 0.
func ParseInt(s string) int64 {
	s = cleanNumber(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	d = d.Truncate(0)
	if d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		return 0
	}
	return d.IntPart()
}

// ParseCurrency coerces a money cell. Thousands separators and a currency
// symbol are dropped. Empty or unparseable input yields zero.
func ParseCurrency(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(s[1:])
	}
	for _, mark := range currencyMarks {
		if strings.HasPrefix(s, mark) {
			s = s[len(mark):]
			break
		}
	}
	for _, mark := range currencyMarks {
		if strings.HasSuffix(s, mark) {
			s = s[:len(s)-len(mark)]
			break
		}
	}
	s = cleanNumber(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return d.Neg()
	}
	return d
}

// ParseDate parses a calendar date in any common layout and returns it as
// midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "nat") {
		return time.Time{}, ErrMissingValue
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
	}
	if y := t.Year(); y < minDateYear || y > maxDateYear {
		return time.Time{}, fmt.Errorf("%w %q: year %d out of range", ErrInvalidDate, s, y)
	}
	return domain.Day(t), nil
}

func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

// Decoder turns raw records into DecodedRow values using a resolved mapping.
type Decoder struct {
	mapping  Mapping
	opts     Options
	detected domain.Platform
	now      func() time.Time
	micros   bool
}

// NewDecoder builds a decoder for one table. detected is the platform the
// detector reported for the header row; now supplies the processing date used
// by the fallback date policy.
func NewDecoder(mapping Mapping, opts Options, detected domain.Platform, now func() time.Time) *Decoder {
	if now == nil {
		now = time.Now
	}
	d := &Decoder{mapping: mapping, opts: opts, detected: detected, now: now}
	if col, ok := mapping[FieldSpent]; ok && col.Candidate == "cost_micros" {
		d.micros = true
	}
	return d
}

// Decode converts one record. It either returns a complete row or an error
// naming the field that made the row unusable; numeric cells never fail.
func (d *Decoder) Decode(line int, record []string) (domain.DecodedRow, error) {
	row := domain.DecodedRow{Line: line}

	if d.opts.AccountPolicy != AccountOwner {
		key := domain.NormalizeEmail(d.cell(record, d.opts.accountField()))
		if key == "" || key == "nan" {
			return row, fmt.Errorf("%s: %w", d.opts.accountField(), ErrMissingValue)
		}
		row.AccountKey = key
	}

	row.CampaignName = strings.TrimSpace(d.cell(record, FieldCampaignName))
	if row.CampaignName == "" || strings.EqualFold(row.CampaignName, "nan") {
		return row, fmt.Errorf("%s: %w", FieldCampaignName, ErrMissingValue)
	}

	platformCell := strings.TrimSpace(d.cell(record, FieldPlatform))
	if d.opts.RequirePlatform && d.opts.PlatformHint == "" && platformCell == "" {
		return row, fmt.Errorf("%s: %w", FieldPlatform, ErrMissingValue)
	}
	row.Platform = d.platform(platformCell)

	date, err := ParseDate(d.cell(record, FieldDate))
	if err != nil {
		if d.opts.DatePolicy != DateFallbackNow {
			return row, fmt.Errorf("%s: %w", FieldDate, err)
		}
		date = domain.Day(d.now())
	}
	row.Date = date

	row.Impressions = ParseInt(d.cell(record, FieldImpressions))
	row.Clicks = ParseInt(d.cell(record, FieldClicks))
	row.Spend = ParseCurrency(d.cell(record, FieldSpent))
	if d.micros {
		row.Spend = row.Spend.Div(microsDivisor)
	}
	row.Reach = ParseInt(d.cell(record, FieldReach))
	row.Budget = ParseCurrency(d.cell(record, FieldBudget))

	row.Status = strings.TrimSpace(d.cell(record, FieldStatus))
	if strings.EqualFold(row.Status, "nan") {
		row.Status = ""
	}
	return row, nil
}

// platform picks the campaign label: an explicit hint, then the platform cell,
// then the detected platform, then unknown.
func (d *Decoder) platform(cell string) domain.Platform {
	if d.opts.PlatformHint != "" {
		return domain.NormalizePlatform(string(d.opts.PlatformHint))
	}
	if cell != "" {
		return domain.NormalizePlatform(cell)
	}
	if d.detected.Known() {
		return d.detected
	}
	return domain.PlatformUnknown
}

func (d *Decoder) cell(record []string, f Field) string {
	col, ok := d.mapping[f]
	if !ok || col.Index >= len(record) {
		return ""
	}
	return record[col.Index]
}
