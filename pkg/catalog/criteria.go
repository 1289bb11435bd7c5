package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dnaka91/chronver/pkg/chronver"
	"github.com/dnaka91/chronver/pkg/serializer"
)

// Label criterion values with special meaning. Any other value matches
// versions whose label equals it exactly.
const (
	// LabelAny matches versions with or without a label.
	LabelAny = "any"
	// LabelNone matches only versions without a label.
	LabelNone = "none"
)

// Criteria represents the input parameters for selecting versions from a
// catalog. All fields are optional; the zero value of each field matches
// everything.
type Criteria struct {
	// Year restricts matches to versions from this year (0 means any).
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Month restricts matches to versions from this month (0 means any).
	Month int `json:"month,omitempty" yaml:"month,omitempty"`

	// Day restricts matches to versions from this day (0 means any).
	Day int `json:"day,omitempty" yaml:"day,omitempty"`

	// Label restricts matches by label: "any" (or empty) matches every
	// version, "none" matches only unlabeled versions, and any other value
	// matches versions whose label equals it exactly.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Since restricts matches to versions at or above this one (inclusive).
	Since *chronver.Version `json:"since,omitempty" yaml:"since,omitempty"`

	// Until restricts matches to versions at or below this one (inclusive).
	Until *chronver.Version `json:"until,omitempty" yaml:"until,omitempty"`
}

// NewCriteria creates a new Criteria that matches every version.
func NewCriteria() *Criteria {
	return &Criteria{
		Label: LabelAny,
	}
}

// Matches reports whether the given version satisfies all set criteria
// fields. A nil Criteria matches every version.
func (c *Criteria) Matches(v chronver.Version) bool {
	if c == nil {
		return true
	}

	if c.Year != 0 && v.Year != c.Year {
		return false
	}
	if c.Month != 0 && v.Month != c.Month {
		return false
	}
	if c.Day != 0 && v.Day != c.Day {
		return false
	}

	switch c.Label {
	case "", LabelAny:
		// any label, including none
	case LabelNone:
		if v.Label != "" {
			return false
		}
	default:
		if string(v.Label) != c.Label {
			return false
		}
	}

	if c.Since != nil && v.IsOlder(*c.Since) {
		return false
	}
	if c.Until != nil && v.IsNewer(*c.Until) {
		return false
	}

	return true
}

// Specificity returns a score indicating how specific this criteria is.
// Higher scores mean more specific criteria (fewer wildcard fields).
func (c *Criteria) Specificity() int {
	score := 0
	if c.Year != 0 {
		score++
	}
	if c.Month != 0 {
		score++
	}
	if c.Day != 0 {
		score++
	}
	if c.Label != "" && c.Label != LabelAny {
		score++
	}
	if c.Since != nil {
		score++
	}
	if c.Until != nil {
		score++
	}
	return score
}

// Validate checks that all criteria fields hold usable values.
func (c *Criteria) Validate() error {
	if c.Year < 0 || c.Year > 9999 {
		return fmt.Errorf("invalid year: %d (must be 0-9999)", c.Year)
	}
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("invalid month: %d (must be 0-12)", c.Month)
	}
	if c.Day < 0 || c.Day > 31 {
		return fmt.Errorf("invalid day: %d (must be 0-31)", c.Day)
	}

	if c.Label != "" && c.Label != LabelAny && c.Label != LabelNone {
		if err := chronver.Label(c.Label).Validate(); err != nil {
			return fmt.Errorf("invalid label criterion: %w", err)
		}
	}

	if c.Since != nil && c.Until != nil && c.Since.IsNewer(*c.Until) {
		return fmt.Errorf("since %s is newer than until %s", c.Since, c.Until)
	}

	return nil
}

// String returns a human-readable representation of the criteria.
func (c *Criteria) String() string {
	parts := []string{}
	if c.Year != 0 {
		parts = append(parts, fmt.Sprintf("year=%d", c.Year))
	}
	if c.Month != 0 {
		parts = append(parts, fmt.Sprintf("month=%d", c.Month))
	}
	if c.Day != 0 {
		parts = append(parts, fmt.Sprintf("day=%d", c.Day))
	}
	if c.Label != "" && c.Label != LabelAny {
		parts = append(parts, fmt.Sprintf("label=%s", c.Label))
	}
	if c.Since != nil {
		parts = append(parts, fmt.Sprintf("since=%s", c.Since))
	}
	if c.Until != nil {
		parts = append(parts, fmt.Sprintf("until=%s", c.Until))
	}
	if len(parts) == 0 {
		return "criteria(any)"
	}
	return fmt.Sprintf("criteria(%s)", strings.Join(parts, ", "))
}

// CriteriaOption is a functional option for building Criteria.
type CriteriaOption func(*Criteria) error

// WithYear restricts the criteria to the given year.
func WithYear(year int) CriteriaOption {
	return func(c *Criteria) error {
		if year < 0 || year > 9999 {
			return fmt.Errorf("invalid year: %d (must be 0-9999)", year)
		}
		c.Year = year
		return nil
	}
}

// WithMonth restricts the criteria to the given month.
func WithMonth(month int) CriteriaOption {
	return func(c *Criteria) error {
		if month < 0 || month > 12 {
			return fmt.Errorf("invalid month: %d (must be 0-12)", month)
		}
		c.Month = month
		return nil
	}
}

// WithDay restricts the criteria to the given day.
func WithDay(day int) CriteriaOption {
	return func(c *Criteria) error {
		if day < 0 || day > 31 {
			return fmt.Errorf("invalid day: %d (must be 0-31)", day)
		}
		c.Day = day
		return nil
	}
}

// WithLabel restricts the criteria by label. Accepts "any", "none", or an
// exact label value. Labels are case-sensitive.
func WithLabel(label string) CriteriaOption {
	return func(c *Criteria) error {
		if label != "" && label != LabelAny && label != LabelNone {
			if err := chronver.Label(label).Validate(); err != nil {
				return fmt.Errorf("invalid label criterion: %w", err)
			}
		}
		c.Label = label
		return nil
	}
}

// WithSince restricts the criteria to versions at or above the given one.
func WithSince(version string) CriteriaOption {
	return func(c *Criteria) error {
		v, err := chronver.Parse(version)
		if err != nil {
			return fmt.Errorf("invalid since version: %w", err)
		}
		c.Since = &v
		return nil
	}
}

// WithUntil restricts the criteria to versions at or below the given one.
func WithUntil(version string) CriteriaOption {
	return func(c *Criteria) error {
		v, err := chronver.Parse(version)
		if err != nil {
			return fmt.Errorf("invalid until version: %w", err)
		}
		c.Until = &v
		return nil
	}
}

// BuildCriteria creates a Criteria from functional options.
func BuildCriteria(opts ...CriteriaOption) (*Criteria, error) {
	c := NewCriteria()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseCriteriaFromValues parses selection criteria from URL values.
// All parameters are optional and default to the wildcard if not specified.
// Supported parameters: year, month, day, label, since, until.
func ParseCriteriaFromValues(values url.Values) (*Criteria, error) {
	opts := []CriteriaOption{}

	for _, field := range []struct {
		key string
		opt func(int) CriteriaOption
	}{
		{"year", WithYear},
		{"month", WithMonth},
		{"day", WithDay},
	} {
		if s := values.Get(field.key); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value: %s", field.key, s)
			}
			opts = append(opts, field.opt(n))
		}
	}

	if s := values.Get("label"); s != "" {
		opts = append(opts, WithLabel(s))
	}
	if s := values.Get("since"); s != "" {
		opts = append(opts, WithSince(s))
	}
	if s := values.Get("until"); s != "" {
		opts = append(opts, WithUntil(s))
	}

	return BuildCriteria(opts...)
}

// CriteriaKind is the kind value for criteria resources.
const CriteriaKind = "versionCriteria"

// rawCriteriaSpec is an intermediate struct for parsing criteria files with
// plain string version values. This allows validation before creating the
// typed Criteria.
type rawCriteriaSpec struct {
	Year  int    `json:"year,omitempty" yaml:"year,omitempty"`
	Month int    `json:"month,omitempty" yaml:"month,omitempty"`
	Day   int    `json:"day,omitempty" yaml:"day,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Since string `json:"since,omitempty" yaml:"since,omitempty"`
	Until string `json:"until,omitempty" yaml:"until,omitempty"`
}

// rawCriteria is the on-disk envelope for criteria resources.
type rawCriteria struct {
	Kind       string `json:"kind" yaml:"kind"`
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Metadata   struct {
		Name string `json:"name" yaml:"name"`
	} `json:"metadata" yaml:"metadata"`
	Spec rawCriteriaSpec `json:"spec" yaml:"spec"`
}

// validateAndConvertRawSpec validates raw values and converts to typed Criteria.
func validateAndConvertRawSpec(raw *rawCriteriaSpec) (*Criteria, error) {
	opts := []CriteriaOption{
		WithYear(raw.Year),
		WithMonth(raw.Month),
		WithDay(raw.Day),
	}
	if raw.Label != "" {
		opts = append(opts, WithLabel(raw.Label))
	}
	if raw.Since != "" {
		opts = append(opts, WithSince(raw.Since))
	}
	if raw.Until != "" {
		opts = append(opts, WithUntil(raw.Until))
	}
	return BuildCriteria(opts...)
}

// LoadCriteriaFromFile loads criteria from a YAML or JSON file.
// The file format is auto-detected from the file extension.
// All fields are optional and default to the wildcard if not specified.
//
// Example file (YAML):
//
//	kind: versionCriteria
//	apiVersion: chronver.org/v1alpha1
//	metadata:
//	  name: stable-2024
//	spec:
//	  year: 2024
//	  label: none
//	  since: 2024.3.1.0
func LoadCriteriaFromFile(path string) (*Criteria, error) {
	raw, err := serializer.FromFile[rawCriteria](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load criteria file: %w", err)
	}

	// Validate kind and apiVersion
	if raw.Kind != "" && raw.Kind != CriteriaKind {
		return nil, fmt.Errorf("invalid kind %q, expected %q", raw.Kind, CriteriaKind)
	}
	if raw.APIVersion != "" && raw.APIVersion != APIVersion {
		return nil, fmt.Errorf("invalid apiVersion %q, expected %q", raw.APIVersion, APIVersion)
	}

	return validateAndConvertRawSpec(&raw.Spec)
}
