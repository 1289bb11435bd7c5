package chronver

import (
	"fmt"
	"strconv"
	"time"
)

// Version represents one chronologic version identifier of the form
// YYYY.MM.DD.CHANGESET[-LABEL]. A Version is an immutable value: every
// transforming operation returns a new Version. The zero Version is not
// valid.
//
// Fields are exported for inspection; constructing a Version literal
// bypasses validation, so prefer Parse, New, Today, or FromDate.
type Version struct {
	// Year is the calendar year, 0 through 9999.
	Year int
	// Month is the calendar month, 1 through 12.
	Month int
	// Day is the day of month, valid for Year and Month per the Gregorian
	// calendar.
	Day int
	// Changeset counts changes within the calendar day, starting at 0.
	Changeset int
	// Label is the optional pre-release style qualifier; empty means none.
	Label Label
}

// New constructs a Version from components. Construction always validates:
// an impossible date, a negative changeset, or a malformed label is
// rejected with the same error taxonomy Parse uses.
func New(year, month, day, changeset int, label Label) (Version, error) {
	v := Version{Year: year, Month: month, Day: day, Changeset: changeset, Label: label}
	if err := v.Validate(); err != nil {
		return Version{}, err
	}
	return v, nil
}

// FromDate returns the first version of the calendar date of t: changeset
// 0, no label. The date is taken in t's location.
func FromDate(t time.Time) Version {
	year, month, day := t.Date()
	return Version{Year: year, Month: int(month), Day: day}
}

// Today returns the first version of the current calendar date.
func Today() Version {
	return FromDate(time.Now())
}

// String returns the canonical form: each numeric field in minimal decimal
// digits, followed by -label when a label is present.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d.%d", v.Year, v.Month, v.Day, v.Changeset)
	if v.Label != "" {
		return s + "-" + string(v.Label)
	}
	return s
}

// Validate checks the version invariants: a real calendar date within
// range, a non-negative changeset, and a well-formed label.
func (v Version) Validate() error {
	if v.Changeset < 0 {
		return newNumericError(ComponentChangeset, strconv.Itoa(v.Changeset), "negative changeset", nil)
	}
	if dateErr := validateDate(v.Year, v.Month, v.Day); dateErr != nil {
		return dateErr
	}
	if err := v.Label.Validate(); err != nil {
		return err
	}
	return nil
}

// IsValid reports whether the version satisfies all invariants.
func (v Version) IsValid() bool {
	return v.Validate() == nil
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Date returns the version's calendar date at midnight UTC.
func (v Version) Date() time.Time {
	return time.Date(v.Year, time.Month(v.Month), v.Day, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether both versions carry the same calendar date,
// ignoring changeset and label.
func (v Version) SameDate(other Version) bool {
	return v.Year == other.Year && v.Month == other.Month && v.Day == other.Day
}

// Next returns the version for a new change made at time t: when t falls on
// the version's own date the changeset increments, otherwise the count
// restarts at 0 on t's date. The label is cleared either way.
func (v Version) Next(t time.Time) Version {
	next := FromDate(t)
	if v.SameDate(next) {
		next.Changeset = v.Changeset + 1
	}
	return next
}

// WithLabel returns a copy of the version carrying the given label. The
// label must be non-empty and well-formed.
func (v Version) WithLabel(label Label) (Version, error) {
	if label == "" {
		return Version{}, newLabelError("", "empty label")
	}
	if err := label.Validate(); err != nil {
		return Version{}, err
	}
	v.Label = label
	return v, nil
}

// WithoutLabel returns a copy of the version with no label.
func (v Version) WithoutLabel() Version {
	v.Label = ""
	return v
}

// IsBreaking reports whether the version is labeled as a breaking change.
func (v Version) IsBreaking() bool {
	return v.Label.IsBreaking()
}
