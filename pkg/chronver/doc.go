// Package chronver implements chronologic versioning: version identifiers
// of the form YYYY.MM.DD.CHANGESET[-LABEL], where the date names the day a
// change was released, the changeset counter distinguishes multiple changes
// within that day, and the optional label marks pre-release style builds.
//
// # Overview
//
// The package provides parsing, ordering, and formatting for chronologic
// versions:
//
//   - Parse and MustParse convert text into a validated Version
//   - Version.Compare implements the total order over versions
//   - Version.String renders the canonical form
//   - New, Today, FromDate, and Version.Next construct and advance versions
//     programmatically
//
// A Version is an immutable value: every operation that changes a version
// (Next, WithLabel, WithoutLabel) returns a new value. All operations are
// pure functions, safe for concurrent use without synchronization.
//
// # Version Format
//
// The canonical form is year.month.day.changeset, each field in minimal
// decimal digits, optionally followed by a hyphen and a label:
//
//	2023.5.17.3
//	2023.5.17.3-beta.2
//	2024.1.9.0-break
//
// Parsing accepts leading zeros in numeric fields (2024.01.09.00 parses to
// the same value as 2024.1.9.0); only the numeric value is significant. The
// date must be a real Gregorian calendar date. The label, when present, is
// one or more non-empty dot-separated segments of ASCII letters, digits,
// and hyphens.
//
// # Ordering
//
// Versions order by year, month, day, and changeset numerically. When those
// are equal, the label decides: an unlabeled version ranks above any labeled
// one (a labeled build is a pre-release of the unlabeled version), and two
// labels compare segment by segment, numeric segments numerically, text
// segments byte-wise, with numeric ranking below text. A label that is a
// strict prefix of another ranks below it.
//
// # Error Handling
//
// Parse and the validating constructors reject input with a *ParseError
// carrying a machine-readable code, the component that failed, and the
// offending text. Use errors.Is against the per-kind sentinels or
// errors.As to inspect the payload:
//
//	_, err := chronver.Parse("2023.02.29.0")
//	if errors.Is(err, chronver.ErrCalendarValidation) {
//		// 2023 is not a leap year
//	}
//
// Compare and String never fail on a valid Version.
//
// # Serialization
//
// A Version serializes as its canonical string, not as a structured object.
// MarshalText/UnmarshalText cover encoding/json and any text-based codec;
// MarshalYAML/UnmarshalYAML cover gopkg.in/yaml.v3. Deserialization errors
// surface the same ParseError taxonomy as Parse.
package chronver
