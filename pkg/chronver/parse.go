package chronver

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts input into a Version. The input must carry four
// dot-separated numeric components (year, month, day, changeset) naming a
// real calendar date, optionally followed by a hyphen and a label. Numeric
// fields accept any digit width, leading zeros included; only the numeric
// value is significant.
//
// Rejected input yields a *ParseError identifying the failure kind and the
// component that failed. See the package documentation for the taxonomy.
func Parse(input string) (Version, error) {
	if input == "" {
		return Version{}, newStructuralError("empty version string", "")
	}

	parts := strings.SplitN(input, ".", 4)
	if len(parts) < 4 {
		return Version{}, newStructuralError("too few components", input)
	}

	year, err := parseComponent(ComponentYear, parts[0])
	if err != nil {
		return Version{}, err
	}
	month, err := parseComponent(ComponentMonth, parts[1])
	if err != nil {
		return Version{}, err
	}
	day, err := parseComponent(ComponentDay, parts[2])
	if err != nil {
		return Version{}, err
	}

	// The label starts at the first hyphen after the numeric prefix; a
	// hyphen inside year, month, or day is just a non-digit character.
	changesetText, labelText, hasLabel := strings.Cut(parts[3], "-")
	if strings.Contains(changesetText, ".") {
		return Version{}, newStructuralError("too many components", input)
	}
	changeset, err := parseComponent(ComponentChangeset, changesetText)
	if err != nil {
		return Version{}, err
	}

	if dateErr := validateDate(year, month, day); dateErr != nil {
		return Version{}, dateErr
	}

	v := Version{Year: year, Month: month, Day: day, Changeset: changeset}
	if hasLabel {
		if labelText == "" {
			return Version{}, newLabelError("", "empty label")
		}
		label := Label(labelText)
		if labelErr := label.Validate(); labelErr != nil {
			return Version{}, labelErr
		}
		v.Label = label
	}
	return v, nil
}

// MustParse is like Parse but panics when the input does not parse. Use it
// for fixed version strings known to be valid.
//
// Example:
//
//	v := chronver.MustParse("2023.5.17.3-beta.2")
func MustParse(input string) Version {
	v, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("failed to parse version %q: %v", input, err))
	}
	return v
}

// parseComponent converts one numeric field. Any digit width is accepted;
// an empty field, a non-digit character, or overflow rejects the input.
func parseComponent(component, text string) (int, error) {
	if text == "" {
		return 0, newNumericError(component, text, "empty "+component, nil)
	}
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return 0, newNumericError(component, text, component+" is not a number", nil)
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, newNumericError(component, text, component+" overflows", err)
	}
	return n, nil
}
