package chronver

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText renders the canonical string form. encoding/json picks this
// up, so a Version serializes as a JSON string, never as an object.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the canonical string form. Failures surface the same
// ParseError taxonomy as Parse.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML renders the canonical string form for gopkg.in/yaml.v3.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML parses the canonical string form from a YAML scalar.
// Failures surface the same ParseError taxonomy as Parse.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("version must be a string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
