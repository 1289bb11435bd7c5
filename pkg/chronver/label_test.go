package chronver

import (
	"errors"
	"testing"
)

func TestLabelSegments(t *testing.T) {
	tests := []struct {
		name     string
		label    Label
		expected []string
	}{
		{
			name:     "empty",
			label:    "",
			expected: nil,
		},
		{
			name:     "single segment",
			label:    "alpha",
			expected: []string{"alpha"},
		},
		{
			name:     "multiple segments",
			label:    "beta.2.hotfix",
			expected: []string{"beta", "2", "hotfix"},
		},
		{
			name:     "hyphenated segment",
			label:    "alpha-x.y-z",
			expected: []string{"alpha-x", "y-z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.label.Segments()
			if len(got) != len(tt.expected) {
				t.Fatalf("Segments() = %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Segments()[%d] = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLabelValidate(t *testing.T) {
	valid := []Label{
		"",
		"alpha",
		"beta.2",
		"-",
		"0.1.2",
		"RC-1.final",
		"break",
	}
	for _, l := range valid {
		if err := l.Validate(); err != nil {
			t.Errorf("Validate(%q) returned error: %v", l, err)
		}
	}

	invalid := []Label{
		"alpha..beta",
		".alpha",
		"alpha.",
		"beta_2",
		"beta 2",
		"beta!",
		".",
	}
	for _, l := range invalid {
		err := l.Validate()
		if err == nil {
			t.Errorf("Validate(%q) expected error", l)
			continue
		}
		if !errors.Is(err, ErrLabelValidation) {
			t.Errorf("Validate(%q) error = %v, expected label validation error", l, err)
		}
	}
}

func TestLabelCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        Label
		b        Label
		expected int
	}{
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 0,
		},
		{
			name:     "empty outranks labeled",
			a:        "",
			b:        "alpha",
			expected: 1,
		},
		{
			name:     "numeric segments compare by value",
			a:        "alpha.2",
			b:        "alpha.10",
			expected: -1,
		},
		{
			name:     "numeric below text",
			a:        "1",
			b:        "alpha",
			expected: -1,
		},
		{
			name:     "text compares by bytes",
			a:        "alpha",
			b:        "beta",
			expected: -1,
		},
		{
			name:     "uppercase sorts before lowercase",
			a:        "BETA",
			b:        "beta",
			expected: -1,
		},
		{
			name:     "prefix sorts lower",
			a:        "alpha",
			b:        "alpha.1",
			expected: -1,
		},
		{
			name:     "leading zeros equal in value",
			a:        "alpha.01",
			b:        "alpha.1",
			expected: 0,
		},
		{
			name:     "equal labels",
			a:        "rc.1",
			b:        "rc.1",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expected {
				t.Errorf("Compare(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
			if got := tt.b.Compare(tt.a); got != -tt.expected {
				t.Errorf("Compare(%q, %q) = %d, expected %d", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}

func TestLabelIsBreaking(t *testing.T) {
	if !Label("break").IsBreaking() {
		t.Error("expected break label to be breaking")
	}
	if Label("break.2").IsBreaking() {
		t.Error("expected break.2 to not be breaking")
	}
	if Label("").IsBreaking() {
		t.Error("expected empty label to not be breaking")
	}
	if Label("BREAK").IsBreaking() {
		t.Error("expected BREAK to not be breaking, match is exact")
	}
}

func TestLabelString(t *testing.T) {
	if got := Label("beta.2").String(); got != "beta.2" {
		t.Errorf("String() = %q, expected %q", got, "beta.2")
	}
	if got := Label("").String(); got != "" {
		t.Errorf("String() = %q, expected empty", got)
	}
}
