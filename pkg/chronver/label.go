package chronver

import (
	"fmt"
	"strconv"
	"strings"
)

// LabelBreak is the label that marks a version as a breaking change.
const LabelBreak Label = "break"

// Label is the optional pre-release style qualifier of a Version: one or
// more dot-separated segments of ASCII letters, digits, and hyphens. The
// empty Label means "no label".
type Label string

// String returns the label text.
func (l Label) String() string {
	return string(l)
}

// Segments returns the dot-separated segments of the label, or nil when the
// label is empty.
func (l Label) Segments() []string {
	if l == "" {
		return nil
	}
	return strings.Split(string(l), ".")
}

// IsBreaking reports whether the label marks a breaking change.
func (l Label) IsBreaking() bool {
	return l == LabelBreak
}

// Validate checks the label grammar: non-empty dot-separated segments of
// ASCII letters, digits, and hyphens. The empty label is valid and means
// "no label".
func (l Label) Validate() error {
	if l == "" {
		return nil
	}
	for _, seg := range l.Segments() {
		if seg == "" {
			return newLabelError(string(l), "empty label segment")
		}
		for i := 0; i < len(seg); i++ {
			if !isLabelChar(seg[i]) {
				return newLabelError(seg, fmt.Sprintf("invalid character %q in label segment", seg[i]))
			}
		}
	}
	return nil
}

// Compare orders labels by pre-release precedence: the empty label ranks
// above any non-empty one, and non-empty labels compare segment by segment
// with numeric segments before text segments. A label that is a strict
// prefix of another ranks below it. Returns -1, 0, or 1.
func (l Label) Compare(other Label) int {
	switch {
	case l == other:
		return 0
	case l == "":
		return 1
	case other == "":
		return -1
	}

	ls, os := l.Segments(), other.Segments()
	for i := 0; i < len(ls) && i < len(os); i++ {
		if c := compareSegment(ls[i], os[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ls) < len(os):
		return -1
	case len(ls) > len(os):
		return 1
	default:
		return 0
	}
}

// segment is the tagged form of one label segment: a segment is numeric
// when it consists solely of digits and fits a uint64, otherwise it is
// text.
type segment struct {
	num     uint64
	text    string
	numeric bool
}

func parseSegment(s string) segment {
	if allDigits(s) {
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			return segment{num: n, numeric: true}
		}
	}
	return segment{text: s}
}

// compareSegment orders two label segments: both numeric compare
// numerically, both text compare byte-wise, and a numeric segment ranks
// below a text one.
func compareSegment(a, b string) int {
	sa, sb := parseSegment(a), parseSegment(b)
	switch {
	case sa.numeric && sb.numeric:
		switch {
		case sa.num < sb.num:
			return -1
		case sa.num > sb.num:
			return 1
		default:
			return 0
		}
	case sa.numeric:
		return -1
	case sb.numeric:
		return 1
	default:
		return strings.Compare(sa.text, sb.text)
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isLabelChar(c byte) bool {
	return c == '-' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
