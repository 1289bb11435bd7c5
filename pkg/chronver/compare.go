package chronver

// Compare orders two versions. It returns -1 when v is older than other, 0
// when they compare equal, and 1 when v is newer. Year, month, day, and
// changeset compare numerically in that order; when all four are equal the
// labels decide, with an unlabeled version ranking above any labeled one.
//
// Compare is a strict total order over valid Versions and never fails.
// Note that Compare can return 0 for versions whose labels differ only in
// leading zeros of numeric segments ("alpha.1" and "alpha.01"); use == for
// structural equality.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Year, other.Year); c != 0 {
		return c
	}
	if c := compareInt(v.Month, other.Month); c != 0 {
		return c
	}
	if c := compareInt(v.Day, other.Day); c != 0 {
		return c
	}
	if c := compareInt(v.Changeset, other.Changeset); c != 0 {
		return c
	}
	return v.Label.Compare(other.Label)
}

// Equals reports whether both versions compare equal.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// IsNewer reports whether v orders after other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// IsOlder reports whether v orders before other.
func (v Version) IsOlder(other Version) bool {
	return v.Compare(other) < 0
}

// EqualsOrNewer reports whether v orders at or after other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
