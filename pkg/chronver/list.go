package chronver

import (
	"fmt"
	"sort"
)

// Versions is a sortable collection of Version values.
type Versions []Version

// Len implements sort.Interface.
func (vs Versions) Len() int { return len(vs) }

// Less implements sort.Interface using Compare.
func (vs Versions) Less(i, j int) bool { return vs[i].Compare(vs[j]) < 0 }

// Swap implements sort.Interface.
func (vs Versions) Swap(i, j int) { vs[i], vs[j] = vs[j], vs[i] }

// Sort orders the collection in place, oldest first.
func (vs Versions) Sort() {
	sort.Sort(vs)
}

// Latest returns the newest version in the collection. The second return is
// false when the collection is empty.
func (vs Versions) Latest() (Version, bool) {
	if len(vs) == 0 {
		return Version{}, false
	}
	latest := vs[0]
	for _, v := range vs[1:] {
		if v.IsNewer(latest) {
			latest = v
		}
	}
	return latest, true
}

// Oldest returns the oldest version in the collection. The second return is
// false when the collection is empty.
func (vs Versions) Oldest() (Version, bool) {
	if len(vs) == 0 {
		return Version{}, false
	}
	oldest := vs[0]
	for _, v := range vs[1:] {
		if v.IsOlder(oldest) {
			oldest = v
		}
	}
	return oldest, true
}

// Contains reports whether the collection holds a version comparing equal
// to v.
func (vs Versions) Contains(v Version) bool {
	for _, have := range vs {
		if have.Equals(v) {
			return true
		}
	}
	return false
}

// Strings returns the canonical form of every version, in collection order.
func (vs Versions) Strings() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

// ParseAll parses every input string, failing on the first invalid one with
// an error that names it.
func ParseAll(inputs []string) (Versions, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	out := make(Versions, 0, len(inputs))
	for _, in := range inputs {
		v, err := Parse(in)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", in, err)
		}
		out = append(out, v)
	}
	return out, nil
}
