// Package versions orders entry version strings.
package versions

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare returns -1, 0 or 1 as a orders before, equal to or after b.
//
// The order is total: every non-semver string orders before every valid
// semantic version, so semver versions always rank newest. Two semantic
// versions compare by semver precedence, falling back to the raw strings when
// precedence ties ("v1.0.0" and "1.0.0"). Two non-semver strings compare
// lexically.
func Compare(a, b string) int {
	av, errA := semver.NewVersion(a)
	bv, errB := semver.NewVersion(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	if c := av.Compare(bv); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// IsNewerVersion reports whether newVersion is strictly greater than oldVersion
func IsNewerVersion(newVersion, oldVersion string) bool {
	return Compare(newVersion, oldVersion) > 0
}

// SortNewestFirst sorts items in place by the version key returns, newest
// first. Items with equal versions keep their relative order.
func SortNewestFirst[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return Compare(key(items[i]), key(items[j])) > 0
	})
}

// Latest returns the newest version in vs, or "" when vs is empty
func Latest(vs []string) string {
	var latest string
	for i, v := range vs {
		if i == 0 || IsNewerVersion(v, latest) {
			latest = v
		}
	}
	return latest
}
