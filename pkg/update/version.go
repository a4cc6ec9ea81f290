package update

import (
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// versionPattern matches the first MAJOR.MINOR[.PATCH] run in a string.
var versionPattern = regexp.MustCompile(`v?(\d+)\.(\d+)(?:\.(\d+))?`)

// Version is a three-component numeric version. Absent components are zero.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ParseVersion extracts a Version from raw.
//
// The string does not have to be a bare version: the leftmost substring of
// the form "[v]MAJOR.MINOR[.PATCH]" is used, so "v1.2", "1.2.3" and
// "release-3.4.5-final" all parse. A missing patch component is 0.
// Returns a *FormatError when no such substring exists.
func ParseVersion(raw string) (Version, error) {
	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, &FormatError{Subject: subjectVersion, Input: raw}
	}

	var out Version
	var err error
	if out.Major, err = parseComponent(m[1]); err != nil {
		return Version{}, &FormatError{Subject: subjectVersion, Input: raw, Err: err}
	}
	if out.Minor, err = parseComponent(m[2]); err != nil {
		return Version{}, &FormatError{Subject: subjectVersion, Input: raw, Err: err}
	}
	if m[3] != "" {
		if out.Patch, err = parseComponent(m[3]); err != nil {
			return Version{}, &FormatError{Subject: subjectVersion, Input: raw, Err: err}
		}
	}
	return out, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func parseComponent(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func (v Version) semver() *semver.Version {
	return semver.New(v.Major, v.Minor, v.Patch, "", "")
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
// Ordering is lexicographic on (major, minor, patch).
func (v Version) Compare(other Version) int {
	return v.semver().Compare(other.semver())
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Equal reports whether all three components match.
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

// GreaterThan reports whether v orders after other.
func (v Version) GreaterThan(other Version) bool { return v.Compare(other) > 0 }

// String renders the version as MAJOR.MINOR.PATCH without a "v" prefix.
func (v Version) String() string {
	return v.semver().String()
}
