package update

import "fmt"

type Decision string

const (
	DecisionUpdate  Decision = "update"  // remote release is newer
	DecisionCurrent Decision = "current" // local version matches the release
	DecisionAhead   Decision = "ahead"   // local version is newer than the release
)

// Decide compares a local version with the latest remote release.
func Decide(local, remote Version) Decision {
	switch local.Compare(remote) {
	case -1:
		return DecisionUpdate
	case 1:
		return DecisionAhead
	default:
		return DecisionCurrent
	}
}

// FormatVersionDisplay formats a version for display with a "v" prefix.
func FormatVersionDisplay(v Version) string {
	return "v" + v.String()
}

// DescribeDecision returns a human-readable summary of d.
func DescribeDecision(d Decision) string {
	switch d {
	case DecisionUpdate:
		return "Update available"
	case DecisionCurrent:
		return "Already at latest version (no update needed)"
	case DecisionAhead:
		return "Local version is newer than the latest release"
	default:
		return string(d)
	}
}

// DescribeResult renders a one-line summary such as "Update available: v1.2.3 → v1.3.0".
func DescribeResult(r Result) string {
	return fmt.Sprintf("%s: %s → %s", DescribeDecision(r.Decision()),
		FormatVersionDisplay(r.Local), FormatVersionDisplay(r.Remote))
}
