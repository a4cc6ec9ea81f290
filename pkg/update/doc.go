// Package update checks whether a newer release of a GitHub project exists.
//
// It is meant for CLIs and build scripts that want a lightweight "check for
// updates" step: resolve a repository reference to its latest-release
// endpoint, fetch the release metadata once, and compare the published tag
// with a locally known version.
//
// The package does not cache results, retry failed requests,
// or download anything beyond the release metadata. It never logs; callers
// decide how failures are reported.
//
// Version model
//   - Versions are MAJOR.MINOR[.PATCH] numeric triples; a missing patch is 0.
//   - Parsing searches for the first such run anywhere in the string, so
//     "v1.2.3", "1.2" and "release-3.4.5-final" are all accepted.
//   - Pre-release and build-metadata suffixes are not ordered; "1.2.3-rc1"
//     parses as 1.2.3.
//
// Errors
//   - *FormatError: malformed version string or repository reference.
//   - *TransportError: the release endpoint could not be fetched.
//   - *ParseError: the response body was not a JSON object.
//   - *APIError: the document had no tag_name; Message carries the upstream
//     "message" (rate limit, "Not Found") when present.
//
// Use KindOf to classify an error without type switches.
package update
