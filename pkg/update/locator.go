package update

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	DefaultAPIBase = "https://api.github.com"
	DefaultWebHost = "github.com"
)

// Locator turns repository references into "latest release" endpoints.
// The zero value targets github.com.
type Locator struct {
	// APIBase is the API root endpoints are built on, e.g. https://api.github.com.
	APIBase string
	// WebHost is the host of web-facing repository URLs, e.g. github.com.
	WebHost string
}

func (l Locator) apiBase() string {
	base := strings.TrimSpace(l.APIBase)
	if base == "" {
		base = DefaultAPIBase
	}
	return strings.TrimRight(base, "/")
}

func (l Locator) webHost() string {
	host := strings.TrimSpace(l.WebHost)
	if host == "" {
		return DefaultWebHost
	}
	return host
}

// apiMarker is the substring identifying an already resolved endpoint:
// the API host plus any path prefix (GitHub Enterprise serves /api/v3 on
// the web host).
func (l Locator) apiMarker() string {
	base := l.apiBase()
	if u, err := url.Parse(base); err == nil && u.Host != "" {
		return u.Host + strings.TrimRight(u.Path, "/")
	}
	return base
}

func (l Locator) webPattern() *regexp.Regexp {
	return regexp.MustCompile(`https://` + regexp.QuoteMeta(l.webHost()) + `/([^/]+)/([^/]+)`)
}

// Repository extracts the owner and repository name from a web URL such as
// https://github.com/owner/repo or https://github.com/owner/repo.git.
func (l Locator) Repository(input string) (owner, repo string, err error) {
	m := l.webPattern().FindStringSubmatch(input)
	if m == nil {
		return "", "", &FormatError{Subject: subjectRepoURL, Input: input}
	}
	owner = m[1]
	repo = strings.TrimSuffix(m[2], ".git")
	if repo == "" {
		return "", "", &FormatError{Subject: subjectRepoURL, Input: input}
	}
	return owner, repo, nil
}

// Resolve returns the latest-release endpoint for input.
//
// Inputs that already contain the API host are returned unchanged, which
// makes Resolve idempotent. Anything else must look like a web repository
// URL; a trailing ".git" on the repository name is dropped. Returns a
// *FormatError when input is neither.
func (l Locator) Resolve(input string) (string, error) {
	if strings.Contains(input, l.apiMarker()) {
		return input, nil
	}
	owner, repo, err := l.Repository(input)
	if err != nil {
		return "", err
	}
	return l.apiBase() + "/repos/" + owner + "/" + repo + "/releases/latest", nil
}

// ResolveEndpoint resolves input against github.com.
func ResolveEndpoint(input string) (string, error) {
	return Locator{}.Resolve(input)
}
