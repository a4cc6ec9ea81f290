package update

import (
	"context"

	gh "github.com/3leaps/relcheck/internal/host/github"
)

// Fetcher performs one blocking GET and returns the raw response body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// Result is the outcome of a single update check.
type Result struct {
	// HasUpdate is true iff the remote version is strictly greater than the local one.
	HasUpdate bool
	// LatestVersion is the remote tag exactly as published, e.g. "v3.11.3".
	LatestVersion string

	Endpoint string
	Local    Version
	Remote   Version
}

// Decision classifies the result as update, current or ahead.
func (r Result) Decision() Decision {
	return Decide(r.Local, r.Remote)
}

// Checker compares a local version with the latest release of a repository.
// A Checker holds no mutable state and is safe for concurrent use.
type Checker struct {
	Locator Locator
	Fetcher Fetcher
	Parse   func(body []byte) (Document, error)
}

type Option func(*Checker)

func WithLocator(l Locator) Option {
	return func(c *Checker) { c.Locator = l }
}

func WithFetcher(f Fetcher) Option {
	return func(c *Checker) { c.Fetcher = f }
}

func WithParser(parse func(body []byte) (Document, error)) Option {
	return func(c *Checker) { c.Parse = parse }
}

// NewChecker returns a Checker targeting github.com through the default
// GitHub client, adjusted by opts.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	if c.Fetcher == nil {
		c.Fetcher = gh.NewClient()
	}
	if c.Parse == nil {
		c.Parse = ParseDocument
	}
	return c
}

// Check resolves repoRef, fetches its latest release, and compares the
// release tag with localVersion.
//
// The steps run in order and stop at the first failure: resolve the endpoint
// (*FormatError), fetch it (*TransportError), decode the body (*ParseError),
// extract tag_name (*APIError), then parse the local and remote versions
// (*FormatError). The fetch therefore happens before localVersion is parsed.
// No partial Result is returned on failure.
func (c *Checker) Check(ctx context.Context, repoRef, localVersion string) (Result, error) {
	endpoint, err := c.Locator.Resolve(repoRef)
	if err != nil {
		return Result{}, err
	}

	fetcher := c.Fetcher
	if fetcher == nil {
		fetcher = gh.NewClient()
	}
	body, err := fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return Result{}, &TransportError{URL: endpoint, Err: err}
	}

	parse := c.Parse
	if parse == nil {
		parse = ParseDocument
	}
	doc, err := parse(body)
	if err != nil {
		return Result{}, &ParseError{Err: err}
	}

	tag, ok := doc.String("tag_name")
	if !ok {
		if msg, ok := doc.String("message"); ok {
			return Result{}, &APIError{Message: msg}
		}
		return Result{}, &APIError{}
	}

	local, err := ParseVersion(localVersion)
	if err != nil {
		return Result{}, err
	}
	remote, err := ParseVersion(tag)
	if err != nil {
		return Result{}, err
	}

	return Result{
		HasUpdate:     remote.GreaterThan(local),
		LatestVersion: tag,
		Endpoint:      endpoint,
		Local:         local,
		Remote:        remote,
	}, nil
}

// defaultChecker is built per call so the token is read from the
// environment at check time, not at import time.
func defaultChecker() *Checker {
	return NewChecker()
}

// CheckUpdate runs Check with the default github.com Checker.
func CheckUpdate(ctx context.Context, repoRef, localVersion string) (Result, error) {
	return defaultChecker().Check(ctx, repoRef, localVersion)
}
