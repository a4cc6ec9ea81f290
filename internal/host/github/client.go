package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultUserAgent = "relcheck"
	DefaultTimeout   = 30 * time.Second

	maxBodyBytes = 8 << 20
)

func TokenFromEnv() string {
	if tok := strings.TrimSpace(os.Getenv("RELCHECK_GITHUB_TOKEN")); tok != "" {
		return tok
	}
	return strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
}

func UserAgent(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return DefaultUserAgent
	}
	return fmt.Sprintf("%s/%s", DefaultUserAgent, version)
}

// isGitHubHost reports whether host is github.com or one of its subdomains.
// Substring matches such as notgithub.com or api.github.com.example do not count.
func isGitHubHost(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	return host == "github.com" || strings.HasSuffix(host, ".github.com")
}

// Client fetches release metadata from the GitHub API.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Token     string
	Logger    zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTP = hc }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

func WithToken(tok string) Option {
	return func(c *Client) { c.Token = tok }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// NewClient returns a client with a 30s timeout, the default user agent and
// the token from the environment.
func NewClient(opts ...Option) *Client {
	c := &Client{
		HTTP:      &http.Client{Timeout: DefaultTimeout},
		UserAgent: DefaultUserAgent,
		Token:     TokenFromEnv(),
		Logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs a single GET and returns the body whatever the HTTP
// status: GitHub error responses carry a JSON "message" the caller wants to
// surface. Only transport failures are returned as errors.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" && isGitHubHost(req.URL.Hostname()) {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}

	start := time.Now()
	c.Logger.Debug().Str("url", url).Str("userAgent", ua).Bool("auth", req.Header.Get("Authorization") != "").Msg("fetching release metadata")
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	ev := c.Logger.Debug().Str("url", url).Int("status", resp.StatusCode).Dur("elapsed", time.Since(start))
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		ev = ev.Str("rateLimitRemaining", remaining)
	}
	if until, ok := RateLimitReset(resp.Header, time.Now()); ok {
		ev = ev.Dur("rateLimitResetIn", until)
	}
	ev.Msg("release metadata response")

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
