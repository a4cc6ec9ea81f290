package github

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RateLimitReset reports how long until the rate-limit window in h resets,
// relative to now. It returns false when the header is missing or invalid.
func RateLimitReset(h http.Header, now time.Time) (time.Duration, bool) {
	raw := strings.TrimSpace(h.Get("X-RateLimit-Reset"))
	if raw == "" {
		return 0, false
	}
	reset, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return time.Unix(reset, 0).Sub(now), true
}
