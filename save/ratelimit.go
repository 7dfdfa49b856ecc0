package save

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/stash"
	"golang.org/x/time/rate"
)

var _ stash.DomainLimiter = (*DomainLimiter)(nil)

// Default per-site fetch pacing used by the CLI.
const (
	DefaultFetchRate  = 1.0
	DefaultFetchBurst = 1
)

// DomainLimiter paces fetches per site with one token bucket per
// normalized host, so www.example.com and example.com share a bucket.
type DomainLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter allows rps fetches per second to each site, with up to
// burst fetches back to back. A non-positive rps disables pacing.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limit:   limit,
		burst:   max(burst, 1),
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a fetch to domain is allowed. domain may be a host,
// a host:port pair or a full URL.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(NormalizeHost(domain)).Wait(ctx)
}

// Hosts returns the number of distinct sites seen so far.
func (d *DomainLimiter) Hosts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buckets)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[host]
	if !ok {
		b = rate.NewLimiter(d.limit, d.burst)
		d.buckets[host] = b
	}
	return b
}

// NormalizeHost reduces a URL or host to the lowercase hostname without
// port or leading "www.", matching stash.SiteNameFromURL.
func NormalizeHost(s string) string {
	host := strings.TrimSpace(s)
	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil {
			return strings.ToLower(host)
		}
		host = u.Host
	}
	host = (&url.URL{Host: host}).Hostname()
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
