package amadeus

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTokenMargin is subtracted from the token expiry before reuse,
// protecting against races between our validity check and provider-side
// expiry.
const DefaultTokenMargin = 60 * time.Second

// Credentials caches the provider bearer token and refreshes it on demand.
// Concurrent cache misses are coalesced into a single exchange whose result
// all waiters share.
type Credentials struct {
	issuer Issuer
	margin time.Duration
	now    func() time.Time
	group  singleflight.Group

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewCredentials(issuer Issuer, margin time.Duration) *Credentials {
	if margin <= 0 {
		margin = DefaultTokenMargin
	}
	return &Credentials{
		issuer: issuer,
		margin: margin,
		now:    time.Now,
	}
}

// Token returns the cached bearer token when it is still valid, otherwise it
// triggers one exchange shared by every concurrent caller. A failed exchange
// stores nothing; the previously cached token (possibly expired) is left
// untouched and the next call retries.
func (c *Credentials) Token(ctx context.Context) (string, error) {
	if tok, ok := c.cached(); ok {
		return tok, nil
	}

	v, err, _ := c.group.Do("token", func() (any, error) {
		// A queued waiter may arrive after the winning flight already
		// refreshed the token.
		if tok, ok := c.cached(); ok {
			return tok, nil
		}

		tok, ttl, err := c.issuer.Exchange(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.token = tok
		c.expiresAt = c.now().Add(ttl)
		c.mu.Unlock()

		return tok, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Credentials) cached() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == "" {
		return "", false
	}
	if !c.now().Before(c.expiresAt.Add(-c.margin)) {
		return "", false
	}
	return c.token, true
}
