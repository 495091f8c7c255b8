package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aussiebroadwan/redditage/internal/profile/metrics"
	"github.com/aussiebroadwan/redditage/pkg/redditsdk"
	"github.com/aussiebroadwan/redditage/pkg/slogx"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultUpstreamTimeout bounds every call made to Reddit.
	DefaultUpstreamTimeout = 5 * time.Second

	// DefaultExpiryBuffer is subtracted from the declared token lifetime so a token
	// is never presented right at the point Reddit expires it.
	DefaultExpiryBuffer = 10 * time.Second
)

// ErrAuth is returned when an access token could not be obtained. The upstream
// reason is logged, never returned.
var ErrAuth = errors.New("failed to generate reddit access token")

// CredentialsExchanger performs the client credentials grant.
type CredentialsExchanger interface {
	ClientCredentials(ctx context.Context, clientID, clientSecret string) (*redditsdk.Token, error)
}

// CachedToken is an access token together with the instant it stops being usable.
type CachedToken struct {
	Value     string
	ExpiresAt time.Time
}

// ValidAt reports whether the token may be used at t.
func (c CachedToken) ValidAt(t time.Time) bool {
	return c.Value != "" && t.Before(c.ExpiresAt)
}

// TokenProvider hands out a Reddit application token, reusing it until shortly
// before expiry. Safe for concurrent use; concurrent refreshes collapse into a
// single exchange.
type TokenProvider struct {
	Client       CredentialsExchanger
	ClientID     string
	ClientSecret string

	Timeout      time.Duration    // zero means DefaultUpstreamTimeout
	ExpiryBuffer time.Duration    // zero means DefaultExpiryBuffer
	Now          func() time.Time // nil means time.Now

	mu     sync.RWMutex
	cached CachedToken
	group  singleflight.Group
}

// AccessToken returns a usable access token, performing a client credentials
// exchange only when the cached one is missing or stale.
func (p *TokenProvider) AccessToken(ctx context.Context) (string, error) {
	if tok, ok := p.lookup(); ok {
		return tok, nil
	}

	v, err, _ := p.group.Do("access_token", func() (any, error) {
		// Another caller may have refreshed while we waited.
		if tok, ok := p.lookup(); ok {
			return tok, nil
		}
		return p.refresh(ctx)
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (p *TokenProvider) lookup() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.cached.ValidAt(p.now()) {
		return p.cached.Value, true
	}
	return "", false
}

// refresh exchanges credentials and stores the result. The exchange is not tied
// to the caller's cancellation because other callers may be waiting on it.
func (p *TokenProvider) refresh(ctx context.Context) (string, error) {
	log := slogx.FromContext(ctx)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout())
	defer cancel()

	issuedAt := p.now()
	tok, err := p.Client.ClientCredentials(ctx, p.ClientID, p.ClientSecret)
	if err == nil && tok.AccessToken == "" {
		err = errors.New("empty access token in response")
	}
	metrics.RecordTokenRefresh(err)

	if err != nil {
		attrs := []any{"err", err}
		var apiErr *redditsdk.APIError
		if errors.As(err, &apiErr) {
			attrs = append(attrs, "status", apiErr.StatusCode, "body", string(apiErr.Body))
		}
		log.Error("reddit token error", attrs...)
		return "", ErrAuth
	}

	expiresAt := issuedAt.Add(tok.ExpiresIn - p.expiryBuffer())

	p.mu.Lock()
	p.cached = CachedToken{Value: tok.AccessToken, ExpiresAt: expiresAt}
	p.mu.Unlock()

	log.Debug("reddit access token refreshed", "expires_at", expiresAt)
	return tok.AccessToken, nil
}

func (p *TokenProvider) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *TokenProvider) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return DefaultUpstreamTimeout
}

func (p *TokenProvider) expiryBuffer() time.Duration {
	if p.ExpiryBuffer > 0 {
		return p.ExpiryBuffer
	}
	return DefaultExpiryBuffer
}
