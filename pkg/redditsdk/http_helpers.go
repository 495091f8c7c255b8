package redditsdk

import (
	"net/http"
)

// userAgentTransport stamps the configured User-Agent onto outgoing requests.
type userAgentTransport struct {
	userAgent string
	next      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(req)
}

// httpClient returns a shallow copy of the configured client whose transport
// always carries the User-Agent, including requests issued by x/oauth2.
func (c *Client) httpClient() *http.Client {
	base := c.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}

	next := base.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	clone := *base
	clone.Transport = &userAgentTransport{userAgent: c.UserAgent, next: next}
	return &clone
}
