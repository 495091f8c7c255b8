package redditsdk

import (
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTokenURL is Reddit's OAuth2 token endpoint.
	DefaultTokenURL = "https://www.reddit.com/api/v1/access_token"

	// DefaultAPIBaseURL is the host serving authenticated API calls.
	DefaultAPIBaseURL = "https://oauth.reddit.com"
)

// Client talks to Reddit's OAuth API.
type Client struct {
	TokenURL   string
	APIBaseURL string

	// UserAgent is sent on every request. Reddit throttles or blocks generic agents.
	UserAgent string

	HTTPClient *http.Client
}

// NewClient creates a Client pointed at the production Reddit endpoints.
func NewClient(userAgent string) *Client {
	return &Client{
		TokenURL:   DefaultTokenURL,
		APIBaseURL: DefaultAPIBaseURL,
		UserAgent:  userAgent,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// url builds a complete API URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return strings.TrimSuffix(c.APIBaseURL, "/") + path
}
