package redditsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxBodyBytes caps how much of an upstream response is read into memory.
const maxBodyBytes = 1 << 20

// UserAbout fetches /user/{username}/about with the given bearer token.
// The username is path-escaped. A 2xx response without a data object is returned
// as-is with a nil Data field.
func (c *Client) UserAbout(ctx context.Context, accessToken, username string) (*AboutResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.url("/user/"+url.PathEscape(username)+"/about"),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	var about AboutResponse
	if err := json.Unmarshal(body, &about); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &about, nil
}
