package redditsdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/redditage/pkg/redditsdk"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "test:redditage:v0 (by /u/tester)"

func newTestClient(srv *httptest.Server) *redditsdk.Client {
	client := redditsdk.NewClient(testUserAgent)
	client.TokenURL = srv.URL + "/api/v1/access_token"
	client.APIBaseURL = srv.URL
	return client
}

func TestClientCredentials(t *testing.T) {
	t.Run("exchanges credentials with basic auth", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/access_token", r.URL.Path)
			require.Equal(t, testUserAgent, r.UserAgent())

			id, secret, ok := r.BasicAuth()
			require.True(t, ok)
			require.Equal(t, "client-id", id)
			require.Equal(t, "client-secret", secret)

			require.NoError(t, r.ParseForm())
			require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","expires_in":86400,"scope":"*"}`))
		}))
		defer srv.Close()

		tok, err := newTestClient(srv).ClientCredentials(context.Background(), "client-id", "client-secret")
		require.NoError(t, err)
		require.Equal(t, "tok-1", tok.AccessToken)
		require.Equal(t, 24*time.Hour, tok.ExpiresIn)
	})

	t.Run("non-2xx is returned as APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Unauthorized","error":401}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).ClientCredentials(context.Background(), "id", "bad")
		require.Error(t, err)

		var apiErr *redditsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.JSONEq(t, `{"message":"Unauthorized","error":401}`, string(apiErr.Body))
	})

	t.Run("missing access token fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"expires_in":3600}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).ClientCredentials(context.Background(), "id", "secret")
		require.Error(t, err)
	})
}

func TestUserAbout(t *testing.T) {
	t.Run("sends bearer token and escapes username", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/user/some%20one/about", r.URL.EscapedPath())
			require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			require.Equal(t, testUserAgent, r.UserAgent())

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"kind": "t2",
				"data": map[string]any{
					"id":            "abc123",
					"name":          "some one",
					"created_utc":   1.6e9,
					"link_karma":    3,
					"comment_karma": 4,
					"subreddit": map[string]any{
						"subscribers":        12,
						"public_description": "hello",
					},
				},
			})
		}))
		defer srv.Close()

		about, err := newTestClient(srv).UserAbout(context.Background(), "tok-1", "some one")
		require.NoError(t, err)
		require.NotNil(t, about.Data)
		require.Equal(t, "abc123", about.Data.ID)
		require.Equal(t, float64(1.6e9), about.Data.CreatedUTC)
		require.Nil(t, about.Data.TotalKarma)
		require.EqualValues(t, 3, *about.Data.LinkKarma)
		require.EqualValues(t, 12, *about.Data.Subreddit.Subscribers)
	})

	t.Run("missing data is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"kind":"t2"}`))
		}))
		defer srv.Close()

		about, err := newTestClient(srv).UserAbout(context.Background(), "tok", "ghost")
		require.NoError(t, err)
		require.Nil(t, about.Data)
	})

	t.Run("non-2xx keeps status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"message":"busy"}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).UserAbout(context.Background(), "tok", "spez")

		var apiErr *redditsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		require.Equal(t, json.RawMessage(`{"message":"busy"}`), apiErr.Details())
	})
}

func TestAPIErrorDetails(t *testing.T) {
	require.Nil(t, (&redditsdk.APIError{StatusCode: 500}).Details())
	require.Equal(t, "upstream exploded", (&redditsdk.APIError{Body: []byte("upstream exploded")}).Details())
}
