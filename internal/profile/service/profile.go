package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/redditage/internal/profile/domain"
	"github.com/aussiebroadwan/redditage/internal/profile/metrics"
	"github.com/aussiebroadwan/redditage/pkg/redditsdk"
	"github.com/aussiebroadwan/redditage/pkg/slogx"
)

// Messages surfaced to callers in error bodies.
const (
	AuthFailureMessage  = "Failed to generate Reddit access token"
	FetchFailureMessage = "Failed to fetch Reddit data"
	TimeoutMessage      = "Reddit request timed out"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUserNotFound     = errors.New("user not found")
)

// UpstreamError describes a failed call to Reddit. StatusCode is the upstream
// status when one was received, otherwise 500.
type UpstreamError struct {
	StatusCode int
	Message    string
	Details    any // upstream body, nil when none was received
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AccessTokenSource yields bearer tokens for Reddit API calls.
type AccessTokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// UserFetcher reads a Reddit account record.
type UserFetcher interface {
	UserAbout(ctx context.Context, accessToken, username string) (*redditsdk.AboutResponse, error)
}

type ProfileService struct {
	Tokens  AccessTokenSource
	Users   UserFetcher
	Timeout time.Duration    // zero means DefaultUpstreamTimeout
	Now     func() time.Time // nil means time.Now
}

// FetchProfile looks up username on Reddit and maps the account into a Profile.
//
// Errors: ErrUsernameRequired before any network call, ErrUserNotFound when
// Reddit returns no account data, *UpstreamError for every other failure
// including token acquisition.
func (s *ProfileService) FetchProfile(ctx context.Context, username string) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(username) == "" {
		return domain.Profile{}, ErrUsernameRequired
	}

	token, err := s.Tokens.AccessToken(ctx)
	if err != nil {
		metrics.RecordLookup("auth_error")
		return domain.Profile{}, &UpstreamError{
			StatusCode: http.StatusInternalServerError,
			Message:    AuthFailureMessage,
			Err:        err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	about, err := s.Users.UserAbout(ctx, token, username)
	if err != nil {
		upErr := toUpstreamError(err)
		log.Error("reddit api error",
			"username", username,
			"status", upErr.StatusCode,
			"details", upErr.Details,
			"err", err,
		)
		metrics.RecordLookup("upstream_error")
		return domain.Profile{}, upErr
	}

	if about.Data == nil {
		metrics.RecordLookup("not_found")
		return domain.Profile{}, fmt.Errorf("%s: %w", username, ErrUserNotFound)
	}

	metrics.RecordLookup("ok")
	return domain.NewProfile(username, about.Data, s.now()), nil
}

func toUpstreamError(err error) *UpstreamError {
	var apiErr *redditsdk.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{
			StatusCode: apiErr.StatusCode,
			Message:    fmt.Sprintf("Request failed with status code %d", apiErr.StatusCode),
			Details:    apiErr.Details(),
			Err:        err,
		}
	}

	msg := FetchFailureMessage
	if errors.Is(err, context.DeadlineExceeded) {
		msg = TimeoutMessage
	}
	return &UpstreamError{
		StatusCode: http.StatusInternalServerError,
		Message:    msg,
		Err:        err,
	}
}

func (s *ProfileService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ProfileService) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultUpstreamTimeout
}
