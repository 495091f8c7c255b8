package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/redditage/internal/profile/service"
	"github.com/aussiebroadwan/redditage/pkg/httpx"
	"github.com/aussiebroadwan/redditage/pkg/slogx"
)

// noDetails is reported when an upstream failure carried no body.
const noDetails = "No additional details"

type ProfileHandler struct {
	ProfileService ProfileFetcher
}

// ServeHTTP handles GET /api/reddit/{username}.
//
// 200 with the profile, 400 when the username is missing, 404 when Reddit has no
// such user, otherwise the upstream status (or 500) with error details.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	username := r.PathValue("username")

	profile, err := h.ProfileService.FetchProfile(ctx, username)
	if err == nil {
		httpx.WriteJSON(w, http.StatusOK, profile)
		return
	}

	var upErr *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrUsernameRequired):
		httpx.WriteError(w, http.StatusBadRequest, "Username is required")

	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, fmt.Sprintf("User %s not found", username))

	case errors.As(err, &upErr):
		var details any = noDetails
		if upErr.Details != nil {
			details = upErr.Details
		}
		httpx.WriteJSON(w, statusOrDefault(upErr.StatusCode), httpx.ErrorResponse{
			Error:   upErr.Message,
			Details: details,
		})

	default:
		log.Error("unexpected profile lookup error", "username", username, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:   service.FetchFailureMessage,
			Details: noDetails,
		})
	}
}

// statusOrDefault only lets real error statuses through.
func statusOrDefault(code int) int {
	if code < http.StatusBadRequest || code > 599 {
		return http.StatusInternalServerError
	}
	return code
}
