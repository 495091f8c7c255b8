package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/redditage/pkg/httpx"
)

const rootMessage = "Reddit Account Age Checker API is running"

// timestampLayout matches JavaScript's Date.toISOString output.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HealthResponse is served by /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RootHandler answers liveness probes with a plain text banner.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteText(w, http.StatusOK, rootMessage)
}

// HealthHandler reports the service as healthy along with the current time.
func HealthHandler(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: now().UTC().Format(timestampLayout),
		})
	}
}
