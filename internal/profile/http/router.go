package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/redditage/internal/profile/domain"
	"github.com/aussiebroadwan/redditage/internal/profile/metrics"
	"github.com/aussiebroadwan/redditage/pkg/httpx"
	"github.com/aussiebroadwan/redditage/pkg/slogx"
)

// ProfileFetcher resolves a Reddit username into a Profile.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (domain.Profile, error)
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	logger *slog.Logger

	ProfileService ProfileFetcher

	// APILimit throttles /api/ per client address. Nil disables rate limiting.
	APILimit *httpx.RateLimitConfig

	// Now is the clock used by the health endpoint. Nil means time.Now.
	Now func() time.Time
}

func NewRouter(cors httpx.CORSConfig, logger *slog.Logger) *Router {
	r := &Router{
		Mux:    http.NewServeMux(),
		logger: logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerProfiles()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerProfiles() {
	var limits []httpx.Middleware
	if r.APILimit != nil {
		limits = append(limits, httpx.RateLimitByIP(*r.APILimit))
	}

	h := &ProfileHandler{ProfileService: r.ProfileService}

	// The trailing wildcard also matches an empty username so it can be rejected with 400.
	r.Mux.Handle("GET /api/reddit/{username...}", httpx.Chain(h, limits...))
}

func (r *Router) registerSystem() {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	r.Mux.HandleFunc("GET /{$}", RootHandler)
	r.Mux.Handle("GET /health", HealthHandler(now))
	r.Mux.Handle("GET /metrics", metrics.Handler())
}
