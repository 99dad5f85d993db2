package restapi

import (
	"log/slog"
	"time"

	"github.com/brightpane/roundfinder/internal/app"
	"github.com/brightpane/roundfinder/internal/logging"
	"github.com/brightpane/roundfinder/internal/utils"
)

type RestAPI struct {
	*app.Application
	rateLimiter    *RateLimitMiddleware
	trustedProxies utils.TrustedProxies
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	if app.Logger == nil {
		app.Logger = slog.Default()
	}

	// The entry point rejects bad entries at startup; anything left here is
	// logged and the API falls back to trusting no proxy.
	trusted, err := utils.ParseTrustedProxies(app.Config.TrustedProxies)
	if err != nil {
		logging.LogError(app.Logger, "ignoring trusted proxies", err,
			slog.String("component", "rest_api"))
		trusted = nil
	}

	return &RestAPI{
		Application:    app,
		rateLimiter:    NewRateLimitMiddleware(app.Config.RateLimit, time.Second, trusted),
		trustedProxies: trusted,
	}
}

// Shutdown stops background work owned by the API.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
