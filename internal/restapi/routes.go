package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/current-time.json", handlerFunc(api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/frequency/lookup.json", handlerFunc(api.frequencyLookupHandler))
	router.Handler(http.MethodGet, "/api/frequency/candidates.json", handlerFunc(api.postcodeCandidatesHandler))
	router.Handler(http.MethodGet, "/api/frequency/calendar.json", handlerFunc(api.calendarHandler))
	router.Handler(http.MethodGet, "/api/frequency/calendar/:id", handlerFunc(api.frequencyHandler))
	router.Handler(http.MethodGet, "/api/frequency/next-dates.json", handlerFunc(api.nextDatesHandler))

	router.NotFound = handlerFunc(api.sendNotFound)
}

func (f handlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f(w, r)
}

// Middleware wraps the routed handler with the standard chain, outermost
// first: security headers, request logging, compression, rate limiting.
func (api *RestAPI) Middleware(next http.Handler) http.Handler {
	handler := api.rateLimiter.Handler(next)
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.Logger, api.trustedProxies)(handler)
	return api.WithSecurityHeaders(handler)
}

// Handler returns the API router wrapped in the standard middleware chain.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.Middleware(router)
}
