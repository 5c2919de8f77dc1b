// Package router sets up all HTTP routes and middleware chains for the
// creative studio API. Catalog lookups are read-only; generation routes sit
// behind the rate limiter.
package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"creativestudio/internal/handlers"
	"creativestudio/internal/middleware"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. A nil limiter leaves generation unthrottled.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.MaxBody(MaxBodyBytes))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	r.Get("/health", api.Health)

	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/channels", api.Channels)
		r.Get("/channels/{channelID}/subchannels", api.Subchannels)
		r.Get("/formats", api.Formats)
		r.Get("/providers", api.Providers)

		// Generation, rate-limited per client.
		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Middleware)
			}
			r.Post("/creatives/generate", api.Generate)
			r.Post("/prompts", api.Prompt)
		})

		// Asset library
		r.Route("/items/{itemID}/assets", func(r chi.Router) {
			r.Get("/", api.ListItemAssets)
			r.Post("/", api.SaveAsset)
		})
		r.Route("/assets/{id}", func(r chi.Router) {
			r.Get("/", api.GetAsset)
			r.Delete("/", api.DeleteAsset)
			r.Get("/preview.png", api.AssetPreview)
			r.Get("/download.svg", api.AssetDownload)
		})
	})

	return r
}
