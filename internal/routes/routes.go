package routes

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pokepalette-backend/internal/handler"
	"pokepalette-backend/internal/middleware"
)

// Setup registriert globale Middleware, die API-Endpunkte und die Frontend-Dateien am Router.
func Setup(r chi.Router, h *handler.ColourHandler, static *handler.Static, logger *zap.Logger, rps float64) {
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rps, logger))
		r.Post("/get_colours", h.GetColours)
		r.Get("/palettes/{name}", h.GetPalette)
	})
	r.Get("/catalog", h.GetCatalogStatus)

	r.Get("/", static.File("index.html"))
	r.Get("/styles.css", static.File("styles.css"))
	r.Get("/frontend.js", static.File("pkg/pokepalette_frontend.js"))
	r.Get("/frontend_bg.wasm", static.File("pkg/pokepalette_frontend_bg.wasm"))
}
