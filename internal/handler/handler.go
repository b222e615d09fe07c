package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pokepalette-backend/internal/domain"
	"pokepalette-backend/internal/service"
)

// maxRequestBody begrenzt die POST-Body-Größe auf 1 MegaByte
const maxRequestBody = 1 << 20

// ColourService definiert den Vertrag, den der Handler von der Service-Schicht erwartet.
type ColourService interface {
	Handle(ctx context.Context, rawName string) (domain.Envelope, error)
	Palette(ctx context.Context, name string) (domain.Palette, error)
	Status(ctx context.Context) (service.CatalogStatus, error)
}

// ColourHandler stellt die Paletten-Endpunkte über HTTP bereit.
type ColourHandler struct {
	service ColourService
	logger  *zap.Logger
}

// NewColourHandler erstellt einen neuen ColourHandler.
func NewColourHandler(svc ColourService, logger *zap.Logger) *ColourHandler {
	return &ColourHandler{service: svc, logger: logger}
}

// colourRequest ist der Body von POST /get_colours. Fehlt "data", wird mit
// einem leeren Namen gesucht.
type colourRequest struct {
	Data string `json:"data"`
}

// GetColours löst einen Pokémon-Namen zu Palette, Vorschlägen oder NO_POKEMON auf.
func (h *ColourHandler) GetColours(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req colourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{"ungültiger anfrage-body"})
		return
	}
	h.logger.Info("suchanfrage", zap.String("data", req.Data))

	env, err := h.service.Handle(r.Context(), req.Data)
	if err != nil {
		h.writeError(w, err, "farben abrufen")
		return
	}
	writeJSON(w, http.StatusOK, env)
}

// GetPalette gibt die strukturierte Palette für einen exakt bekannten Namen zurück.
func (h *ColourHandler) GetPalette(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	p, err := h.service.Palette(r.Context(), name)
	if err != nil {
		h.writeError(w, err, "palette abrufen")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetCatalogStatus meldet Ladezustand und Größe des Katalogs.
func (h *ColourHandler) GetCatalogStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Status(r.Context())
	if err != nil {
		h.writeError(w, err, "katalogstatus abrufen")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// writeError bildet Domänenfehler auf HTTP-Statuscodes ab.
func (h *ColourHandler) writeError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrCatalogNotReady):
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusServiceUnavailable, errorBody{err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody{err.Error()})
	case errors.Is(err, domain.ErrProcessFailed):
		h.logger.Error(op, zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorBody{"berechnung fehlgeschlagen"})
	default:
		h.logger.Error(op, zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{"interner serverfehler"})
	}
}

// errorBody ist die einheitliche Fehlerantwort-Struktur.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON setzt den Content-Type-Header und schreibt v als JSON in w.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
