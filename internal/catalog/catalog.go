// Package catalog baut beim Start die Tabelle Name → Sprite-ID auf.
//
// Der Katalog wird genau einmal befüllt, während der Server bereits Anfragen
// annimmt. Über State lässt sich "noch nicht geladen" von "geladen, aber kein
// Treffer" unterscheiden. Ein fehlgeschlagener Ladevorgang ist nicht fatal:
// der Katalog bleibt leer und jede Suche läuft in die unscharfe Namenssuche.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"pokepalette-backend/internal/domain"
	"pokepalette-backend/internal/repository"
)

// State beschreibt den Ladezustand des Katalogs.
type State int32

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Source liefert Rohnamen in Upstream-Reihenfolge.
type Source interface {
	Fetch(ctx context.Context, limit int) ([]string, error)
}

// Catalog verbindet Ladezustand und Ablage.
type Catalog struct {
	repo   repository.CatalogRepository
	state  atomic.Int32
	logger *zap.Logger
}

// New gibt einen leeren Katalog im Zustand StateLoading zurück.
func New(repo repository.CatalogRepository, logger *zap.Logger) *Catalog {
	return &Catalog{repo: repo, logger: logger}
}

// State gibt den aktuellen Ladezustand zurück.
func (c *Catalog) State() State {
	return State(c.state.Load())
}

// BuildEntries wandelt Rohnamen in Katalogeinträge mit korrigierten IDs um.
func BuildEntries(rawNames []string) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(rawNames))
	for i, raw := range rawNames {
		display := domain.Capitalize(raw)
		entries = append(entries, domain.CatalogEntry{
			Name:        domain.NormalizeName(display),
			DisplayName: display,
			ID:          domain.CorrectedID(i),
		})
	}
	return entries
}

// Load holt bis zu limit Namen aus src und befüllt den Katalog. Fehler werden
// zurückgegeben und geloggt, der Katalog bleibt dann leer (StateFailed).
func (c *Catalog) Load(ctx context.Context, src Source, limit int) error {
	if limit < 0 {
		err := fmt.Errorf("limit %d darf nicht negativ sein: %w", limit, domain.ErrInvalidInput)
		c.fail(err)
		return fmt.Errorf("katalog laden: %w", err)
	}
	names, err := src.Fetch(ctx, limit)
	if err != nil {
		c.fail(err)
		return fmt.Errorf("katalog laden: %w", err)
	}
	if len(names) < limit {
		c.logger.Warn("weniger pokemon als angefragt geladen",
			zap.Int("angefragt", limit),
			zap.Int("erhalten", len(names)),
		)
	}

	entries := BuildEntries(names)
	if err := c.repo.Replace(ctx, entries); err != nil {
		c.fail(err)
		return fmt.Errorf("katalog speichern: %w", err)
	}

	c.state.Store(int32(StateReady))
	c.logger.Info("katalog geladen", zap.Int("anzahl", len(entries)))
	return nil
}

func (c *Catalog) fail(err error) {
	c.state.Store(int32(StateFailed))
	c.logger.Error("katalog konnte nicht geladen werden, namenssuche läuft ohne katalog weiter",
		zap.Error(err),
	)
}

// Lookup sucht name unverändert im Katalog. found ist false, wenn der Name
// fehlt; eine ID von 0 gilt als Treffer.
func (c *Catalog) Lookup(ctx context.Context, name string) (id int, found bool, err error) {
	if c.State() == StateLoading {
		return 0, false, domain.ErrCatalogNotReady
	}
	e, err := c.repo.Lookup(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return e.ID, true, nil
}

// Names gibt alle bekannten normalisierten Namen zurück.
func (c *Catalog) Names(ctx context.Context) ([]string, error) {
	if c.State() == StateLoading {
		return nil, domain.ErrCatalogNotReady
	}
	return c.repo.Names(ctx)
}

// Count gibt die Anzahl der geladenen Namen zurück.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	return c.repo.Count(ctx)
}
