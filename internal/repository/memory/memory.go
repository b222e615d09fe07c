package memory

import (
	"context"
	"fmt"
	"sync"

	"pokepalette-backend/internal/domain"
)

// CatalogRepository implementiert repository.CatalogRepository und hält den Katalog im Arbeitsspeicher.
type CatalogRepository struct {
	mu     sync.RWMutex
	byName map[string]domain.CatalogEntry
	names  []string
}

// NewCatalogRepository legt ein leeres Repository an.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{byName: make(map[string]domain.CatalogEntry)}
}

// Replace ersetzt Zuordnung und Namensliste vollständig.
func (r *CatalogRepository) Replace(_ context.Context, entries []domain.CatalogEntry) error {
	byName := make(map[string]domain.CatalogEntry, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
		names = append(names, e.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName = byName
	r.names = names
	return nil
}

// Lookup sucht einen Eintrag anhand des normalisierten Namens.
func (r *CatalogRepository) Lookup(_ context.Context, name string) (domain.CatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byName[name]
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}
	return e, nil
}

// Names gibt eine Kopie aller Namen in Upstream-Reihenfolge zurück.
func (r *CatalogRepository) Names(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out, nil
}

// Count gibt die Anzahl geladener Namen zurück.
func (r *CatalogRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names), nil
}
