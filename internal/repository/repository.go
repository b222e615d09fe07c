package repository

import (
	"context"

	"pokepalette-backend/internal/domain"
)

// CatalogRepository abstrahiert die Ablage der Namens-Tabelle.
// Replace ersetzt den gesamten Inhalt; bei doppelten Namen gewinnt der letzte Eintrag.
type CatalogRepository interface {
	Replace(ctx context.Context, entries []domain.CatalogEntry) error
	Lookup(ctx context.Context, name string) (domain.CatalogEntry, error)
	Names(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
