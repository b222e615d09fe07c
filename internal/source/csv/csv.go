// Package csv lädt den Katalog aus einer lokalen CSV-Datei mit Spalte "name".
package csv

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

type row struct {
	Name string `csv:"name"`
}

// Source liest Namen aus path.
type Source struct {
	path string
}

// NewSource erstellt eine Quelle für die CSV-Datei unter path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Fetch gibt bis zu limit Namen in Dateireihenfolge zurück.
func (s *Source) Fetch(_ context.Context, limit int) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("datei öffnen %s: %w", s.path, err)
	}
	defer f.Close()

	var rows []row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("csv lesen: %w", err)
	}

	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names, nil
}
