package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pokepalette-backend/internal/catalog"
	"pokepalette-backend/internal/domain"
)

// Catalog definiert, was der Service vom Namenskatalog braucht.
type Catalog interface {
	Lookup(ctx context.Context, name string) (id int, found bool, err error)
	Names(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
	State() catalog.State
}

// PaletteResolver berechnet die Palette zu einer Sprite-ID.
type PaletteResolver interface {
	Resolve(ctx context.Context, id int) (domain.PaletteResult, error)
}

// NameMatcher sucht ähnliche Namen zu einer Eingabe.
type NameMatcher interface {
	Match(ctx context.Context, query string, names []string) (domain.MatchResult, error)
}

// ColourService kapselt die Auflösung eines Namens zu Palette oder Vorschlägen.
type ColourService struct {
	catalog Catalog
	palette PaletteResolver
	matcher NameMatcher
	logger  *zap.Logger
}

// NewColourService gibt einen einsatzbereiten ColourService zurück.
func NewColourService(c Catalog, p PaletteResolver, m NameMatcher, logger *zap.Logger) *ColourService {
	return &ColourService{catalog: c, palette: p, matcher: m, logger: logger}
}

// Handle sucht rawName unverändert im Katalog. Bei einem Treffer wird die
// Palette berechnet, sonst die unscharfe Namenssuche befragt.
func (s *ColourService) Handle(ctx context.Context, rawName string) (domain.Envelope, error) {
	id, found, err := s.catalog.Lookup(ctx, rawName)
	if err != nil {
		return domain.Envelope{}, err
	}

	if found {
		res, err := s.palette.Resolve(ctx, id)
		if err != nil {
			return domain.Envelope{}, err
		}
		if !res.Available {
			return domain.Envelope{Flag: domain.FlagPalette, Data: domain.DataNoPalette}, nil
		}
		return domain.Envelope{Flag: domain.FlagPalette, Data: res.Colours}, nil
	}

	names, err := s.catalog.Names(ctx)
	if err != nil {
		return domain.Envelope{}, err
	}
	res, err := s.matcher.Match(ctx, rawName, names)
	if err != nil {
		return domain.Envelope{}, err
	}
	if !res.Matched {
		return domain.Envelope{Flag: domain.FlagNoPokemon, Data: domain.DataNoPokemon}, nil
	}
	return domain.Envelope{Flag: domain.FlagMatched, Data: res.Matches}, nil
}

// Palette gibt die strukturierte Palette für einen exakt bekannten Namen zurück.
func (s *ColourService) Palette(ctx context.Context, name string) (domain.Palette, error) {
	id, found, err := s.catalog.Lookup(ctx, name)
	if err != nil {
		return domain.Palette{}, err
	}
	if !found {
		return domain.Palette{}, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}

	res, err := s.palette.Resolve(ctx, id)
	if err != nil {
		return domain.Palette{}, err
	}
	if !res.Available {
		return domain.Palette{}, fmt.Errorf("palette für %q: %w", name, domain.ErrNotFound)
	}

	colours, err := domain.ParseColours(res.Colours)
	if err != nil {
		s.logger.Warn("palette nicht lesbar", zap.String("name", name), zap.Error(err))
		return domain.Palette{}, fmt.Errorf("palette für %q: %w", name, domain.ErrProcessFailed)
	}
	return domain.Palette{Name: name, ID: id, Colours: colours}, nil
}

// CatalogStatus beschreibt den Ladezustand des Katalogs.
type CatalogStatus struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Status gibt Ladezustand und Größe des Katalogs zurück.
func (s *ColourService) Status(ctx context.Context) (CatalogStatus, error) {
	n, err := s.catalog.Count(ctx)
	if err != nil {
		return CatalogStatus{}, err
	}
	return CatalogStatus{Status: s.catalog.State().String(), Count: n}, nil
}
