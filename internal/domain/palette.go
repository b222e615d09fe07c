package domain

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Flag unterscheidet die Zweige der Antwort auf /get_colours.
type Flag string

const (
	FlagPalette   Flag = "PALETTE"
	FlagNoPokemon Flag = "NO_POKEMON"
	FlagMatched   Flag = "MATCHED"
)

// Feste Nutzdaten und Ausgaben der externen Skripte.
const (
	DataNoPalette = "NO_PALETTE"
	DataNoPokemon = "NO_POKEMON"

	TokenPaletteError = "ERROR"
	TokenNoMatches    = "NO_MATCHES"
)

// Envelope ist die einzige nach außen sichtbare Antwortform.
type Envelope struct {
	Flag Flag   `json:"flag"`
	Data string `json:"data"`
}

// PaletteResult ist entweder eine Farbliste oder "keine Palette".
type PaletteResult struct {
	Colours   string
	Available bool
}

// Colours erzeugt ein Ergebnis mit Farbliste.
func Colours(c string) PaletteResult { return PaletteResult{Colours: c, Available: true} }

// NoPalette signalisiert, dass für das Bild keine Palette berechnet werden konnte.
func NoPalette() PaletteResult { return PaletteResult{} }

// MatchResult ist entweder ein Treffer oder "kein Treffer".
type MatchResult struct {
	Matches string
	Matched bool
}

// Matched erzeugt ein Treffer-Ergebnis.
func Matched(m string) MatchResult { return MatchResult{Matches: m, Matched: true} }

// NoMatch signalisiert, dass kein ähnlicher Name gefunden wurde.
func NoMatch() MatchResult { return MatchResult{} }

// Colour ist eine einzelne Palettenfarbe.
type Colour struct {
	Hex string `json:"hex"`
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
}

// Palette ist die strukturierte Palette eines Pokémon.
type Palette struct {
	Name    string   `json:"name"`
	ID      int      `json:"id"`
	Colours []Colour `json:"colours"`
}

// ParseColours zerlegt die kommagetrennte Hex-Liste des Palettenskripts.
// Leere Einträge werden übersprungen.
func ParseColours(s string) ([]Colour, error) {
	out := make([]Colour, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := colorful.Hex(part)
		if err != nil {
			return nil, fmt.Errorf("farbe %q: %w", part, ErrInvalidInput)
		}
		r, g, b := c.RGB255()
		out = append(out, Colour{Hex: strings.ToUpper(c.Hex()), R: r, G: g, B: b})
	}
	return out, nil
}
