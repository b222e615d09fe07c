package domain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrNotFound        = errors.New("nicht gefunden")
	ErrInvalidInput    = errors.New("ungültige eingabe")
	ErrCatalogNotReady = errors.New("katalog wird noch geladen")
	ErrProcessFailed   = errors.New("externer prozess fehlgeschlagen")
)

// Die PokeAPI-Liste ist ab Position 807 gegenüber den Pokédex-Nummern um zwei
// weitere Stellen verschoben.
const (
	IDShiftThreshold = 807
	IDShiftBefore    = 1
	IDShiftAfter     = 3
)

// CatalogEntry ist ein Eintrag der Namens-Tabelle.
type CatalogEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ID          int    `json:"id"`
}

// CorrectedID berechnet die Sprite-ID für die Position i der Upstream-Liste.
func CorrectedID(i int) int {
	if i >= IDShiftThreshold {
		return i + IDShiftAfter
	}
	return i + IDShiftBefore
}

// Capitalize setzt den ersten Buchstaben von s in Großschrift.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// NormalizeName bringt einen Namen in die Form, unter der er im Katalog steht:
// NFC, kleingeschrieben, Bindestriche durch Leerzeichen ersetzt, getrimmt.
func NormalizeName(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	return strings.TrimSpace(s)
}
