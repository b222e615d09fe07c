package handler

import (
	"net/http"
	"path/filepath"
)

// Static liefert die vorgebauten Frontend-Dateien aus dir aus.
type Static struct {
	dir string
}

// NewStatic erstellt einen Handler für das Frontend-Verzeichnis dir.
func NewStatic(dir string) *Static {
	return &Static{dir: dir}
}

// File gibt einen Handler zurück, der genau die Datei rel unterhalb von dir ausliefert.
func (s *Static) File(rel string) http.HandlerFunc {
	path := filepath.Join(s.dir, filepath.FromSlash(rel))
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
