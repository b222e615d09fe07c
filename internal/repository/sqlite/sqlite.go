package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"pokepalette-backend/internal/domain"
)

// CatalogRepository implementiert repository.CatalogRepository auf SQLite.
type CatalogRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCatalogRepository öffnet die SQLite-Datenbank unter dsn, erstellt das
// Schema und gibt ein einsatzbereites Repository zurück.
// Für ":memory:" wird der Pool auf eine Verbindung begrenzt, da jede
// Verbindung sonst eine eigene leere Datenbank sähe.
func NewCatalogRepository(dsn string, logger *zap.Logger) (*CatalogRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite öffnen: %w", err)
	}
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS catalog (
			position     INTEGER PRIMARY KEY,
			name         TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			sprite_id    INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS catalog_name ON catalog (name);
	`); err != nil {
		return nil, fmt.Errorf("tabelle erstellen: %w", err)
	}

	logger.Info("sqlite-katalog initialisiert", zap.String("dsn", dsn))
	return &CatalogRepository{db: db, logger: logger}, nil
}

// Close schließt die zugrunde liegende Datenbankverbindung.
func (r *CatalogRepository) Close() error {
	return r.db.Close()
}

// Replace ersetzt den Katalog in einer Transaktion.
func (r *CatalogRepository) Replace(ctx context.Context, entries []domain.CatalogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("transaktion starten: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalog"); err != nil {
		return fmt.Errorf("katalog leeren: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO catalog (position, name, display_name, sprite_id) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("insert vorbereiten: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, i, e.Name, e.DisplayName, e.ID); err != nil {
			return fmt.Errorf("eintrag %d einfügen: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Lookup sucht einen Eintrag anhand des normalisierten Namens. Bei doppelten
// Namen gewinnt der Eintrag mit der höchsten Position.
func (r *CatalogRepository) Lookup(ctx context.Context, name string) (domain.CatalogEntry, error) {
	var e domain.CatalogEntry
	err := r.db.QueryRowContext(ctx,
		"SELECT name, display_name, sprite_id FROM catalog WHERE name = ? ORDER BY position DESC LIMIT 1", name,
	).Scan(&e.Name, &e.DisplayName, &e.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CatalogEntry{}, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("abfrage pokemon %q: %w", name, err)
	}
	return e, nil
}

// Names gibt alle Namen in Upstream-Reihenfolge zurück.
func (r *CatalogRepository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM catalog ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("abfrage: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("zeile lesen: %w", err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Count gibt die Anzahl der Katalogzeilen zurück.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM catalog").Scan(&n); err != nil {
		return 0, fmt.Errorf("anzahl abfragen: %w", err)
	}
	return n, nil
}
