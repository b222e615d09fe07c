package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pokepalette-backend/internal/catalog"
	"pokepalette-backend/internal/env"
	"pokepalette-backend/internal/handler"
	"pokepalette-backend/internal/repository"
	"pokepalette-backend/internal/repository/memory"
	sqliterepo "pokepalette-backend/internal/repository/sqlite"
	"pokepalette-backend/internal/resolver"
	"pokepalette-backend/internal/routes"
	"pokepalette-backend/internal/service"
	csvsource "pokepalette-backend/internal/source/csv"
	"pokepalette-backend/internal/source/pokeapi"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := env.MustLoad()
	logger.Info("konfiguration geladen",
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("catalog_source", cfg.CatalogSource),
		zap.String("catalog_store", cfg.CatalogStore),
		zap.Int("catalog_limit", cfg.CatalogLimit),
		zap.String("python_bin", cfg.PythonBin),
		zap.Duration("process_timeout", cfg.ProcessTimeout),
		zap.Int("max_processes", cfg.MaxProcesses),
		zap.Float64("rate_limit", cfg.RateLimit),
	)

	repo, cleanup := mustInitRepo(cfg, logger)
	if cleanup != nil {
		defer cleanup()
	}
	cat := catalog.New(repo, logger)

	runner := resolver.NewExecRunner(cfg.PythonBin, cfg.ProcessTimeout, cfg.MaxProcesses, logger)
	palette := resolver.NewPaletteResolver(runner, cfg.PaletteScript, cfg.SpriteURLTemplate, logger)
	matcher := resolver.NewNameMatcher(runner, cfg.MatchScript)

	svc := service.NewColourService(cat, palette, matcher, logger)
	h := handler.NewColourHandler(svc, logger)

	r := chi.NewRouter()
	routes.Setup(r, h, handler.NewStatic(cfg.StaticDir), logger, cfg.RateLimit)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout(cfg.ProcessTimeout),
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		logger.Info("server wird gestartet", zap.String("adresse", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// Der Katalog lädt, während der Server bereits Anfragen annimmt.
	loadCtx, cancelLoad := context.WithCancel(context.Background())
	defer cancelLoad()
	go func() {
		_ = cat.Load(loadCtx, newSource(cfg), cfg.CatalogLimit)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server wird heruntergefahren")
	cancelLoad()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("erzwungenes herunterfahren", zap.Error(err))
	}
	logger.Info("server gestoppt")
}

// mustInitRepo erstellt je nach CATALOG_STORE die passende Katalog-Ablage.
// Bei "sqlite" wird eine In-Memory-Datenbank verwendet; die zurückgegebene
// cleanup-Funktion schließt die DB-Verbindung.
func mustInitRepo(cfg env.Config, logger *zap.Logger) (repository.CatalogRepository, func()) {
	switch cfg.CatalogStore {
	case "sqlite":
		repo, err := sqliterepo.NewCatalogRepository(":memory:", logger)
		if err != nil {
			logger.Fatal("sqlite-katalog konnte nicht initialisiert werden", zap.Error(err))
		}
		return repo, func() { _ = repo.Close() }

	default:
		return memory.NewCatalogRepository(), nil
	}
}

// newSource wählt je nach CATALOG_SOURCE die Quelle der Pokémon-Liste.
func newSource(cfg env.Config) catalog.Source {
	switch cfg.CatalogSource {
	case "csv":
		return csvsource.NewSource(cfg.CatalogCSVPath)
	default:
		return pokeapi.NewSource(cfg.CatalogAPIURL, 3, 15*time.Second)
	}
}

// writeTimeout lässt ohne Prozess-Zeitlimit auch die Antwort unbegrenzt laufen,
// sonst bricht der Server lange Palettenberechnungen selbst ab.
func writeTimeout(process time.Duration) time.Duration {
	if process <= 0 {
		return 0
	}
	return process + 5*time.Second
}
