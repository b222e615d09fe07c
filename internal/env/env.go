package env

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config enthält alle konfigurierbaren Werte der Anwendung, die über Umgebungsvariablen gesetzt werden können.
type Config struct {
	ServerAddr        string        // SERVER_ADDR – Adresse des HTTP-Servers (Standard: "0.0.0.0:8080")
	StaticDir         string        // STATIC_DIR – Verzeichnis mit dem gebauten Frontend
	CatalogSource     string        // CATALOG_SOURCE – "api" oder "csv" (Standard: "api")
	CatalogAPIURL     string        // CATALOG_API_URL – Basis-URL der PokeAPI
	CatalogCSVPath    string        // CATALOG_CSV_PATH – Offline-Katalog mit Spalte "name"
	CatalogLimit      int           // CATALOG_LIMIT – Anzahl Pokémon beim Start (Standard: 885)
	CatalogStore      string        // CATALOG_STORE – "memory" oder "sqlite" (Standard: "memory")
	SpriteURLTemplate string        // SPRITE_URL_TEMPLATE – Bild-URL, "{id}" wird ersetzt
	PythonBin         string        // PYTHON_BIN – Interpreter für beide Skripte
	PaletteScript     string        // PALETTE_SCRIPT – Skript zur Farbextraktion
	MatchScript       string        // MATCH_SCRIPT – Skript für unscharfe Namenssuche
	ProcessTimeout    time.Duration // PROCESS_TIMEOUT – Zeitlimit pro Prozess, 0 = keins
	MaxProcesses      int           // MAX_PROCESSES – gleichzeitige Prozesse, 0 = unbegrenzt
	RateLimit         float64       // RATE_LIMIT – Erlaubte Anfragen pro Sekunde (Standard: 100)
}

// MustLoad liest die Konfiguration aus Umgebungsvariablen. Eine vorhandene
// .env-Datei wird vorher geladen, bereits gesetzte Variablen haben Vorrang.
func MustLoad() Config {
	_ = godotenv.Load()

	return Config{
		ServerAddr:        getOr("SERVER_ADDR", "0.0.0.0:8080"),
		StaticDir:         getOr("STATIC_DIR", "pokepalette_frontend"),
		CatalogSource:     getOr("CATALOG_SOURCE", "api"),
		CatalogAPIURL:     getOr("CATALOG_API_URL", "https://pokeapi.co/api/v2"),
		CatalogCSVPath:    getOr("CATALOG_CSV_PATH", "pokemon.csv"),
		CatalogLimit:      getIntOr("CATALOG_LIMIT", 885),
		CatalogStore:      getOr("CATALOG_STORE", "memory"),
		SpriteURLTemplate: getOr("SPRITE_URL_TEMPLATE", "https://pokeres.bastionbot.org/images/pokemon/{id}.png"),
		PythonBin:         getOr("PYTHON_BIN", "python3"),
		PaletteScript:     getOr("PALETTE_SCRIPT", "pokepalette_backend/palette_colours.py"),
		MatchScript:       getOr("MATCH_SCRIPT", "pokepalette_backend/match_names.py"),
		ProcessTimeout:    getDurationOr("PROCESS_TIMEOUT", 0),
		MaxProcesses:      getIntOr("MAX_PROCESSES", 8),
		RateLimit:         getFloatOr("RATE_LIMIT", 100),
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getDurationOr akzeptiert Go-Dauern ("30s", "2m") und reine Sekundenangaben.
func getDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
