package env

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustLoad_Standardwerte(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := MustLoad()

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr)
	assert.Equal(t, "api", cfg.CatalogSource)
	assert.Equal(t, "memory", cfg.CatalogStore)
	assert.Equal(t, 885, cfg.CatalogLimit)
	assert.Equal(t, time.Duration(0), cfg.ProcessTimeout)
	assert.Equal(t, 8, cfg.MaxProcesses)
	assert.Equal(t, 100.0, cfg.RateLimit)
	assert.Contains(t, cfg.SpriteURLTemplate, "{id}")
}

func TestMustLoad_Ueberschreibungen(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("CATALOG_STORE", "sqlite")
	t.Setenv("CATALOG_LIMIT", "10")
	t.Setenv("PROCESS_TIMEOUT", "30s")
	t.Setenv("MAX_PROCESSES", "0")
	t.Setenv("RATE_LIMIT", "2.5")

	cfg := MustLoad()

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, "sqlite", cfg.CatalogStore)
	assert.Equal(t, 10, cfg.CatalogLimit)
	assert.Equal(t, 30*time.Second, cfg.ProcessTimeout)
	assert.Equal(t, 0, cfg.MaxProcesses)
	assert.Equal(t, 2.5, cfg.RateLimit)
}

func TestGetDurationOr(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"leer", "", time.Minute},
		{"go-dauer", "1500ms", 1500 * time.Millisecond},
		{"sekunden", "12", 12 * time.Second},
		{"ungültig", "bald", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DAUER", tt.value)
			assert.Equal(t, tt.want, getDurationOr("TEST_DAUER", time.Minute))
		})
	}
}

func TestGetIntOr_Ungueltig(t *testing.T) {
	t.Setenv("TEST_ZAHL", "viele")
	assert.Equal(t, 7, getIntOr("TEST_ZAHL", 7))
}

// chdir switches the working directory for the duration of the test and
// restores it afterwards (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
