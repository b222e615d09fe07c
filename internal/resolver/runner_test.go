package resolver

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"pokepalette-backend/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// shRunner nutzt /bin/sh als Interpreter; das "Skript" ist dann "-c".
func shRunner(t *testing.T, timeout time.Duration, maxProcs int) *ExecRunner {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh nicht verfügbar")
	}
	return NewExecRunner("sh", timeout, maxProcs, testLogger())
}

func TestExecRunner_LiestBisProzessende(t *testing.T) {
	r := shRunner(t, 0, 1)

	out, err := r.Run(context.Background(), "-c", `printf '#FFCC00, '; sleep 0.1; printf '#3B4CCA\n'`)
	require.NoError(t, err)
	assert.Equal(t, "#FFCC00, #3B4CCA", out)
}

func TestExecRunner_Argumente(t *testing.T) {
	r := shRunner(t, 0, 0)

	out, err := r.Run(context.Background(), "-c", `echo "$1|$2"`, "_", "pikuchu", "pikachu,pichu")
	require.NoError(t, err)
	assert.Equal(t, "pikuchu|pikachu,pichu", out)
}

func TestExecRunner_FehlerMitAusgabe(t *testing.T) {
	r := shRunner(t, 0, 0)

	out, err := r.Run(context.Background(), "-c", `echo ERROR; exit 1`)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", out)
}

func TestExecRunner_FehlerOhneAusgabe(t *testing.T) {
	r := shRunner(t, 0, 0)

	_, err := r.Run(context.Background(), "-c", `echo kaputt >&2; exit 3`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessFailed)
	assert.Contains(t, err.Error(), "kaputt")
}

func TestExecRunner_LeereAusgabe(t *testing.T) {
	r := shRunner(t, 0, 0)

	_, err := r.Run(context.Background(), "-c", `true`)
	assert.ErrorIs(t, err, domain.ErrProcessFailed)
}

func TestExecRunner_Zeitlimit(t *testing.T) {
	r := shRunner(t, 50*time.Millisecond, 0)

	start := time.Now()
	_, err := r.Run(context.Background(), "-c", `exec sleep 5`)
	assert.ErrorIs(t, err, domain.ErrProcessFailed)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestExecRunner_Abbruch(t *testing.T) {
	r := shRunner(t, 0, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, "-c", `echo nie`)
	assert.Error(t, err)
}

func TestExecRunner_BegrenztParallelitaet(t *testing.T) {
	r := shRunner(t, 0, 1)

	// Mit einem Slot laufen beide Prozesse nacheinander.
	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := r.Run(context.Background(), "-c", `sleep 0.2; echo fertig`)
			assert.NoError(t, err)
			assert.Equal(t, "fertig", out)
		}()
	}
	wg.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
}

func TestExecRunner_Interpret(t *testing.T) {
	r := NewExecRunner("sh", 0, 0, testLogger())
	runFailed := errors.New("exit status 1")

	tests := []struct {
		name    string
		out     string
		runErr  error
		ctxErr  error
		want    string
		wantErr bool
	}{
		{"erfolg", "#FFCC00", nil, nil, "#FFCC00", false},
		{"erfolg trotz abgelaufenem kontext", "#FFCC00", nil, context.DeadlineExceeded, "#FFCC00", false},
		{"abgebrochen mit teilausgabe", "#FFCC00", runFailed, context.Canceled, "", true},
		{"fehler mit ausgabe", "ERROR", runFailed, nil, "ERROR", false},
		{"fehler ohne ausgabe", "", runFailed, nil, "", true},
		{"leere ausgabe", "", nil, nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.interpret("palette_colours.py", tt.out, tt.runErr, tt.ctxErr, "")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrProcessFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
