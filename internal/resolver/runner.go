// Package resolver kapselt die externen Python-Skripte für Farbpalette und
// Namenssuche hinter kleinen Schnittstellen, damit Tests sie ersetzen können.
package resolver

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"pokepalette-backend/internal/domain"
)

// Runner führt ein Skript mit Argumenten aus und gibt die getrimmte
// Standardausgabe zurück.
type Runner interface {
	Run(ctx context.Context, script string, args ...string) (string, error)
}

// ExecRunner startet für jeden Aufruf einen eigenen Interpreter-Prozess und
// liest dessen Ausgabe bis zum Prozessende.
type ExecRunner struct {
	interpreter string
	timeout     time.Duration
	sem         *semaphore.Weighted
	logger      *zap.Logger
}

// NewExecRunner erstellt einen Runner für interpreter. timeout 0 bedeutet kein
// Zeitlimit, maxProcs 0 keine Begrenzung gleichzeitiger Prozesse.
func NewExecRunner(interpreter string, timeout time.Duration, maxProcs int, logger *zap.Logger) *ExecRunner {
	r := &ExecRunner{interpreter: interpreter, timeout: timeout, logger: logger}
	if maxProcs > 0 {
		r.sem = semaphore.NewWeighted(int64(maxProcs))
	}
	return r
}

// Run führt "<interpreter> script args..." aus. Ein Prozess, der mit Fehler
// endet, aber etwas ausgegeben hat, gilt als erfolgreich; das Palettenskript
// meldet Fehler selbst über die Ausgabe.
func (r *ExecRunner) Run(ctx context.Context, script string, args ...string) (string, error) {
	if r.sem != nil {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return "", fmt.Errorf("%s: warten auf prozess-slot: %w", script, err)
		}
		defer r.sem.Release(1)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.interpreter, append([]string{script}, args...)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	start := time.Now()
	runErr := cmd.Run()
	out := strings.TrimSpace(stdout.String())

	out, err := r.interpret(script, out, runErr, ctx.Err(), stderr.String())
	if err != nil {
		return "", err
	}

	r.logger.Debug("prozess beendet",
		zap.String("skript", script),
		zap.Duration("dauer", time.Since(start)),
	)
	return out, nil
}

// interpret bewertet das Ergebnis eines beendeten Prozesses. Eine erfolgreiche
// Ausgabe gilt auch dann, wenn der Kontext kurz danach abgelaufen ist.
func (r *ExecRunner) interpret(script, out string, runErr, ctxErr error, stderr string) (string, error) {
	if runErr == nil && out != "" {
		return out, nil
	}
	if ctxErr != nil {
		return "", fmt.Errorf("%s abgebrochen: %w: %v", script, domain.ErrProcessFailed, ctxErr)
	}
	if runErr != nil {
		if out != "" {
			r.logger.Warn("prozess mit fehler beendet, ausgabe wird trotzdem verwendet",
				zap.String("skript", script),
				zap.Error(runErr),
				zap.String("stderr", strings.TrimSpace(stderr)),
			)
			return out, nil
		}
		return "", fmt.Errorf("%s: %w: %v (stderr: %s)",
			script, domain.ErrProcessFailed, runErr, strings.TrimSpace(stderr))
	}
	return "", fmt.Errorf("%s: leere ausgabe: %w", script, domain.ErrProcessFailed)
}
