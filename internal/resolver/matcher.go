package resolver

import (
	"context"
	"fmt"
	"strings"

	"pokepalette-backend/internal/domain"
)

// NameMatcher sucht über das Matching-Skript ähnliche Namen.
type NameMatcher struct {
	runner Runner
	script string
}

// NewNameMatcher erstellt einen NameMatcher.
func NewNameMatcher(runner Runner, script string) *NameMatcher {
	return &NameMatcher{runner: runner, script: script}
}

// Match übergibt query und die kommagetrennten Namen an das Skript. Meldet es
// "NO_MATCHES", ist das Ergebnis NoMatch.
func (m *NameMatcher) Match(ctx context.Context, query string, names []string) (domain.MatchResult, error) {
	out, err := m.runner.Run(ctx, m.script, query, strings.Join(names, ","))
	if err != nil {
		return domain.NoMatch(), fmt.Errorf("namenssuche für %q: %w", query, err)
	}

	out = strings.TrimSpace(out)
	if out == domain.TokenNoMatches {
		return domain.NoMatch(), nil
	}
	return domain.Matched(out), nil
}
