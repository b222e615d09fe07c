package resolver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pokepalette-backend/internal/domain"
)

// stubRunner gibt eine feste Ausgabe zurück und merkt sich die Argumente.
type stubRunner struct {
	out    string
	err    error
	script string
	args   []string
}

func (s *stubRunner) Run(_ context.Context, script string, args ...string) (string, error) {
	s.script = script
	s.args = args
	return s.out, s.err
}

func testLogger() *zap.Logger {
	l, _ := zap.NewDevelopment()
	return l
}

const testTemplate = "https://sprites.example/images/pokemon/{id}.png"

func TestPaletteResolver_SpriteURL(t *testing.T) {
	p := NewPaletteResolver(&stubRunner{}, "palette_colours.py", testTemplate, testLogger())
	assert.Equal(t, "https://sprites.example/images/pokemon/25.png", p.SpriteURL(25))
	assert.Equal(t, "https://sprites.example/images/pokemon/0.png", p.SpriteURL(0))
}

func TestPaletteResolver_Resolve(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want domain.PaletteResult
	}{
		{"farben", "#FFCC00, #3B4CCA\n", domain.Colours("#FFCC00, #3B4CCA")},
		{"fehler-token", "ERROR\n", domain.NoPalette()},
		{"fehler-token mit leerraum", "  ERROR  ", domain.NoPalette()},
		{"fehler nur als teil", "ERROR: kaputt", domain.Colours("ERROR: kaputt")},
		{"kleingeschrieben ist kein token", "error", domain.Colours("error")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{out: tt.out}
			p := NewPaletteResolver(runner, "palette_colours.py", testTemplate, testLogger())

			got, err := p.Resolve(context.Background(), 25)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "palette_colours.py", runner.script)
			assert.Equal(t, []string{"https://sprites.example/images/pokemon/25.png"}, runner.args)
		})
	}
}

func TestPaletteResolver_ProzessFehler(t *testing.T) {
	runner := &stubRunner{err: fmt.Errorf("abgestürzt: %w", domain.ErrProcessFailed)}
	p := NewPaletteResolver(runner, "palette_colours.py", testTemplate, testLogger())

	got, err := p.Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProcessFailed)
	assert.False(t, got.Available)
}

func TestNameMatcher_Match(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want domain.MatchResult
	}{
		{"treffer", "pikachu\n", domain.Matched("pikachu")},
		{"mehrere treffer", "pikachu, pichu", domain.Matched("pikachu, pichu")},
		{"kein treffer", "NO_MATCHES\n", domain.NoMatch()},
		{"kein treffer mit leerraum", " NO_MATCHES ", domain.NoMatch()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{out: tt.out}
			m := NewNameMatcher(runner, "match_names.py")

			got, err := m.Match(context.Background(), "pikuchu", []string{"pikachu", "pichu", "mr mime"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "match_names.py", runner.script)
			assert.Equal(t, []string{"pikuchu", "pikachu,pichu,mr mime"}, runner.args)
		})
	}
}

func TestNameMatcher_LeereNamensliste(t *testing.T) {
	runner := &stubRunner{out: "NO_MATCHES"}
	m := NewNameMatcher(runner, "match_names.py")

	got, err := m.Match(context.Background(), "", nil)
	require.NoError(t, err)
	assert.False(t, got.Matched)
	assert.Equal(t, []string{"", ""}, runner.args)
}

func TestNameMatcher_ProzessFehler(t *testing.T) {
	m := NewNameMatcher(&stubRunner{err: errors.New("boom")}, "match_names.py")

	_, err := m.Match(context.Background(), "x", []string{"y"})
	assert.Error(t, err)
}
