package resolver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pokepalette-backend/internal/domain"
)

// PaletteResolver berechnet die Farbpalette eines Sprites über das Palettenskript.
type PaletteResolver struct {
	runner   Runner
	script   string
	template string
	logger   *zap.Logger
}

// NewPaletteResolver erstellt einen Resolver. In template wird "{id}" durch die
// Sprite-ID ersetzt.
func NewPaletteResolver(runner Runner, script, template string, logger *zap.Logger) *PaletteResolver {
	return &PaletteResolver{runner: runner, script: script, template: template, logger: logger}
}

// SpriteURL baut die Bild-URL für id.
func (p *PaletteResolver) SpriteURL(id int) string {
	return strings.ReplaceAll(p.template, "{id}", strconv.Itoa(id))
}

// Resolve gibt die Palette für id zurück oder NoPalette, wenn das Skript
// "ERROR" meldet. Die Farbliste wird unverändert durchgereicht.
func (p *PaletteResolver) Resolve(ctx context.Context, id int) (domain.PaletteResult, error) {
	imgURL := p.SpriteURL(id)
	p.logger.Info("bild wird geladen", zap.Int("id", id), zap.String("url", imgURL))

	out, err := p.runner.Run(ctx, p.script, imgURL)
	if err != nil {
		return domain.NoPalette(), fmt.Errorf("palette für id %d: %w", id, err)
	}

	out = strings.TrimSpace(out)
	if out == domain.TokenPaletteError {
		return domain.NoPalette(), nil
	}
	return domain.Colours(out), nil
}
