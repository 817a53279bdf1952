// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quote-card/internal/domain"
	"github.com/jsamuelsen/quote-card/internal/ports"
)

// CardRequest carries the raw presentation options of a card request.
// Values are not validated; unknown ones fall back to the defaults.
type CardRequest struct {
	Theme string
	Font  string
	Type  string
}

// CardService renders random quote cards.
// It depends on port interfaces, not concrete implementations.
type CardService struct {
	quotes   ports.QuoteSource
	renderer ports.CardRenderer
	recorder ports.RenderRecorder
	logger   *slog.Logger
}

// CardServiceConfig contains the dependencies of the card service.
type CardServiceConfig struct {
	Quotes   ports.QuoteSource
	Renderer ports.CardRenderer

	// Recorder is optional.
	Recorder ports.RenderRecorder

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewCardService creates a card service. It panics when a required
// dependency is missing since that is a wiring bug.
func NewCardService(cfg CardServiceConfig) *CardService {
	if cfg.Quotes == nil {
		panic("app: CardServiceConfig.Quotes is required")
	}

	if cfg.Renderer == nil {
		panic("app: CardServiceConfig.Renderer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CardService{
		quotes:   cfg.Quotes,
		renderer: cfg.Renderer,
		recorder: cfg.Recorder,
		logger:   logger,
	}
}

// RenderCard picks a random quote and renders it in the requested style.
func (s *CardService) RenderCard(ctx context.Context, req CardRequest) (*domain.Card, error) {
	style := domain.ResolveStyle(req.Theme, req.Font, req.Type)
	s.logFallbacks(ctx, req, style)

	quote, err := s.quotes.Random(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to pick quote", slog.Any("error", err))
		return nil, fmt.Errorf("picking quote: %w", err)
	}

	card := s.renderer.Render(quote, style)

	if s.recorder != nil {
		s.recorder.CardRendered(style)
	}

	s.logger.DebugContext(ctx, "rendered card",
		slog.String("author", quote.Author),
		slog.String("theme", style.Theme.Name),
		slog.String("font", style.Font.Name),
		slog.String("orientation", string(style.Orientation)),
		slog.Int("lines", len(card.Lines)),
	)

	return card, nil
}

// logFallbacks notes options that were supplied but not recognised.
// Empty values are the normal way to ask for a default and are not logged.
func (s *CardService) logFallbacks(ctx context.Context, req CardRequest, style domain.Style) {
	if req.Theme != "" && req.Theme != style.Theme.Name {
		s.logger.DebugContext(ctx, "unknown theme, using default",
			slog.String("requested", req.Theme),
			slog.String("theme", style.Theme.Name),
		)
	}

	if req.Font != "" && req.Font != style.Font.Name {
		s.logger.DebugContext(ctx, "unknown font, using default",
			slog.String("requested", req.Font),
			slog.String("font", style.Font.Name),
		)
	}

	if req.Type != "" && req.Type != string(style.Orientation) {
		s.logger.DebugContext(ctx, "unknown card type, using default",
			slog.String("requested", req.Type),
			slog.String("orientation", string(style.Orientation)),
		)
	}
}
