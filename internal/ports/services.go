// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; the app package never imports an adapter directly.
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-card/internal/domain"
)

// QuoteSource supplies quotes for cards.
type QuoteSource interface {
	// Random returns a quote chosen uniformly at random.
	// Implementations must be safe for concurrent use.
	Random(ctx context.Context) (domain.Quote, error)
}

// CardRenderer turns a quote and a resolved style into a card.
// Rendering is pure and cannot fail.
type CardRenderer interface {
	Render(q domain.Quote, style domain.Style) *domain.Card
}

// RenderRecorder observes rendered cards, typically for metrics.
type RenderRecorder interface {
	CardRendered(style domain.Style)
}
