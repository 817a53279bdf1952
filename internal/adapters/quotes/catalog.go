// Package quotes provides the in-memory quote catalog.
package quotes

import (
	"context"
	"math/rand/v2"

	"github.com/jsamuelsen/quote-card/internal/domain"
)

// CatalogName is the health check name of the catalog.
const CatalogName = "quote-catalog"

// Catalog is an immutable list of quotes with uniform random selection.
// It implements ports.QuoteSource and ports.HealthChecker.
type Catalog struct {
	quotes []domain.Quote
	intN   func(n int) int
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithIntN replaces the random index function. Tests use it to make
// selection deterministic; fn must return a value in [0, n).
func WithIntN(fn func(n int) int) Option {
	return func(c *Catalog) {
		c.intN = fn
	}
}

// NewCatalog creates a catalog over a private copy of quotes.
func NewCatalog(quotes []domain.Quote, opts ...Option) *Catalog {
	c := &Catalog{
		quotes: append([]domain.Quote(nil), quotes...),
		intN:   rand.IntN,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewDefaultCatalog creates a catalog holding the built-in quotes followed by extra.
func NewDefaultCatalog(extra []domain.Quote, opts ...Option) *Catalog {
	return NewCatalog(append(domain.BuiltinQuotes(), extra...), opts...)
}

// Random returns a uniformly chosen quote.
func (c *Catalog) Random(_ context.Context) (domain.Quote, error) {
	if len(c.quotes) == 0 {
		return domain.Quote{}, domain.NewUnavailableError(CatalogName, "no quotes loaded")
	}

	return c.quotes[c.intN(len(c.quotes))], nil
}

// Len returns the number of quotes in the catalog.
func (c *Catalog) Len() int {
	return len(c.quotes)
}

// All returns a copy of every quote in catalog order.
func (c *Catalog) All() []domain.Quote {
	return append([]domain.Quote(nil), c.quotes...)
}

// Name implements ports.HealthChecker.
func (c *Catalog) Name() string {
	return CatalogName
}

// Check reports the catalog unhealthy when it has nothing to serve.
func (c *Catalog) Check(_ context.Context) error {
	if len(c.quotes) == 0 {
		return domain.NewUnavailableError(CatalogName, "no quotes loaded")
	}

	return nil
}
