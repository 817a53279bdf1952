package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-card/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-card/internal/app"
	"github.com/jsamuelsen/quote-card/internal/domain"
	"github.com/jsamuelsen/quote-card/internal/platform/logging"
)

// SVGContentType is the media type of card responses.
const SVGContentType = "image/svg+xml"

// DefaultCacheMaxAge is how long clients and CDNs may reuse a card.
const DefaultCacheMaxAge = 3 * time.Hour

// CardService renders quote cards.
type CardService interface {
	RenderCard(ctx context.Context, req app.CardRequest) (*domain.Card, error)
}

// CardHandler serves random quote cards as SVG.
type CardHandler struct {
	service      CardService
	cacheControl string
}

// NewCardHandler creates a card handler. A non-positive maxAge uses
// DefaultCacheMaxAge.
func NewCardHandler(service CardService, maxAge time.Duration) *CardHandler {
	if maxAge <= 0 {
		maxAge = DefaultCacheMaxAge
	}

	return &CardHandler{
		service:      service,
		cacheControl: CacheControl(maxAge),
	}
}

// CacheControl formats the Cache-Control value of card responses.
func CacheControl(maxAge time.Duration) string {
	return fmt.Sprintf("public, max-age=%d, must-revalidate", int64(maxAge/time.Second))
}

// GetCard handles GET /api and GET /api/v1/card.
//
// Query parameters theme, font and type are all optional. Unknown values
// fall back to the defaults so a card is always returned.
func (h *CardHandler) GetCard(c *gin.Context) {
	var query dto.CardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		// Binding plain strings only fails on malformed queries; render defaults.
		logging.FromContext(c.Request.Context()).WarnContext(c.Request.Context(), "ignoring card query",
			slog.Any("error", err),
		)

		query = dto.CardQuery{}
	}

	card, err := h.service.RenderCard(c.Request.Context(), app.CardRequest{
		Theme: query.Theme,
		Font:  query.Font,
		Type:  query.Type,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Cache-Control", h.cacheControl)
	c.Data(http.StatusOK, SVGContentType, []byte(card.SVG))
}

// RegisterRoutes mounts the card endpoint on rg at /api and /api/v1/card.
// rg is expected to be rooted at "/".
func (h *CardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/api", h.GetCard)
	rg.GET("/api/v1/card", h.GetCard)
}
