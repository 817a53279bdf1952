// Package middleware provides the gin middleware chain of the service.
package middleware

import (
	"context"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quote-card/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID identifies a whole transaction across services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key of the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key of the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// validID bounds what a client may send as an ID. Anything else is
// replaced so it cannot pollute logs or response headers.
var validID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

type idKind struct {
	header   string
	key      string
	ctxKey   ctxKey
	enricher func(ctx context.Context, id string) context.Context
}

type ctxKey string

var (
	requestIDKind = idKind{
		header:   HeaderRequestID,
		key:      ContextKeyRequestID,
		ctxKey:   ctxKey(ContextKeyRequestID),
		enricher: logging.WithRequestID,
	}
	correlationIDKind = idKind{
		header:   HeaderCorrelationID,
		key:      ContextKeyCorrelationID,
		ctxKey:   ctxKey(ContextKeyCorrelationID),
		enricher: logging.WithCorrelationID,
	}
)

// RequestID reuses a well-formed X-Request-ID header or generates a UUID.
// The ID is echoed in the response, stored in the gin and request
// contexts, and attached to the request logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(requestIDKind)
}

// CorrelationID does the same as RequestID for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(correlationIDKind)
}

func idMiddleware(kind idKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(kind.header)
		if !validID.MatchString(id) {
			id = uuid.NewString()
		}

		c.Set(kind.key, id)
		c.Header(kind.header, id)

		ctx := context.WithValue(c.Request.Context(), kind.ctxKey, id)
		c.Request = c.Request.WithContext(kind.enricher(ctx, id))

		c.Next()
	}
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

// RequestIDFromContext reads the request ID from a plain context.
func RequestIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, requestIDKind.ctxKey)
}

// CorrelationIDFromContext reads the correlation ID from a plain context.
func CorrelationIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, correlationIDKind.ctxKey)
}

func idFromContext(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
