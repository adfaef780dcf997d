package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supakorn-kn/book-catalog/apis"
	"github.com/supakorn-kn/book-catalog/errors"
)

const (
	RequestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
)

// RequestID keeps the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {

	return func(ctx *gin.Context) {

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(requestIDContextKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()
	}
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {

	return func(ctx *gin.Context) {

		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		log.LogAttrs(ctx, levelFor(ctx.Writer.Status()), "request",
			slog.String("method", ctx.Request.Method),
			slog.String("path", path),
			slog.Int("status", ctx.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("request_id", ctx.GetString(requestIDContextKey)),
		)
	}
}

func Recovery(log *slog.Logger) gin.HandlerFunc {

	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {

		log.ErrorContext(ctx, "Recovered from panic",
			"path", ctx.Request.URL.Path,
			"panic", recovered,
			"request_id", ctx.GetString(requestIDContextKey),
		)

		err := errors.UnknownError.New(recovered)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, apis.ErrorResponse{Error: err.Error()})
	})
}

func levelFor(status int) slog.Level {

	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
