package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/book-catalog/apis"
	booksAPI "github.com/supakorn-kn/book-catalog/apis/books"
	"github.com/supakorn-kn/book-catalog/env"
	"github.com/supakorn-kn/book-catalog/models/books"
	"github.com/supakorn-kn/book-catalog/objects"
	"github.com/supakorn-kn/book-catalog/web"
)

// SetupRoutes builds the engine serving the HTML pages, the JSON API under
// /api/books and the health check, all backed by registry.
func SetupRoutes(registry *books.Registry, log *slog.Logger) *gin.Engine {

	g := gin.New()
	g.Use(RequestID(), RequestLogger(log), Recovery(log))

	web.RegisterPages(registry, log, g)
	apis.RegisterCrudAPI[objects.Book](booksAPI.NewBooksAPI(registry, log), g.Group("api/books"))
	apis.RegisterHealthCheck(g, registry.Count)

	return g
}

// Run serves handler on config's address until ctx is cancelled, then shuts
// down gracefully.
func Run(ctx context.Context, config env.ServerConfig, handler http.Handler, log *slog.Logger) error {

	srv := &http.Server{
		Addr:              config.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server running", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
	}

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(config.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}
