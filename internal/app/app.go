package app

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/avezina/mazehunt/internal/middleware"
)

type App struct {
	logger *logrus.Logger
	router *http.ServeMux
	addr   string
}

func New(logger *logrus.Logger, addr string) *App {
	app := &App{
		logger: logger,
		router: http.NewServeMux(),
		addr:   addr,
	}
	app.loadRoutes()
	return app
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr: a.addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Logging(a.logger),
		),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.WithField("addr", a.addr).Info("server listening")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
