package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/avezina/mazehunt/internal/app"
	"github.com/avezina/mazehunt/internal/config"
)

var log = logrus.New()

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := config.Load(); err != nil {
		log.Fatal("unable to load config: ", err)
	}

	setupLogging()

	a := app.New(log, config.Addr())
	if err := a.Start(mainCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("exit reason: %s\n", err)
	}
}
