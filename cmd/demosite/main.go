// Demo site server
//
// Serves local replicas of the pages the uicheck scenarios drive, so the
// checks can run without reaching the public demo sites:
//
//	go run ./cmd/demosite --addr :8080
//	uicheck run --site demoqa=http://localhost:8080/demoqa --site the-internet=http://localhost:8080
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/thesyncim/uicheck/cmd/demosite/server"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	verbose := flag.Bool("verbose", false, "Log every request")
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg := server.DefaultConfig()
	cfg.Addr = *addr
	cfg.Logger = logger
	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create server")
	}

	if _, err := srv.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
	logger.WithField("url", srv.URL()).Info("Demo site ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Shutdown failed")
	}
}
