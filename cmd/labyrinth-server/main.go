// SPDX-License-Identifier: MIT

// Command labyrinth-server serves maze generation over HTTP.
//
// Settings are read from the environment and an optional .env file (see
// package config). The server stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/server"
)

var log = logrus.New()

func main() {
	envFile := flag.String("env", "", "load settings from this .env file")
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if *envFile != "" {
		cfg, err = config.Load(*envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	cfg.ConfigureLogger(log)
	gin.SetMode(cfg.GinMode)

	router := server.NewRouter(server.Config{
		Addr:        cfg.Addr(),
		BaseURL:     "/api",
		Controllers: []server.Controller{server.NewMazeController(cfg, log)},
		Logger:      log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = router.Run(ctx); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server shut down")
}
