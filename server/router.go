// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	logger      logrus.FieldLogger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      logrus.FieldLogger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "/api"
	}

	return &Router{
		addr:        config.Addr,
		baseURL:     baseURL,
		controllers: config.Controllers,
		logger:      logger,
	}
}

// Handler builds the gin engine with every controller registered under
// baseURL/v1.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(r.logger))

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.WithField("addr", r.addr).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
