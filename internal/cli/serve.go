package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/anmicius0/parking-slot-manager/internal/config"
	"github.com/anmicius0/parking-slot-manager/internal/server"
	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"go.uber.org/zap"
)

type ServeCmd struct {
	Host string `help:"Listen host. Defaults to DEV_SERVER_HOST."`
	Port int    `help:"Listen port. Defaults to DEV_SERVER_PORT."`
}

func (c *ServeCmd) Run(ctx context.Context, app *Context) error {
	devCfg := app.Config.DevServer
	if c.Host != "" {
		devCfg.Host = c.Host
	}
	if c.Port != 0 {
		devCfg.Port = c.Port
	}
	cfg := *app.Config
	cfg.DevServer = devCfg

	router := server.NewRouter(&cfg, server.NewSlotStore())
	return startServer(ctx, router, devCfg)
}

// startServer binds the HTTP server and shuts it down gracefully once ctx ends.
func startServer(ctx context.Context, router http.Handler, devCfg config.DevServer) error {
	portStr := strconv.Itoa(devCfg.Port)
	addr := fmt.Sprintf("%s:%s", devCfg.Host, portStr)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		utils.Logger.Info("Shutdown signal received", zap.Error(context.Cause(ctx)))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			utils.Logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting",
		zap.String(utils.FieldHost, devCfg.Host),
		zap.String(utils.FieldPort, portStr),
		zap.String(utils.FieldURL, "http://"+addr+server.APIPrefix))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("dev server: %w", err)
	}
	<-stopped

	utils.Logger.Info("Server stopped")
	return nil
}
