package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/infrastructure/config"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/infrastructure/realtime"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/presentation/controller"
	hubhttp "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/presentation/http"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/adapter"
)

const shutdownTimeout = 10 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the hub server",
	Args:  cobra.MaximumNArgs(0),
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := adapter.NewMemory()
	router := realtime.NewRouter()

	engine := newEngine(cfg.Debug)
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	v1 := engine.Group("/api/v1")
	hubhttp.RegisterRoutes(v1, store, router, logger, controller.SocketOptions{
		MaxMessageSize: cfg.MaxMessageSize,
		SendBuffer:     cfg.SendBuffer,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("hub listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	router.Close()
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newEngine(debug bool) *gin.Engine {
	if debug {
		return gin.Default()
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	return engine
}
