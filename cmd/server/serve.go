package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"notes-service/internal/config"
	"notes-service/internal/docs"
	"notes-service/internal/handler"
	"notes-service/internal/logger"
	"notes-service/internal/repository"
	"notes-service/internal/service"
	"notes-service/internal/websocket"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveOpts struct {
	port string
	host string
	env  string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveOpts.port, "port", "", "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&serveOpts.host, "host", "", "listen host (overrides HOST)")
	serveCmd.Flags().StringVar(&serveOpts.env, "env", "", "environment name (overrides ENV)")
	rootCmd.AddCommand(serveCmd)

	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serveOpts.port
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveOpts.host
	}
	if cmd.Flags().Changed("env") {
		cfg.Server.Env = serveOpts.env
	}

	return cfg, nil
}

func runServer(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()

	opts := []service.Option{service.WithLogger(log.Named("notes"))}

	var wsHandler *handler.WebSocketHandler
	if cfg.WebSocket.Enabled {
		wsManager := websocket.NewManager(cfg.WebSocket, log.Named("websocket"))
		go wsManager.Run(hubCtx)

		opts = append(opts, service.WithPublisher(wsManager))
		wsHandler = handler.NewWebSocketHandler(wsManager, cfg.WebSocket, log.Named("websocket"))
	}

	noteService := service.NewNoteService(repository.NewMemoryNoteRepository(), opts...)

	router := handler.NewRouter(handler.Handlers{
		Notes:     handler.NewNoteHandler(noteService, log),
		Health:    handler.NewHealthHandler(cfg.Server.Env),
		Docs:      handler.NewDocsHandler(docs.New(fmt.Sprintf("http://localhost:%s", cfg.Server.Port)), log),
		WebSocket: wsHandler,
	}, cfg.CORS, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting notes server",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Server.Env),
			zap.Bool("websocket", cfg.WebSocket.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	stopHub()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}
