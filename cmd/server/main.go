package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/internal/config"
	"github.com/juustinnle/volunteer-hub/pkg/api"
	"github.com/juustinnle/volunteer-hub/pkg/clients/gmailclient"
	"github.com/juustinnle/volunteer-hub/pkg/core/services"
	"github.com/juustinnle/volunteer-hub/pkg/store"
	"github.com/juustinnle/volunteer-hub/pkg/utils"
	"github.com/juustinnle/volunteer-hub/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg         *config.Config
	records     *store.Store
	dispatcher  *services.SyncDispatcher
	gmailClient *gmailclient.Client
	logger      *zap.Logger
	ctx         context.Context
}

var (
	env        string
	configPath string
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "Volunteer Hub - volunteer event coordination backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment (dev, test, prod, etc.)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (defaults to volunteer_hub_config.yaml lookup)")

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, store, dispatcher and the optional mail client
func initApp() error {
	// Environment variables may override config lookup
	_ = godotenv.Load()

	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	app.logger.Info("Loading configuration")
	if configPath != "" {
		app.cfg, err = config.LoadFromPath(configPath)
	} else {
		app.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	app.records = store.NewStore()
	app.dispatcher = services.NewSyncDispatcher()
	services.RegisterBroadcastHandler(app.dispatcher, app.records, app.records, app.logger)

	if app.cfg.Mail.Enabled {
		if err := initMail(); err != nil {
			return err
		}
	}

	return nil
}

// initMail runs the OAuth flow and wires email delivery of notifications
func initMail() error {
	app.logger.Info("Mail delivery enabled, loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return fmt.Errorf("failed to build oauth config: %w", err)
	}

	token, err := utils.GetTokenWithFlow(app.ctx, oauthConfig)
	if err != nil {
		return fmt.Errorf("failed to obtain oauth token: %w", err)
	}

	app.logger.Info("Initializing gmail client")
	app.gmailClient, err = gmailclient.NewClient(app.ctx, oauthCfg, token, app.cfg.Mail.GmailUserID, app.cfg.Mail.Sender)
	if err != nil {
		return fmt.Errorf("failed to create gmail client: %w", err)
	}

	services.RegisterMailHandlers(app.dispatcher, app.gmailClient, app.records, app.logger)
	app.logger.Debug("Mail handlers registered")

	return nil
}

// serveCmd runs the HTTP server until interrupted
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			router := api.NewServer(app.records, app.dispatcher, app.logger).Router()

			srv := &http.Server{
				Addr:    app.cfg.ListenAddr,
				Handler: router,
			}

			go func() {
				app.logger.Info("HTTP server listening", zap.String("addr", app.cfg.ListenAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					app.logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()

			// Wait for interrupt, then drain in-flight requests
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			app.logger.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(app.ctx, 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}

			app.logger.Info("Server stopped")
			return nil
		},
	}
}
