package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lisadascse72/Recipe-generator/pkg/config"
	"github.com/lisadascse72/Recipe-generator/pkg/history"
	"github.com/lisadascse72/Recipe-generator/pkg/logger"
	"github.com/lisadascse72/Recipe-generator/pkg/server"
)

var (
	serveAddress    string
	servePort       int
	serveEnableCORS bool
	serveEnableXSRF bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recipe generator web server",
	Long:  `The serve command starts the web UI and JSON API for generating recipes from your preferences.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		// Flags win over environment when set explicitly.
		if cmd.Flags().Changed("address") {
			cfg.Address = serveAddress
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("enable-cors") {
			cfg.EnableCORS = serveEnableCORS
		}
		if cmd.Flags().Changed("enable-xsrf-protection") {
			cfg.EnableXSRF = serveEnableXSRF
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger.SetLevel(cfg.LogLevel)

		deps := server.Deps{}
		client, err := initLLMClient(cfg)
		if err != nil {
			// The UI still comes up; generation requests answer 503 until
			// the model is configured.
			logger.Warnf("model client unavailable: %v", err)
		} else {
			deps.Client = client
		}

		store, err := history.NewBoltStore(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}
		defer store.Close()
		deps.Store = store

		app := server.New(cfg, deps)

		errCh := make(chan error, 1)
		go func() {
			logger.Infof("listening on %s", cfg.ListenAddr())
			errCh <- app.Listen(cfg.ListenAddr())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case sig := <-quit:
			logger.Infof("received %s, shutting down", sig)
			if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", "0.0.0.0", "address to bind")
	serveCmd.Flags().IntVar(&servePort, "port", 8501, "port to listen on")
	serveCmd.Flags().BoolVar(&serveEnableCORS, "enable-cors", false, "enable cross-origin requests")
	serveCmd.Flags().BoolVar(&serveEnableXSRF, "enable-xsrf-protection", false, "enable XSRF token protection")
}
