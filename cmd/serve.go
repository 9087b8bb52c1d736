package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/apmshow/apm-chatbot/internal/server"
	"github.com/apmshow/apm-chatbot/internal/widget"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chatbot HTTP server",
	Long:  `Starts the chatbot API server with the chat endpoint, FAQ management, the rendered FAQ page and the widget websocket channel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := loadConfigAndStore()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}

		eng := buildEngine(cfg)

		srv := server.New(server.Config{
			Port:        cfg.Port,
			ServiceName: cfg.ServiceName,
			StaticDir:   cfg.StaticDir,
			StaticAllow: cfg.StaticAllow,
			AllowAll:    cfg.AllowAllOrigins,
		}, eng, store)

		widget.RegisterRoutes(srv.Router(), widget.New(eng, store))

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured HTTP port")
	rootCmd.AddCommand(serveCmd)
}
