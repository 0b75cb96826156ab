package mcp

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lutztalk/mcp-webexcalling/internal/config"
	"github.com/lutztalk/mcp-webexcalling/mcp/internal/handlers"
	"github.com/lutztalk/mcp-webexcalling/webex"
)

const shutdownTimeout = 10 * time.Second

func initLogger(cfg *config.Config) {
	zerolog.SetGlobalLevel(parseLogLevel(cfg.LogLevel))
	log.Logger = log.With().Caller().Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) error {
	if err := handler.RegisterTools(s); err != nil {
		return fmt.Errorf("register %s tools: %w", name, err)
	}
	return nil
}

// NewServer builds the MCP server with all Webex Calling tools registered.
func NewServer(cfg *config.Config, wx *webex.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
		// Advertise empty resources & prompts so the host client stops returning
		// -32601 for resources/list and prompts/list.
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	)

	registrations := []struct {
		name    string
		handler toolRegisterer
	}{
		{"org", handlers.NewOrgHandler(wx)},
		{"location", handlers.NewLocationHandler(wx)},
		{"user", handlers.NewUserHandler(wx)},
		{"queue", handlers.NewQueueHandler(wx)},
		{"attendant", handlers.NewAttendantHandler(wx)},
		{"huntgroup", handlers.NewHuntGroupHandler(wx)},
		{"device", handlers.NewDeviceHandler(wx)},
		{"license", handlers.NewLicenseHandler(wx)},
		{"number", handlers.NewNumberHandler(wx)},
		{"voicemail", handlers.NewVoicemailHandler(wx)},
		{"webhook", handlers.NewWebhookHandler(wx)},
		{"telephony", handlers.NewTelephonyHandler(wx)},
		{"cdr", handlers.NewCDRHandler(wx)},
	}
	for _, r := range registrations {
		if err := registerHandler(s, r.handler, r.name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// RunMCPServer loads config, builds the Webex client, and serves MCP over
// stdio or Streamable HTTP depending on how the process was launched.
func RunMCPServer() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	initLogger(cfg)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return err
	}

	opts := []webex.Option{
		webex.WithBaseURL(cfg.BaseURL),
		webex.WithAnalyticsBaseURL(cfg.AnalyticsBaseURL),
		webex.WithHTTPTimeout(cfg.HTTPTimeout),
		webex.WithZeroMillisWorkaround(cfg.ZeroMillisWorkaround),
	}
	if cfg.Debug {
		opts = append(opts, webex.WithDebug(true))
	}
	wx, err := webex.New(cfg.AccessToken, opts...)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Webex client")
		return err
	}

	s, err := NewServer(cfg, wx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to register tool handlers")
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("Starting Webex Calling MCP server (stdio transport)")
		if err := server.ServeStdio(s); err != nil {
			log.Error().Err(err).Msg("Stdio server error")
			return err
		}
		return nil
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Info().Str("addr", addr).Msg("Starting Webex Calling MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamSrv)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 5 * time.Second,
		// No write deadline, required for SSE streaming.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines the transport based on environment and stdin.
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}
	// Use stdio when stdin is not a terminal (launched by an MCP host).
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
