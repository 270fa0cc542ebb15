package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"blocksd/internal/bridge"
	"blocksd/internal/catalog"
	"blocksd/internal/config"
	"blocksd/internal/editorws"
	"blocksd/internal/httpapi"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("BLOCKSD_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultCatalogDir := os.Getenv("BLOCKSD_CATALOG_DIR")
	defaultLogLevel := "info"
	if v := os.Getenv("BLOCKSD_LOG_LEVEL"); v != "" {
		defaultLogLevel = v
	}
	defaultLogFormat := "console"
	if v := os.Getenv("BLOCKSD_LOG_FORMAT"); v != "" {
		defaultLogFormat = v
	}

	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", "", "Optional config file (.yaml/.yml/.json/.toml)")
	catalogDir := flag.String("catalog-dir", defaultCatalogDir, "Directory of component type descriptor *.json files (empty disables the catalog)")
	warnThreshold := flag.Int("pending-warn-threshold", 0, "Buffered ops per form before a high-water warning (0=default)")
	callTimeout := flag.Int("editor-call-timeout", 0, "Editor value-call timeout in seconds (0=default)")
	maxBody := flag.Int64("max-body-bytes", 0, "Maximum request body size in bytes (0=default)")
	logLevel := flag.String("log-level", defaultLogLevel, "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", defaultLogFormat, "Log format: console or json")
	corsEnabled := flag.Bool("cors", false, "Enable CORS for the HTTP API")
	corsOrigins := flag.String("cors-origins", "*", "Comma-separated allowed CORS origins")
	corsMethods := flag.String("cors-methods", "GET,POST,PUT,DELETE,OPTIONS", "Comma-separated allowed CORS methods")
	corsHeaders := flag.String("cors-headers", "Accept,Content-Type,X-Log-Level", "Comma-separated allowed CORS headers")
	flag.Parse()

	// Optional config file. File values apply wherever the flag was not
	// passed explicitly, so precedence is flag > file > env default.
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["addr"] && cfg.Addr != "" {
			*addr = cfg.Addr
		}
		if !set["catalog-dir"] && cfg.CatalogDir != "" {
			*catalogDir = cfg.CatalogDir
		}
		if !set["pending-warn-threshold"] && cfg.PendingWarnThreshold != 0 {
			*warnThreshold = cfg.PendingWarnThreshold
		}
		if !set["editor-call-timeout"] && cfg.EditorCallTimeoutS != 0 {
			*callTimeout = cfg.EditorCallTimeoutS
		}
		if !set["max-body-bytes"] && cfg.MaxBodyBytes != 0 {
			*maxBody = cfg.MaxBodyBytes
		}
		if !set["log-level"] && cfg.LogLevel != "" {
			*logLevel = cfg.LogLevel
		}
		if !set["log-format"] && cfg.LogFormat != "" {
			*logFormat = cfg.LogFormat
		}
		if !set["cors"] && cfg.CORSEnabled {
			*corsEnabled = true
		}
		if !set["cors-origins"] && cfg.CORSOrigins != "" {
			*corsOrigins = cfg.CORSOrigins
		}
		if !set["cors-methods"] && cfg.CORSMethods != "" {
			*corsMethods = cfg.CORSMethods
		}
		if !set["cors-headers"] && cfg.CORSHeaders != "" {
			*corsHeaders = cfg.CORSHeaders
		}
	}

	logger := newLogger(*logLevel, *logFormat)

	br := bridge.NewWithConfig(bridge.BridgeConfig{
		Logger:               &logger,
		PendingWarnThreshold: *warnThreshold,
	})

	cat := catalog.New(*catalogDir)
	cat.SetLogger(logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *catalogDir != "" {
		if err := cat.Load(); err != nil {
			log.Fatalf("failed to load component catalog: %v", err)
		}
		go func() {
			if err := cat.Watch(ctx); err != nil {
				logger.Warn().Err(err).Msg("catalog watcher stopped")
			}
		}()
	}

	hub := editorws.NewHub(br)
	hub.SetLogger(logger)
	if *callTimeout > 0 {
		hub.SetCallTimeout(time.Duration(*callTimeout) * time.Second)
	}

	httpapi.SetLogger(logger)
	if *maxBody > 0 {
		httpapi.SetMaxBodyBytes(*maxBody)
	}
	if *corsEnabled {
		httpapi.SetCORSOptions(true, splitCSV(*corsOrigins), splitCSV(*corsMethods), splitCSV(*corsHeaders))
	}

	mux := httpapi.NewMux(br, cat, hub)
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", *addr).Str("catalog_dir", *catalogDir).
			Int("types", cat.Len()).Msg("blocksd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancel()
	sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer scancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

// newLogger builds the root logger from level and format strings.
func newLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty items.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
