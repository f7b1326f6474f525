// Command textmill serves text transformation tools over MCP.
//
// Usage:
//
//	textmill                               # stdio transport (default)
//	MCP_TRANSPORT=quic textmill            # QUIC transport on MCP_QUIC_ADDR
//	MCP_TRANSPORT=http textmill            # streamable HTTP on PORT
//	CONFIG_FILE=textmill.yaml textmill     # load service config from YAML
package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/raineponce/textmill/dbopen"
	"github.com/raineponce/textmill/mcpquic"
	"github.com/raineponce/textmill/observability"
	"github.com/raineponce/textmill/textops"
)

func main() {
	var level slog.Level
	switch env("LOG_LEVEL", "info") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("textmill: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	cfg.Logger = logger

	var opts []textops.Option

	// Optional audit trail in SQLite.
	if auditPath := env("AUDIT_DB", ""); auditPath != "" {
		db, err := dbopen.Open(auditPath, dbopen.WithMkdirAll())
		if err != nil {
			return fmt.Errorf("open audit db: %w", err)
		}
		defer db.Close()

		audit := observability.NewToolLogger(db)
		if err := audit.Init(); err != nil {
			return fmt.Errorf("init audit db: %w", err)
		}
		opts = append(opts, textops.WithAudit(audit))
		logger.Info("audit trail enabled", "db", auditPath)
	}

	svc := textops.New(*cfg, opts...)

	mcpSrv := mcp.NewServer(&mcp.Implementation{
		Name:    "textmill",
		Version: "1.0.0",
	}, nil)
	svc.RegisterMCP(mcpSrv)

	switch transport := env("MCP_TRANSPORT", "stdio"); transport {
	case "stdio":
		logger.Info("mcp serving on stdio")
		return mcpSrv.Run(ctx, &mcp.StdioTransport{})

	case "quic":
		return serveQUIC(ctx, mcpSrv, logger)

	case "http":
		return serveHTTP(ctx, mcpSrv, logger)

	default:
		return fmt.Errorf("unknown MCP_TRANSPORT %q (want stdio, quic or http)", transport)
	}
}

func serveQUIC(ctx context.Context, mcpSrv *mcp.Server, logger *slog.Logger) error {
	addr := env("MCP_QUIC_ADDR", ":9444")
	certFile := env("TLS_CERT", "")
	keyFile := env("TLS_KEY", "")

	var tlsCfg *tls.Config
	var err error
	if certFile != "" && keyFile != "" {
		tlsCfg, err = mcpquic.ServerTLSConfig(certFile, keyFile)
	} else {
		logger.Warn("no TLS_CERT/TLS_KEY set, using self-signed certificate")
		tlsCfg, err = mcpquic.SelfSignedTLSConfig()
	}
	if err != nil {
		return fmt.Errorf("quic tls: %w", err)
	}

	ql, err := mcpquic.NewListener(addr, tlsCfg, mcpSrv, logger)
	if err != nil {
		return fmt.Errorf("quic listen: %w", err)
	}
	defer ql.Close()

	logger.Info("mcp serving on quic", "addr", addr)
	if err := ql.Serve(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func serveHTTP(ctx context.Context, mcpSrv *mcp.Server, logger *slog.Logger) error {
	port := env("PORT", "8080")

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"status":"ok"}`)
	})
	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpSrv
	}, nil))

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("mcp serving on http", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func resolveConfig() (*textops.Config, error) {
	if path := env("CONFIG_FILE", ""); path != "" {
		return textops.LoadConfigFile(path)
	}
	return &textops.Config{
		OutputDir: env("OUTPUT_DIR", "."),
	}, nil
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
