// credproxy serves the sandbox credential proxy and, when enabled, the
// sandbox router. Sandboxes authenticate with short-lived tenant JWTs and
// never see long-lived integration credentials.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/joho/godotenv"

	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/credproxy"
	"github.com/incidentfox/incidentfox/pkg/crypto"
	"github.com/incidentfox/incidentfox/pkg/database"
	"github.com/incidentfox/incidentfox/pkg/effective"
	"github.com/incidentfox/incidentfox/pkg/integration"
	"github.com/incidentfox/incidentfox/pkg/nodestore"
	"github.com/incidentfox/incidentfox/pkg/token"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envFile := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	proxyAddr := getEnv("CREDPROXY_LISTEN_ADDR", ":8090")
	routerAddr := getEnv("SANDBOX_ROUTER_LISTEN_ADDR", ":8091")

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()

	enc, err := crypto.NewEncryptor(os.Getenv("ENCRYPTION_KEY"))
	if err != nil {
		slog.Error("Failed to initialize encryptor", "error", err)
		os.Exit(1)
	}
	signer, err := crypto.NewTokenSigner(os.Getenv("IMPERSONATION_JWT_SECRET"))
	if err != nil {
		slog.Error("Failed to initialize token signer", "error", err)
		os.Exit(1)
	}

	auditSvc := audit.NewService(dbClient.Client)
	tokens := token.NewService(dbClient.Client, signer, os.Getenv("TOKEN_PEPPER"), token.Config{
		JTILogging: os.Getenv("IMPERSONATION_JTI_DB_LOGGING") == "true",
		JTIRequire: os.Getenv("IMPERSONATION_JTI_DB_REQUIRE") == "true",
	}, auditSvc)
	nodes := nodestore.NewService(dbClient.Client, enc, auditSvc)
	resolver := effective.NewResolver(nodes)
	nodes.SetInvalidator(resolver)
	registry := integration.NewRegistry()

	proxyEcho := echo.New()
	credproxy.NewServer(resolver, registry, enc, signer, tokens, auditSvc).RegisterRoutes(proxyEcho)

	errCh := make(chan error, 2)
	go func() {
		slog.Info("Credential proxy listening", "addr", proxyAddr)
		if err := proxyEcho.Start(proxyAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("Credential proxy error", "error", err)
			errCh <- err
		}
	}()

	var routerEcho *echo.Echo
	if os.Getenv("SANDBOX_ROUTER_ENABLED") == "true" {
		routerEcho = echo.New()
		credproxy.NewRouter(credproxy.LoadRouterConfigFromEnv()).RegisterRoutes(routerEcho)
		go func() {
			slog.Info("Sandbox router listening", "addr", routerAddr)
			if err := routerEcho.Start(routerAddr); err != nil && err != http.ErrServerClosed {
				slog.Error("Sandbox router error", "error", err)
				errCh <- err
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := proxyEcho.Shutdown(shutdownCtx); err != nil {
		slog.Error("Credential proxy shutdown error", "error", err)
	}
	if routerEcho != nil {
		if err := routerEcho.Shutdown(shutdownCtx); err != nil {
			slog.Error("Sandbox router shutdown error", "error", err)
		}
	}

	slog.Info("Shutdown complete")
}
