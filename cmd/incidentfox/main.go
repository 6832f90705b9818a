// incidentfox orchestrator server: serves the control plane HTTP API,
// runs the in-process scheduler worker, and dispatches agent runs.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/incidentfox/incidentfox/pkg/api"
	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/auth"
	"github.com/incidentfox/incidentfox/pkg/crypto"
	"github.com/incidentfox/incidentfox/pkg/database"
	"github.com/incidentfox/incidentfox/pkg/dispatch"
	"github.com/incidentfox/incidentfox/pkg/effective"
	"github.com/incidentfox/incidentfox/pkg/fanout"
	"github.com/incidentfox/incidentfox/pkg/integration"
	"github.com/incidentfox/incidentfox/pkg/nodestore"
	"github.com/incidentfox/incidentfox/pkg/provisioning"
	"github.com/incidentfox/incidentfox/pkg/scheduler"
	"github.com/incidentfox/incidentfox/pkg/token"
	"github.com/incidentfox/incidentfox/pkg/webhook"
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
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	ctx := context.Background()

	// 1. Database
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
	slog.Info("Connected to PostgreSQL database")

	// 2. Crypto primitives
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

	// 3. Domain services
	auditSvc := audit.NewService(dbClient.Client)
	tokens := token.NewService(dbClient.Client, signer, os.Getenv("TOKEN_PEPPER"), token.Config{
		JTILogging: os.Getenv("IMPERSONATION_JTI_DB_LOGGING") == "true",
		JTIRequire: os.Getenv("IMPERSONATION_JTI_DB_REQUIRE") == "true",
	}, auditSvc)

	// One-time startup cleanup of expired JTI allowlist rows
	if n, err := tokens.PurgeExpiredJTIs(ctx); err != nil {
		slog.Error("Failed to purge expired JTIs", "error", err)
		// Non-fatal, continue
	} else if n > 0 {
		slog.Info("Purged expired JTIs", "count", n)
	}

	nodes := nodestore.NewService(dbClient.Client, enc, auditSvc)
	resolver := effective.NewResolver(nodes)
	nodes.SetInvalidator(resolver)
	registry := integration.NewRegistry()

	authCfg := auth.LoadConfigFromEnv()
	var oidc *auth.OIDCVerifier
	if authCfg.OIDC.Enabled && authCfg.OIDC.JWKSJSON != "" {
		oidc, err = auth.NewOIDCVerifier(authCfg.OIDC)
		if err != nil {
			slog.Error("Failed to initialize OIDC verifier", "error", err)
			os.Exit(1)
		}
	}
	authn := auth.NewAuthenticator(authCfg, tokens, signer, oidc)

	provisioner := provisioning.NewEngine(dbClient.Client, dbClient.DB(), nodes, tokens, auditSvc, provisioning.Config{
		DisableAdvisoryLocks: os.Getenv("ORCHESTRATOR_DISABLE_ADVISORY_LOCKS") == "true",
		PipelineURL:          os.Getenv("AI_PIPELINE_API_URL"),
	})
	jobs := scheduler.NewStore(dbClient.Client)
	dispatcher := dispatch.NewDispatcher(dbClient.Client, resolver, tokens, auditSvc, dispatch.LoadConfigFromEnv())
	webhooks := webhook.NewService(dbClient.Client, nodes, auditSvc)
	slog.Info("Services initialized")

	// 4. HTTP server
	apiCfg := api.LoadConfigFromEnv()
	httpServer := api.NewServer(apiCfg, api.Deps{
		EntClient:   dbClient.Client,
		DBClient:    dbClient,
		Auth:        authn,
		Nodes:       nodes,
		Tokens:      tokens,
		Registry:    registry,
		Resolver:    resolver,
		Encryptor:   enc,
		Provisioner: provisioner,
		Jobs:        jobs,
		Dispatcher:  dispatcher,
		Webhooks:    webhooks,
		Fanout:      fanout.NewService(),
		Audit:       auditSvc,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", apiCfg.Addr)
		if err := httpServer.Start(apiCfg.Addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 5. In-process scheduler worker. It talks to the internal API over
	// loopback, the same wire contract an out-of-process worker would use.
	workerCtx, workerCancel := context.WithCancel(ctx)
	defer workerCancel()
	workerCfg := scheduler.LoadWorkerConfigFromEnv()
	if workerCfg.BaseURL == "" {
		addr := apiCfg.Addr
		if strings.HasPrefix(addr, ":") {
			addr = "127.0.0.1" + addr
		}
		workerCfg.BaseURL = "http://" + addr
	}
	worker := scheduler.NewWorker(workerCfg)
	workerDone := make(chan struct{})
	go func() {
		worker.Run(workerCtx)
		close(workerDone)
	}()

	slog.Info("incidentfox started", "addr", apiCfg.Addr)

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown: stop claiming jobs first, then drain HTTP.
	workerCancel()
	select {
	case <-workerDone:
		slog.Info("Scheduler worker stopped")
	case <-time.After(10 * time.Second):
		slog.Warn("Scheduler worker shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
