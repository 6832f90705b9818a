// Package api exposes the control plane's HTTP surfaces: admin endpoints,
// tenant self-service, vendor webhooks, and the internal scheduler API.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/ent"
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

// SlackApp holds one Slack app's webhook credentials. The "default" slug
// serves the unslugged /webhooks/slack route.
type SlackApp struct {
	Slug          string `json:"slug"`
	AppID         string `json:"app_id,omitempty"`
	SigningSecret string `json:"signing_secret"`
	BotToken      string `json:"bot_token,omitempty"`
}

// Config holds the HTTP server settings.
type Config struct {
	Addr string

	// SlackApps maps slug to app credentials (SLACK_APPS, JSON array).
	SlackApps map[string]SlackApp

	// Per-vendor webhook secrets.
	GitHubWebhookSecret     string
	PagerDutyWebhookSecret  string
	IncidentIOWebhookSecret string
	GenericWebhookSecret    string
	GoogleChatToken         string
	TeamsToken              string

	// InternalServices may call the /internal API, identified by the
	// X-Internal-Service header. Empty means internal calls are rejected.
	InternalServices []string

	// AdminPermission gates the /admin group; AdminRunPermission gates
	// /admin/agents/run. Empty takes the package defaults
	// (ORCHESTRATOR_REQUIRED_PERMISSION_*, ORCHESTRATOR_REQUIRE_ADMIN_STAR).
	AdminPermission    string
	AdminRunPermission string
}

// LoadConfigFromEnv reads the server settings from the environment.
func LoadConfigFromEnv() Config {
	cfg := Config{
		Addr:                    os.Getenv("LISTEN_ADDR"),
		GitHubWebhookSecret:     os.Getenv("GITHUB_WEBHOOK_SECRET"),
		PagerDutyWebhookSecret:  os.Getenv("PAGERDUTY_WEBHOOK_SECRET"),
		IncidentIOWebhookSecret: os.Getenv("INCIDENTIO_WEBHOOK_SECRET"),
		GenericWebhookSecret:    os.Getenv("GENERIC_WEBHOOK_SECRET"),
		GoogleChatToken:         os.Getenv("GOOGLE_CHAT_TOKEN"),
		TeamsToken:              os.Getenv("TEAMS_BEARER_TOKEN"),
		InternalServices:        []string{"scheduler"},
		SlackApps:               map[string]SlackApp{},
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	cfg.AdminPermission = requiredPermissionFromEnv("ADMIN", auth.PermProvision)
	cfg.AdminRunPermission = requiredPermissionFromEnv("AGENT_RUN", auth.PermAdminAgentRun)
	if os.Getenv("ORCHESTRATOR_REQUIRE_ADMIN_STAR") == "true" {
		cfg.AdminPermission = auth.PermAdminAll
	}
	if raw := os.Getenv("SLACK_APPS"); raw != "" {
		var apps []SlackApp
		if err := json.Unmarshal([]byte(raw), &apps); err != nil {
			slog.Error("Invalid SLACK_APPS, ignoring", "error", err)
		} else {
			for _, app := range apps {
				cfg.SlackApps[app.Slug] = app
			}
		}
	}
	if secret := os.Getenv("SLACK_SIGNING_SECRET"); secret != "" {
		if _, ok := cfg.SlackApps["default"]; !ok {
			cfg.SlackApps["default"] = SlackApp{
				Slug:          "default",
				SigningSecret: secret,
				BotToken:      os.Getenv("SLACK_BOT_TOKEN"),
			}
		}
	}
	return cfg
}

// requiredPermissionFromEnv honors ORCHESTRATOR_REQUIRED_PERMISSION_<NAME>
// overrides for RBAC tuning.
func requiredPermissionFromEnv(name, fallback string) string {
	if v := os.Getenv("ORCHESTRATOR_REQUIRED_PERMISSION_" + name); v != "" {
		return v
	}
	return fallback
}

// Server is the control plane HTTP server.
type Server struct {
	e   *echo.Echo
	cfg Config

	entClient   *ent.Client
	dbClient    *database.Client
	authn       *auth.Authenticator
	nodes       *nodestore.Service
	tokens      *token.Service
	registry    *integration.Registry
	resolver    *effective.Resolver
	enc         *crypto.Encryptor
	provisioner *provisioning.Engine
	jobs        *scheduler.Store
	dispatcher  *dispatch.Dispatcher
	webhooks    *webhook.Service
	fanout      *fanout.Service
	audit       *audit.Service
	logger      *slog.Logger
}

// Deps bundles the services the server fronts.
type Deps struct {
	EntClient   *ent.Client
	DBClient    *database.Client
	Auth        *auth.Authenticator
	Nodes       *nodestore.Service
	Tokens      *token.Service
	Registry    *integration.Registry
	Resolver    *effective.Resolver
	Encryptor   *crypto.Encryptor
	Provisioner *provisioning.Engine
	Jobs        *scheduler.Store
	Dispatcher  *dispatch.Dispatcher
	Webhooks    *webhook.Service
	Fanout      *fanout.Service
	Audit       *audit.Service
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(cfg Config, deps Deps) *Server {
	s := &Server{
		e:           echo.New(),
		cfg:         cfg,
		entClient:   deps.EntClient,
		dbClient:    deps.DBClient,
		authn:       deps.Auth,
		nodes:       deps.Nodes,
		tokens:      deps.Tokens,
		registry:    deps.Registry,
		resolver:    deps.Resolver,
		enc:         deps.Encryptor,
		provisioner: deps.Provisioner,
		jobs:        deps.Jobs,
		dispatcher:  deps.Dispatcher,
		webhooks:    deps.Webhooks,
		fanout:      deps.Fanout,
		audit:       deps.Audit,
		logger:      slog.Default().With("component", "api"),
	}
	s.registerRoutes()
	return s
}

// Echo exposes the underlying echo instance, for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}

func (s *Server) registerRoutes() {
	s.e.Use(securityHeaders())

	s.e.GET("/health", s.healthHandler)

	v1 := s.e.Group("/api/v1", s.principalMiddleware)

	adminPerm := s.cfg.AdminPermission
	if adminPerm == "" {
		adminPerm = auth.PermProvision
	}
	adminRunPerm := s.cfg.AdminRunPermission
	if adminRunPerm == "" {
		adminRunPerm = auth.PermAdminAgentRun
	}
	admin := v1.Group("/admin", requirePermission(adminPerm))
	admin.POST("/orgs", s.createOrgHandler)
	admin.POST("/orgs/:org/nodes", s.createNodeHandler)
	admin.DELETE("/orgs/:org/nodes/:node", s.deleteNodeHandler)
	admin.GET("/orgs/:org/nodes/:node/config", s.getConfigHandler)
	admin.PUT("/orgs/:org/nodes/:node/config", s.patchConfigHandler)
	admin.POST("/orgs/:org/nodes/:team/tokens", s.issueTokenHandler)
	admin.POST("/orgs/:org/nodes/:team/tokens/rotate", s.rotateTokenHandler)
	admin.DELETE("/orgs/:org/nodes/:team/tokens/:token_id", s.revokeTokenHandler)
	admin.POST("/orgs/:org/admin-tokens", s.issueOrgAdminTokenHandler)
	admin.DELETE("/orgs/:org/admin-tokens/:token_id", s.revokeOrgAdminTokenHandler)
	admin.POST("/orgs/:org/teams/:team/impersonation-token", s.impersonationTokenHandler)
	admin.POST("/provision/team", s.provisionTeamHandler)
	admin.GET("/provision/runs/:org/:run_id", s.getProvisioningRunHandler)
	admin.GET("/provision/runs/:org", s.listProvisioningRunsHandler)
	admin.POST("/agents/run", s.adminAgentRunHandler, requirePermission(adminRunPerm))

	v1.GET("/auth/me", s.authMeHandler)
	v1.GET("/config/me/effective", s.effectiveConfigHandler)
	v1.PUT("/config/me", s.patchMyConfigHandler, requireWrite)
	v1.GET("/integrations", s.listIntegrationsHandler)
	v1.POST("/agents/run", s.agentRunHandler)

	v1.POST("/scheduled-jobs", s.createScheduledJobHandler, requireWrite)
	v1.GET("/scheduled-jobs", s.listScheduledJobsHandler)
	v1.DELETE("/scheduled-jobs/:id", s.deleteScheduledJobHandler, requireWrite)
	v1.PUT("/scheduled-jobs/:id/enabled", s.setScheduledJobEnabledHandler, requireWrite)

	internal := s.e.Group("/api/v1/internal", s.internalMiddleware)
	internal.GET("/scheduled-jobs/due", s.dueJobsHandler)
	internal.POST("/scheduled-jobs/:id/complete", s.completeJobHandler)
	internal.POST("/impersonate-team", s.impersonateTeamHandler)
	internal.GET("/slack/apps", s.slackAppsHandler)

	// Webhooks authenticate by signature, not bearer token.
	hooks := s.e.Group("/webhooks")
	hooks.POST("/slack", s.slackWebhookHandler)
	hooks.POST("/slack/:slug/:surface", s.slackWebhookHandler)
	hooks.POST("/github", s.githubWebhookHandler)
	hooks.POST("/pagerduty", s.pagerDutyWebhookHandler)
	hooks.POST("/incidentio", s.incidentIOWebhookHandler)
	hooks.POST("/blameless", s.genericWebhookHandler("blameless"))
	hooks.POST("/firehydrant", s.genericWebhookHandler("firehydrant"))
	hooks.POST("/circleback", s.genericWebhookHandler("circleback"))
	hooks.POST("/recall", s.genericWebhookHandler("recall"))
	hooks.POST("/vercel/logs", s.genericWebhookHandler("vercel"))
	hooks.POST("/google-chat", s.googleChatWebhookHandler)
	hooks.POST("/teams", s.teamsWebhookHandler)
}

// Start begins serving on addr (blocking).
func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// requestTimeout wraps a request context for service calls with a bound.
func requestTimeout(c *echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 30*time.Second)
}
