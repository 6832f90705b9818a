package credproxy

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	echo "github.com/labstack/echo/v5"
)

// Sandbox routing headers.
const (
	sandboxIDHeader        = "X-Sandbox-ID"
	sandboxNamespaceHeader = "X-Sandbox-Namespace"
	sandboxPortHeader      = "X-Sandbox-Port"

	routerMaxConnectAttempts = 8
)

// RouterConfig holds sandbox router defaults.
type RouterConfig struct {
	// DefaultNamespace for sandboxes when no header is given.
	DefaultNamespace string
	// DefaultPort for sandboxes when no header is given.
	DefaultPort int
}

// LoadRouterConfigFromEnv reads the router settings from the environment.
func LoadRouterConfigFromEnv() RouterConfig {
	cfg := RouterConfig{
		DefaultNamespace: os.Getenv("SANDBOX_DEFAULT_NAMESPACE"),
		DefaultPort:      8000,
	}
	if cfg.DefaultNamespace == "" {
		cfg.DefaultNamespace = "sandboxes"
	}
	if raw := os.Getenv("SANDBOX_DEFAULT_PORT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.DefaultPort = n
		}
	}
	return cfg
}

// Router forwards requests to per-tenant sandbox pods addressed by the
// X-Sandbox-ID header. Sandboxes take a moment to come up, so connection
// errors retry longer than the credential proxy does.
type Router struct {
	cfg    RouterConfig
	http   *http.Client
	logger *slog.Logger
}

// NewRouter creates the sandbox router.
func NewRouter(cfg RouterConfig) *Router {
	return &Router{
		cfg:    cfg,
		http:   &http.Client{},
		logger: slog.Default().With("component", "sandbox-router"),
	}
}

// RegisterRoutes attaches the router's catch-all to an echo instance.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.Any("/*", r.routeHandler)
}

func (r *Router) routeHandler(c *echo.Context) error {
	req := c.Request()
	sandboxID := req.Header.Get(sandboxIDHeader)
	if sandboxID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing "+sandboxIDHeader)
	}
	namespace := req.Header.Get(sandboxNamespaceHeader)
	if namespace == "" {
		namespace = r.cfg.DefaultNamespace
	}
	port := r.cfg.DefaultPort
	if raw := req.Header.Get(sandboxPortHeader); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 65535 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid "+sandboxPortHeader)
		}
		port = n
	}

	target := fmt.Sprintf("http://%s.%s.svc:%d%s", sandboxID, namespace, port, req.URL.Path)
	if q := req.URL.RawQuery; q != "" {
		target += "?" + q
	}

	// Buffer the body so connect retries can replay it.
	body, err := io.ReadAll(io.LimitReader(req.Body, 32*1024*1024))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
	}

	var resp *http.Response
	attempt := func() error {
		out, err := http.NewRequestWithContext(req.Context(), req.Method, target, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		for name, values := range req.Header {
			if isHopByHop(name) {
				continue
			}
			for _, v := range values {
				out.Header.Add(name, v)
			}
		}
		rr, err := r.http.Do(out)
		if err != nil {
			return err
		}
		resp = rr
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(backoff.WithMaxInterval(4*time.Second)),
		routerMaxConnectAttempts-1,
	), req.Context())
	if err := backoff.Retry(attempt, policy); err != nil {
		r.logger.Warn("Sandbox unreachable", "sandbox_id", sandboxID, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "sandbox unreachable")
	}
	defer resp.Body.Close()

	respHeader := c.Response().Header()
	for name, values := range resp.Header {
		if isHopByHop(name) {
			continue
		}
		for _, v := range values {
			respHeader.Add(name, v)
		}
	}
	c.Response().WriteHeader(resp.StatusCode)
	if _, err := flushCopy(c.Response(), resp.Body); err != nil && err != io.EOF {
		r.logger.Warn("Sandbox stream interrupted", "sandbox_id", sandboxID, "error", err)
	}
	return nil
}
