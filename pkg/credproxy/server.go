package credproxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/crypto"
	"github.com/incidentfox/incidentfox/pkg/effective"
	"github.com/incidentfox/incidentfox/pkg/integration"
	"github.com/incidentfox/incidentfox/pkg/token"
)

const (
	// sandboxJWTHeader carries the sandbox's tenant identity. The tenant is
	// taken from the verified claims only, never from request headers.
	sandboxJWTHeader = "X-Sandbox-JWT"

	connectTimeout     = 30 * time.Second
	maxConnectAttempts = 3
	connectBackoffCap  = 4 * time.Second

	claimsContextKey = "sandbox_claims"
)

// hopByHopHeaders are dropped from proxied responses.
var hopByHopHeaders = []string{
	"Connection", "Keep-Alive", "Proxy-Authenticate", "Proxy-Authorization",
	"Proxy-Connection", "Te", "Trailer", "Transfer-Encoding", "Upgrade",
}

// Server is the credential proxy.
type Server struct {
	resolver *effective.Resolver
	registry *integration.Registry
	enc      *crypto.Encryptor
	signer   *crypto.TokenSigner
	tokens   *token.Service
	audit    *audit.Service
	http     *http.Client
	logger   *slog.Logger
}

// NewServer creates the credential proxy server.
func NewServer(resolver *effective.Resolver, registry *integration.Registry, enc *crypto.Encryptor, signer *crypto.TokenSigner, tokens *token.Service, auditSvc *audit.Service) *Server {
	return &Server{
		resolver: resolver,
		registry: registry,
		enc:      enc,
		signer:   signer,
		tokens:   tokens,
		audit:    auditSvc,
		http: &http.Client{
			// Connect is bounded; reads are not, log queries can be slow.
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: connectTimeout}).DialContext,
				ResponseHeaderTimeout: 0,
				Proxy:                 http.ProxyFromEnvironment,
			},
		},
		logger: slog.Default().With("component", "credproxy"),
	}
}

// RegisterRoutes attaches the proxy surfaces to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/messages", s.messagesHandler, s.sandboxAuth)
	e.Any("/:provider/*", s.proxyHandler, s.sandboxAuth)
}

// sandboxAuth verifies the sandbox JWT and stashes its claims on the context.
func (s *Server) sandboxAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		raw := c.Request().Header.Get(sandboxJWTHeader)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing sandbox token")
		}
		claims, err := s.signer.Verify(raw, crypto.AudienceCredentialProxy)
		if err != nil {
			if errors.Is(err, crypto.ErrExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, "sandbox token expired")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "sandbox token rejected")
		}
		if err := s.tokens.CheckJTI(c.Request().Context(), claims.ID); err != nil {
			if errors.Is(err, crypto.ErrJTINotAllowlisted) {
				return echo.NewHTTPError(http.StatusUnauthorized, "sandbox token jti not allowlisted")
			}
			return err
		}
		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

func tenantClaims(c *echo.Context) *crypto.TenantClaims {
	claims, _ := c.Get(claimsContextKey).(*crypto.TenantClaims)
	return claims
}

// integrationConfig resolves and decrypts one integration block for the
// tenant, returning a 424 error when required fields are absent.
func (s *Server) integrationConfig(ctx context.Context, claims *crypto.TenantClaims, integrationID string) (map[string]interface{}, error) {
	eff, err := s.resolver.Resolve(ctx, claims.OrgID, claims.TeamNodeID)
	if err != nil {
		return nil, fmt.Errorf("resolving effective config: %w", err)
	}
	if missing := s.registry.MissingRequired(eff, integrationID); len(missing) > 0 {
		return nil, echo.NewHTTPError(http.StatusFailedDependency, map[string]interface{}{
			"error":          "integration_not_configured",
			"integration":    integrationID,
			"missing_fields": missing,
		})
	}
	cfg := integration.GetIntegrationConfig(eff, integrationID)
	decrypted, err := s.enc.DecryptDict(cfg)
	if err != nil {
		return nil, fmt.Errorf("decrypting credentials for %s: %w", integrationID, err)
	}
	return decrypted, nil
}

// proxyHandler handles ANY /:provider/*.
func (s *Server) proxyHandler(c *echo.Context) error {
	claims := tenantClaims(c)
	providerName := c.Param("provider")
	provider, ok := LookupProvider(providerName)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown provider: "+providerName)
	}

	cfg, err := s.integrationConfig(c.Request().Context(), claims, provider.Integration)
	if err != nil {
		return err
	}
	base := provider.BaseURL(cfg)
	if base == "" {
		return echo.NewHTTPError(http.StatusFailedDependency, map[string]interface{}{
			"error":          "integration_not_configured",
			"integration":    provider.Integration,
			"missing_fields": []string{"domain"},
		})
	}

	upstreamURL := base + "/" + c.Param("*")
	if q := c.Request().URL.RawQuery; q != "" {
		upstreamURL += "?" + q
	}
	return s.forward(c, claims, provider.Integration, upstreamURL, func(h http.Header) {
		provider.Inject(h, cfg)
	}, nil)
}

// forward sends the request upstream and streams the response back.
// transformBody, when set, replaces the request body.
func (s *Server) forward(c *echo.Context, claims *crypto.TenantClaims, integrationID, upstreamURL string, inject func(http.Header), body io.Reader) error {
	start := time.Now()
	req := c.Request()

	if body == nil {
		body = req.Body
	}
	out, err := http.NewRequestWithContext(req.Context(), req.Method, upstreamURL, body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid upstream url")
	}

	// Copy request headers, dropping the caller's auth and all
	// sandbox/tenant routing headers.
	for name, values := range req.Header {
		if isStrippedHeader(name) {
			continue
		}
		for _, v := range values {
			out.Header.Add(name, v)
		}
	}
	out.Header.Del("Host")
	inject(out.Header)

	resp, err := s.doWithConnectRetry(req.Context(), out, body == req.Body)
	if err != nil {
		s.accessLog(claims, integrationID, req.Method, req.URL.Path, 0, 0, start, err)
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unreachable")
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

	written, copyErr := flushCopy(c.Response(), resp.Body)
	s.accessLog(claims, integrationID, req.Method, req.URL.Path, resp.StatusCode, written, start, copyErr)
	return nil
}

// doWithConnectRetry retries connection errors only. Requests with a
// consumed streaming body cannot be retried.
func (s *Server) doWithConnectRetry(ctx context.Context, req *http.Request, streamingBody bool) (*http.Response, error) {
	if streamingBody && req.Body != nil && req.Method != http.MethodGet {
		return s.http.Do(req)
	}
	var resp *http.Response
	attempt := func() error {
		r, err := s.http.Do(req)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(backoff.WithMaxInterval(connectBackoffCap)),
		maxConnectAttempts-1,
	), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return nil, err
	}
	return resp, nil
}

// flushCopy streams body to w, flushing after every chunk so SSE upstreams
// are not buffered.
func flushCopy(w io.Writer, body io.Reader) (int64, error) {
	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 32*1024)
	var written int64
	for {
		n, err := body.Read(buf)
		if n > 0 {
			wn, werr := w.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, werr
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}

func isStrippedHeader(name string) bool {
	if strings.EqualFold(name, "Authorization") {
		return true
	}
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "x-sandbox-") ||
		strings.HasPrefix(lower, "x-tenant-") ||
		strings.HasPrefix(lower, "x-team-") ||
		isHopByHop(name)
}

func isHopByHop(name string) bool {
	for _, h := range hopByHopHeaders {
		if strings.EqualFold(name, h) {
			return true
		}
	}
	return false
}

// accessLog appends one credential-access audit row per proxied request.
func (s *Server) accessLog(claims *crypto.TenantClaims, integrationID, method, path string, status int, bytes int64, start time.Time, err error) {
	detail := map[string]interface{}{
		"integration":     integrationID,
		"method":          method,
		"path":            path,
		"upstream_status": status,
		"bytes":           bytes,
		"ms":              time.Since(start).Milliseconds(),
		"jti":             claims.ID,
		"run_id":          claims.RunID,
	}
	ev := audit.Event{
		Actor:  "sandbox:" + claims.OrgID + "/" + claims.TeamNodeID,
		Action: audit.ActionCredentialAccess,
		Target: claims.OrgID + "/" + claims.TeamNodeID + "/" + integrationID,
		Detail: detail,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err != nil {
		s.audit.RecordError(ctx, ev, err)
		return
	}
	s.audit.Record(ctx, ev)
}
