package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/incidentfox/incidentfox/pkg/crypto"
	"github.com/incidentfox/incidentfox/pkg/token"
)

// Auth modes (ADMIN_AUTH_MODE, TEAM_AUTH_MODE).
const (
	AuthModeBoth  = "both"
	AuthModeToken = "token"
	AuthModeOIDC  = "oidc"
)

// Config holds the authenticator settings.
type Config struct {
	// AdminToken is the shared deployment admin bearer (ADMIN_TOKEN).
	AdminToken string
	// AdminAuthMode selects which admin credentials are accepted.
	AdminAuthMode string
	// TeamAuthMode selects which team credentials are accepted.
	TeamAuthMode string
	// TeamOIDCWriteEnabled grants team:write to team-OIDC principals.
	TeamOIDCWriteEnabled bool
	OIDC                 OIDCConfig
}

// LoadConfigFromEnv reads the auth settings from the environment.
func LoadConfigFromEnv() Config {
	cfg := Config{
		AdminToken:           os.Getenv("ADMIN_TOKEN"),
		AdminAuthMode:        os.Getenv("ADMIN_AUTH_MODE"),
		TeamAuthMode:         os.Getenv("TEAM_AUTH_MODE"),
		TeamOIDCWriteEnabled: os.Getenv("TEAM_OIDC_WRITE_ENABLED") == "true",
		OIDC: OIDCConfig{
			JWKSJSON:        os.Getenv("OIDC_JWKS_JSON"),
			Issuer:          os.Getenv("OIDC_ISSUER"),
			Audience:        os.Getenv("OIDC_AUDIENCE"),
			OrgIDClaim:      os.Getenv("OIDC_ORG_ID_CLAIM"),
			TeamNodeIDClaim: os.Getenv("OIDC_TEAM_NODE_ID_CLAIM"),
		},
	}
	if cfg.AdminAuthMode == "" {
		cfg.AdminAuthMode = AuthModeBoth
	}
	if cfg.TeamAuthMode == "" {
		cfg.TeamAuthMode = AuthModeBoth
	}
	// OIDC_ENABLED unset keeps the historical behavior: on when a JWKS
	// document is configured.
	switch os.Getenv("OIDC_ENABLED") {
	case "true":
		cfg.OIDC.Enabled = true
	case "":
		cfg.OIDC.Enabled = cfg.OIDC.JWKSJSON != ""
	}
	if groups := os.Getenv("OIDC_ADMIN_GROUPS"); groups != "" {
		for _, g := range strings.Split(groups, ",") {
			if g = strings.TrimSpace(g); g != "" {
				cfg.OIDC.AdminGroups = append(cfg.OIDC.AdminGroups, g)
			}
		}
	}
	return cfg
}

// Authenticator turns bearer strings into principals.
type Authenticator struct {
	cfg    Config
	tokens *token.Service
	signer *crypto.TokenSigner
	oidc   *OIDCVerifier
	logger *slog.Logger
}

// NewAuthenticator creates the authenticator. oidc may be nil (OIDC disabled).
func NewAuthenticator(cfg Config, tokens *token.Service, signer *crypto.TokenSigner, oidc *OIDCVerifier) *Authenticator {
	return &Authenticator{
		cfg:    cfg,
		tokens: tokens,
		signer: signer,
		oidc:   oidc,
		logger: slog.Default().With("component", "auth"),
	}
}

// Authenticate classifies a bearer by dot count and resolves its principal:
// 0 dots is the shared admin token, 1 dot an opaque org or team token,
// 2 dots a JWT (impersonation, visitor, or OIDC identity).
func (a *Authenticator) Authenticate(ctx context.Context, bearer string) (*Principal, error) {
	if bearer == "" {
		return nil, NewError(ErrKindMissingToken, "authorization required")
	}
	switch strings.Count(bearer, ".") {
	case 0:
		return a.authenticateShared(bearer)
	case 1:
		return a.authenticateOpaque(ctx, bearer)
	default:
		return a.authenticateJWT(ctx, bearer)
	}
}

func (a *Authenticator) authenticateShared(bearer string) (*Principal, error) {
	if a.cfg.AdminAuthMode == AuthModeOIDC {
		return nil, NewError(ErrKindInvalidToken, "shared admin token disabled")
	}
	if a.cfg.AdminToken == "" ||
		subtle.ConstantTimeCompare([]byte(bearer), []byte(a.cfg.AdminToken)) != 1 {
		return nil, NewError(ErrKindInvalidToken, "unknown token")
	}
	return &Principal{
		Role:        RoleAdmin,
		AuthKind:    KindSharedToken,
		Subject:     "admin",
		Permissions: []string{PermAdminAll},
		CanWrite:    true,
	}, nil
}

func (a *Authenticator) authenticateOpaque(ctx context.Context, bearer string) (*Principal, error) {
	// Org-admin tokens and team tokens share the wire shape; org wins.
	orgID, err := a.tokens.VerifyOrgAdminToken(ctx, bearer)
	if err == nil {
		return &Principal{
			Role:     RoleOrgAdmin,
			AuthKind: KindOrgToken,
			OrgID:    orgID,
			Subject:  "org-admin:" + orgID,
			Permissions: []string{
				PermProvision, PermProvisionRead, PermAdminAgentRun,
				PermTeamRead, PermTeamWrite, PermAgentInvoke,
			},
			CanWrite: true,
		}, nil
	}
	if errors.Is(err, token.ErrTokenRevoked) {
		return nil, NewError(ErrKindInvalidToken, "token revoked")
	}
	if !errors.Is(err, token.ErrInvalidToken) {
		return nil, err
	}

	if a.cfg.TeamAuthMode == AuthModeOIDC {
		return nil, NewError(ErrKindInvalidToken, "opaque team tokens disabled")
	}
	orgID, teamNodeID, err := a.tokens.VerifyTeamToken(ctx, bearer)
	if err != nil {
		if errors.Is(err, token.ErrTokenRevoked) {
			return nil, NewError(ErrKindInvalidToken, "token revoked")
		}
		if errors.Is(err, token.ErrInvalidToken) {
			return nil, NewError(ErrKindInvalidToken, "unknown token")
		}
		return nil, err
	}
	return &Principal{
		Role:        RoleTeam,
		AuthKind:    KindTeamToken,
		OrgID:       orgID,
		TeamNodeID:  teamNodeID,
		Subject:     "team:" + orgID + "/" + teamNodeID,
		Permissions: []string{PermTeamRead, PermTeamWrite, PermAgentInvoke},
		CanWrite:    true,
	}, nil
}

func (a *Authenticator) authenticateJWT(ctx context.Context, bearer string) (*Principal, error) {
	// First-party HS256 tokens: impersonation and visitor.
	if claims, err := a.signer.Verify(bearer, a.signer.ImpersonationAudience()); err == nil {
		if err := a.tokens.CheckJTI(ctx, claims.ID); err != nil {
			if errors.Is(err, crypto.ErrJTINotAllowlisted) {
				return nil, NewError(ErrKindJTINotAllowlisted, "jti %q not allowlisted", claims.ID)
			}
			return nil, err
		}
		if session, ok := strings.CutPrefix(claims.Subject, "visitor:"); ok {
			return &Principal{
				Role:             RoleVisitor,
				AuthKind:         KindVisitor,
				OrgID:            claims.OrgID,
				TeamNodeID:       claims.TeamNodeID,
				Subject:          claims.Subject,
				Permissions:      []string{PermTeamRead, PermAgentInvoke},
				VisitorSessionID: session,
			}, nil
		}
		return &Principal{
			Role:        RoleTeam,
			AuthKind:    KindImpersonation,
			OrgID:       claims.OrgID,
			TeamNodeID:  claims.TeamNodeID,
			Subject:     claims.Subject,
			Permissions: []string{PermTeamRead, PermAgentInvoke},
		}, nil
	} else if errors.Is(err, crypto.ErrExpired) {
		return nil, NewError(ErrKindExpired, "token expired")
	}

	if a.oidc == nil {
		return nil, NewError(ErrKindInvalidToken, "token rejected")
	}
	claims, err := a.oidc.Verify(bearer)
	if err != nil {
		return nil, err
	}

	if a.oidc.IsAdminGroup(claims.Groups) && a.cfg.AdminAuthMode != AuthModeToken {
		return &Principal{
			Role:        RoleAdmin,
			AuthKind:    KindOIDC,
			Subject:     claims.Subject,
			Email:       claims.Email,
			Permissions: []string{PermAdminAll},
			CanWrite:    true,
		}, nil
	}

	if a.cfg.TeamAuthMode == AuthModeToken {
		return nil, NewError(ErrKindInvalidToken, "team OIDC disabled")
	}
	if claims.OrgID == "" || claims.TeamNodeID == "" {
		return nil, NewError(ErrKindScopeMissing, "identity token carries no org/team scope")
	}
	perms := []string{PermTeamRead, PermAgentInvoke}
	if a.cfg.TeamOIDCWriteEnabled {
		perms = append(perms, PermTeamWrite)
	}
	return &Principal{
		Role:        RoleTeam,
		AuthKind:    KindOIDC,
		OrgID:       claims.OrgID,
		TeamNodeID:  claims.TeamNodeID,
		Subject:     claims.Subject,
		Email:       claims.Email,
		Permissions: perms,
		CanWrite:    a.cfg.TeamOIDCWriteEnabled,
	}, nil
}
