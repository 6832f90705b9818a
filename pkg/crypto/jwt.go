package crypto

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Audiences minted by the control plane.
const (
	// AudienceAgentRuntime is carried by impersonation JWTs.
	AudienceAgentRuntime = "agent-runtime"
	// AudienceCredentialProxy is carried by sandbox JWTs.
	AudienceCredentialProxy = "credential-proxy"

	// DefaultIssuer is the iss claim on every minted token.
	DefaultIssuer = "config-service"

	// MaxImpersonationTTL caps impersonation token lifetime.
	MaxImpersonationTTL = 10 * time.Minute
	// MaxSandboxTTL caps sandbox token lifetime.
	MaxSandboxTTL = 15 * time.Minute
)

// TenantClaims are the claims carried by every control-plane JWT. The
// (OrgID, TeamNodeID) pair is the sole source of tenant identity for the
// credential proxy.
type TenantClaims struct {
	OrgID      string `json:"org_id"`
	TeamNodeID string `json:"team_node_id"`
	RunID      string `json:"run_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenSigner mints and verifies HS256 tenant JWTs over a service-private secret.
type TokenSigner struct {
	secret           []byte
	issuer           string
	impersonationAud string
	impersonationTTL time.Duration
}

// NewTokenSigner creates a signer from the shared IMPERSONATION_JWT_SECRET.
// The impersonation audience and lifetime ceiling honor
// IMPERSONATION_JWT_AUDIENCE and IMPERSONATION_TOKEN_TTL_SECONDS when set.
func NewTokenSigner(secret string) (*TokenSigner, error) {
	if secret == "" {
		return nil, ErrMissingKey
	}
	s := &TokenSigner{
		secret:           []byte(secret),
		issuer:           DefaultIssuer,
		impersonationAud: AudienceAgentRuntime,
		impersonationTTL: MaxImpersonationTTL,
	}
	if aud := os.Getenv("IMPERSONATION_JWT_AUDIENCE"); aud != "" {
		s.impersonationAud = aud
	}
	if raw := os.Getenv("IMPERSONATION_TOKEN_TTL_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttl := time.Duration(n) * time.Second
			if ttl > MaxImpersonationTTL {
				ttl = MaxImpersonationTTL
			}
			s.impersonationTTL = ttl
		}
	}
	return s, nil
}

// ImpersonationAudience is the aud claim minted onto impersonation JWTs.
func (s *TokenSigner) ImpersonationAudience() string {
	return s.impersonationAud
}

// MintImpersonation mints a short-lived read-only team-scoped JWT for the
// agent runtime. Returns the compact token and its jti (for DB allowlisting).
// A non-positive ttl takes the configured ceiling.
func (s *TokenSigner) MintImpersonation(orgID, teamNodeID, subject string, ttl time.Duration) (string, string, error) {
	if ttl <= 0 || ttl > s.impersonationTTL {
		ttl = s.impersonationTTL
	}
	return s.mint(orgID, teamNodeID, subject, "", s.impersonationAud, ttl)
}

// MintSandbox mints the JWT a sandbox presents to the credential proxy.
func (s *TokenSigner) MintSandbox(orgID, teamNodeID, runID string, ttl time.Duration) (string, string, error) {
	if ttl <= 0 || ttl > MaxSandboxTTL {
		ttl = MaxSandboxTTL
	}
	return s.mint(orgID, teamNodeID, "sandbox", runID, AudienceCredentialProxy, ttl)
}

func (s *TokenSigner) mint(orgID, teamNodeID, subject, runID, audience string, ttl time.Duration) (string, string, error) {
	now := time.Now()
	jti := uuid.NewString()
	claims := &TenantClaims{
		OrgID:      orgID,
		TeamNodeID: teamNodeID,
		RunID:      runID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   subject,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}
	return signed, jti, nil
}

// Verify parses and validates a compact JWT for the given audience.
// Expiry and signature failures map to the package sentinels.
func (s *TokenSigner) Verify(tokenString, audience string) (*TenantClaims, error) {
	claims := &TenantClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return s.secret, nil
		},
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, ErrWrongAudience
		default:
			return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
		}
	}
	if claims.OrgID == "" || claims.TeamNodeID == "" {
		return nil, fmt.Errorf("%w: missing tenant claims", ErrBadSignature)
	}
	return claims, nil
}
