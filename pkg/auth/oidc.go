package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/golang-jwt/jwt/v5"
)

// OIDCConfig configures verification of externally issued identity tokens.
type OIDCConfig struct {
	// Enabled turns OIDC verification on (OIDC_ENABLED). Unset defaults to
	// on when JWKSJSON is configured.
	Enabled bool
	// JWKSJSON is the raw JWKS document (OIDC_JWKS_JSON).
	JWKSJSON string
	Issuer   string
	Audience string
	// Claim names carrying the tenant scope.
	OrgIDClaim      string
	TeamNodeIDClaim string
	// AdminGroups lists group values that grant the admin role.
	AdminGroups []string
}

// OIDCClaims are the fields extracted from a verified identity token.
type OIDCClaims struct {
	Subject    string
	Email      string
	OrgID      string
	TeamNodeID string
	Groups     []string
}

// OIDCVerifier verifies RS256 identity tokens against a static JWKS.
type OIDCVerifier struct {
	keys map[string]*rsa.PublicKey
	cfg  OIDCConfig
}

type jwksDoc struct {
	Keys []struct {
		Kty string `json:"kty"`
		Kid string `json:"kid"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

// NewOIDCVerifier parses the JWKS document. Returns nil when no JWKS is
// configured; callers treat a nil verifier as OIDC disabled.
func NewOIDCVerifier(cfg OIDCConfig) (*OIDCVerifier, error) {
	if cfg.JWKSJSON == "" {
		return nil, nil
	}
	var doc jwksDoc
	if err := json.Unmarshal([]byte(cfg.JWKSJSON), &doc); err != nil {
		return nil, fmt.Errorf("parsing JWKS: %w", err)
	}
	keys := make(map[string]*rsa.PublicKey)
	for _, k := range doc.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := parseRSAKey(k.N, k.E)
		if err != nil {
			return nil, fmt.Errorf("parsing JWKS key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return nil, errors.New("JWKS contains no usable RSA keys")
	}
	if cfg.OrgIDClaim == "" {
		cfg.OrgIDClaim = "org_id"
	}
	if cfg.TeamNodeIDClaim == "" {
		cfg.TeamNodeIDClaim = "team_node_id"
	}
	return &OIDCVerifier{keys: keys, cfg: cfg}, nil
}

func parseRSAKey(nB64, eB64 string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nB64)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eB64)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	if e == 0 {
		return nil, errors.New("zero exponent")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}

// Verify checks signature, issuer, audience, and expiry, then extracts the
// tenant claims.
func (v *OIDCVerifier) Verify(tokenString string) (*OIDCClaims, error) {
	if v == nil {
		return nil, NewError(ErrKindInvalidToken, "OIDC not configured")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
	}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}
	if v.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if key, ok := v.keys[kid]; ok {
			return key, nil
		}
		// No kid match: a single-key JWKS still verifies.
		if len(v.keys) == 1 {
			for _, key := range v.keys {
				return key, nil
			}
		}
		return nil, fmt.Errorf("no JWKS key for kid %q", kid)
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewError(ErrKindExpired, "identity token expired")
		}
		return nil, NewError(ErrKindInvalidToken, "identity token rejected: %v", err)
	}

	out := &OIDCClaims{}
	out.Subject, _ = claims["sub"].(string)
	out.Email, _ = claims["email"].(string)
	out.OrgID, _ = claims[v.cfg.OrgIDClaim].(string)
	out.TeamNodeID, _ = claims[v.cfg.TeamNodeIDClaim].(string)
	if raw, ok := claims["groups"].([]interface{}); ok {
		for _, g := range raw {
			if s, ok := g.(string); ok {
				out.Groups = append(out.Groups, s)
			}
		}
	}
	return out, nil
}

// IsAdminGroup reports whether any group matches the configured admin groups.
func (v *OIDCVerifier) IsAdminGroup(groups []string) bool {
	if v == nil {
		return false
	}
	for _, have := range groups {
		for _, admin := range v.cfg.AdminGroups {
			if have == admin {
				return true
			}
		}
	}
	return false
}
