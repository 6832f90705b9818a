package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/pkg/crypto"
)

func TestHasPermission(t *testing.T) {
	admin := &Principal{Permissions: []string{PermAdminAll}}
	assert.True(t, admin.HasPermission(PermProvision))
	assert.True(t, admin.HasPermission(PermTeamWrite))

	orgAdmin := &Principal{Permissions: []string{PermProvision, PermTeamRead}}
	assert.True(t, orgAdmin.HasPermission(PermProvision))
	assert.True(t, orgAdmin.HasPermission(PermProvisionRead), "admin:provision grants admin:provision:read")
	assert.False(t, orgAdmin.HasPermission(PermTeamWrite))

	team := &Principal{Permissions: []string{PermTeamRead}}
	assert.False(t, team.HasPermission(PermProvision))
}

func TestMayInvokeAgent(t *testing.T) {
	team := &Principal{Role: RoleTeam, Permissions: []string{PermAgentInvoke}}
	assert.True(t, team.MayInvokeAgent("investigator"))

	visitor := &Principal{Role: RoleVisitor, Permissions: []string{PermAgentInvoke}}
	assert.True(t, visitor.MayInvokeAgent(PlaygroundAgent))
	assert.False(t, visitor.MayInvokeAgent("investigator"))

	noInvoke := &Principal{Role: RoleTeam, Permissions: []string{PermTeamRead}}
	assert.False(t, noInvoke.MayInvokeAgent("investigator"))
}

func TestAuthenticateSharedToken(t *testing.T) {
	signer, err := crypto.NewTokenSigner("test-signing-secret")
	require.NoError(t, err)
	a := NewAuthenticator(Config{AdminToken: "deploy-admin-secret", TeamAuthMode: AuthModeBoth}, nil, signer, nil)

	t.Run("valid", func(t *testing.T) {
		p, err := a.Authenticate(context.Background(), "deploy-admin-secret")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, p.Role)
		assert.Equal(t, KindSharedToken, p.AuthKind)
		assert.True(t, p.HasPermission(PermProvision))
	})

	t.Run("wrong value", func(t *testing.T) {
		_, err := a.Authenticate(context.Background(), "nope")
		require.Error(t, err)
		assert.Equal(t, ErrKindInvalidToken, KindOf(err))
	})

	t.Run("empty bearer", func(t *testing.T) {
		_, err := a.Authenticate(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, ErrKindMissingToken, KindOf(err))
	})

	t.Run("admin token unset rejects everything", func(t *testing.T) {
		bare := NewAuthenticator(Config{TeamAuthMode: AuthModeBoth}, nil, signer, nil)
		_, err := bare.Authenticate(context.Background(), "anything")
		require.Error(t, err)
	})

	t.Run("oidc-only admin mode disables the shared token", func(t *testing.T) {
		oidcOnly := NewAuthenticator(Config{AdminToken: "deploy-admin-secret", AdminAuthMode: AuthModeOIDC}, nil, signer, nil)
		_, err := oidcOnly.Authenticate(context.Background(), "deploy-admin-secret")
		require.Error(t, err)
		assert.Equal(t, ErrKindInvalidToken, KindOf(err))
	})
}

// jwksForKey builds a single-key JWKS document for the test RSA key.
func jwksForKey(t *testing.T, pub *rsa.PublicKey, kid string) string {
	t.Helper()
	doc := map[string]interface{}{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": kid,
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(raw)
}

func TestOIDCVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cfg := OIDCConfig{
		JWKSJSON:    jwksForKey(t, &key.PublicKey, "k1"),
		Issuer:      "https://idp.example.com",
		Audience:    "incidentfox",
		AdminGroups: []string{"sre-admins"},
	}
	v, err := NewOIDCVerifier(cfg)
	require.NoError(t, err)
	require.NotNil(t, v)

	mint := func(claims jwt.MapClaims) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
		tok.Header["kid"] = "k1"
		signed, err := tok.SignedString(key)
		require.NoError(t, err)
		return signed
	}

	base := jwt.MapClaims{
		"iss":          "https://idp.example.com",
		"aud":          "incidentfox",
		"sub":          "user-42",
		"email":        "dev@example.com",
		"org_id":       "acme",
		"team_node_id": "payments",
		"exp":          time.Now().Add(time.Hour).Unix(),
	}

	t.Run("valid token", func(t *testing.T) {
		claims, err := v.Verify(mint(base))
		require.NoError(t, err)
		assert.Equal(t, "user-42", claims.Subject)
		assert.Equal(t, "acme", claims.OrgID)
		assert.Equal(t, "payments", claims.TeamNodeID)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		bad := jwt.MapClaims{}
		for k, vv := range base {
			bad[k] = vv
		}
		bad["iss"] = "https://evil.example.com"
		_, err := v.Verify(mint(bad))
		require.Error(t, err)
		assert.Equal(t, ErrKindInvalidToken, KindOf(err))
	})

	t.Run("expired", func(t *testing.T) {
		bad := jwt.MapClaims{}
		for k, vv := range base {
			bad[k] = vv
		}
		bad["exp"] = time.Now().Add(-time.Minute).Unix()
		_, err := v.Verify(mint(bad))
		require.Error(t, err)
		assert.Equal(t, ErrKindExpired, KindOf(err))
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		tok := jwt.NewWithClaims(jwt.SigningMethodRS256, base)
		tok.Header["kid"] = "k1"
		signed, err := tok.SignedString(other)
		require.NoError(t, err)
		_, err = v.Verify(signed)
		require.Error(t, err)
	})

	t.Run("admin groups", func(t *testing.T) {
		assert.True(t, v.IsAdminGroup([]string{"devs", "sre-admins"}))
		assert.False(t, v.IsAdminGroup([]string{"devs"}))
	})
}

func TestOIDCVerifierDisabled(t *testing.T) {
	v, err := NewOIDCVerifier(OIDCConfig{})
	require.NoError(t, err)
	assert.Nil(t, v)
	_, err = v.Verify("whatever")
	require.Error(t, err)
}
