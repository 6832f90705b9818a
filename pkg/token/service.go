// Package token manages opaque bearer tokens (team and org-admin) and the
// impersonation/sandbox JWT lifecycle. Opaque tokens are "<id>.<secret>" on
// the wire; only the peppered HMAC of the secret is stored.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/incidentfox/incidentfox/ent"
	"github.com/incidentfox/incidentfox/ent/impersonationjti"
	"github.com/incidentfox/incidentfox/ent/orgadmintoken"
	"github.com/incidentfox/incidentfox/ent/teamtoken"
	"github.com/incidentfox/incidentfox/ent/tokenaudit"
	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/crypto"
)

var (
	// ErrInvalidToken is returned for malformed, unknown, or hash-mismatched
	// opaque tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenRevoked is returned when an otherwise valid token has been revoked.
	ErrTokenRevoked = errors.New("token revoked")
)

// Config controls the JTI allowlist behavior.
type Config struct {
	// JTILogging records every minted JWT id in the allowlist table.
	JTILogging bool
	// JTIRequire rejects JWTs whose id has no allowlist row.
	JTIRequire bool
}

// Service issues, rotates, revokes, and verifies tokens.
type Service struct {
	client *ent.Client
	signer *crypto.TokenSigner
	pepper string
	cfg    Config
	audit  *audit.Service
	logger *slog.Logger
}

// NewService creates the token service. pepper is the HMAC pepper for opaque
// token hashing.
func NewService(client *ent.Client, signer *crypto.TokenSigner, pepper string, cfg Config, auditSvc *audit.Service) *Service {
	return &Service{
		client: client,
		signer: signer,
		pepper: pepper,
		cfg:    cfg,
		audit:  auditSvc,
		logger: slog.Default().With("component", "token"),
	}
}

func newSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// SplitOpaque splits a "<id>.<secret>" bearer into its parts.
func SplitOpaque(bearer string) (id, secret string, ok bool) {
	id, secret, ok = strings.Cut(bearer, ".")
	if !ok || id == "" || secret == "" {
		return "", "", false
	}
	return id, secret, true
}

// IssueTeamToken mints a new opaque team token. The full "<id>.<secret>"
// value is returned exactly once; it cannot be recovered later.
func (s *Service) IssueTeamToken(ctx context.Context, orgID, teamNodeID, actor string) (string, error) {
	secret, err := newSecret()
	if err != nil {
		return "", err
	}
	id := "tt_" + uuid.NewString()
	if _, err := s.client.TeamToken.Create().
		SetID(id).
		SetOrgID(orgID).
		SetTeamNodeID(teamNodeID).
		SetTokenHash(crypto.HashToken(secret, s.pepper)).
		Save(ctx); err != nil {
		return "", fmt.Errorf("storing team token: %w", err)
	}
	s.recordTokenAudit(ctx, orgID, teamNodeID, id, tokenaudit.ActionIssued, actor)
	s.audit.Record(ctx, audit.Event{
		Actor:  actor,
		Action: audit.ActionTokenIssue,
		Target: orgID + "/" + teamNodeID,
		Detail: map[string]interface{}{"token_id": id, "kind": "team"},
	})
	return id + "." + secret, nil
}

// RotateTeamToken revokes the team's active tokens and issues a fresh one.
func (s *Service) RotateTeamToken(ctx context.Context, orgID, teamNodeID, actor string) (string, error) {
	now := time.Now()
	revoked, err := s.client.TeamToken.Update().
		Where(
			teamtoken.OrgID(orgID),
			teamtoken.TeamNodeID(teamNodeID),
			teamtoken.RevokedAtIsNil(),
		).
		SetRevokedAt(now).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("revoking prior team tokens: %w", err)
	}
	s.logger.Info("Rotated team token", "org_id", orgID, "team_node_id", teamNodeID, "revoked", revoked)
	bearer, err := s.IssueTeamToken(ctx, orgID, teamNodeID, actor)
	if err != nil {
		return "", err
	}
	id, _, _ := SplitOpaque(bearer)
	s.recordTokenAudit(ctx, orgID, teamNodeID, id, tokenaudit.ActionRotated, actor)
	return bearer, nil
}

// RevokeTeamToken revokes a single team token by id.
func (s *Service) RevokeTeamToken(ctx context.Context, orgID, tokenID, actor string) error {
	n, err := s.client.TeamToken.Update().
		Where(
			teamtoken.ID(tokenID),
			teamtoken.OrgID(orgID),
			teamtoken.RevokedAtIsNil(),
		).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInvalidToken
	}
	s.recordTokenAudit(ctx, orgID, "", tokenID, tokenaudit.ActionRevoked, actor)
	s.audit.Record(ctx, audit.Event{
		Actor:  actor,
		Action: audit.ActionTokenRevoke,
		Target: orgID,
		Detail: map[string]interface{}{"token_id": tokenID, "kind": "team"},
	})
	return nil
}

// VerifyTeamToken resolves a "<id>.<secret>" bearer to its (org, team) and
// bumps last_used_at. The hash comparison is constant time.
func (s *Service) VerifyTeamToken(ctx context.Context, bearer string) (orgID, teamNodeID string, err error) {
	id, secret, ok := SplitOpaque(bearer)
	if !ok {
		return "", "", ErrInvalidToken
	}
	row, err := s.client.TeamToken.Query().
		Where(teamtoken.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", "", ErrInvalidToken
		}
		return "", "", err
	}
	if !crypto.VerifyToken(secret, row.TokenHash, s.pepper) {
		return "", "", ErrInvalidToken
	}
	if row.RevokedAt != nil {
		return "", "", ErrTokenRevoked
	}
	// Best effort; a failed timestamp bump must not fail auth.
	if err := s.client.TeamToken.UpdateOneID(id).
		SetLastUsedAt(time.Now()).
		Exec(ctx); err != nil {
		s.logger.Warn("Failed to bump token last_used_at", "token_id", id, "error", err)
	}
	return row.OrgID, row.TeamNodeID, nil
}

// IssueOrgAdminToken mints a new opaque org-admin token.
func (s *Service) IssueOrgAdminToken(ctx context.Context, orgID, actor string) (string, error) {
	secret, err := newSecret()
	if err != nil {
		return "", err
	}
	id := "ot_" + uuid.NewString()
	if _, err := s.client.OrgAdminToken.Create().
		SetID(id).
		SetOrgID(orgID).
		SetTokenHash(crypto.HashToken(secret, s.pepper)).
		Save(ctx); err != nil {
		return "", fmt.Errorf("storing org admin token: %w", err)
	}
	s.recordTokenAudit(ctx, orgID, "", id, tokenaudit.ActionIssued, actor)
	s.audit.Record(ctx, audit.Event{
		Actor:  actor,
		Action: audit.ActionTokenIssue,
		Target: orgID,
		Detail: map[string]interface{}{"token_id": id, "kind": "org_admin"},
	})
	return id + "." + secret, nil
}

// RevokeOrgAdminToken revokes a single org-admin token by id.
func (s *Service) RevokeOrgAdminToken(ctx context.Context, orgID, tokenID, actor string) error {
	n, err := s.client.OrgAdminToken.Update().
		Where(
			orgadmintoken.ID(tokenID),
			orgadmintoken.OrgID(orgID),
			orgadmintoken.RevokedAtIsNil(),
		).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInvalidToken
	}
	s.recordTokenAudit(ctx, orgID, "", tokenID, tokenaudit.ActionRevoked, actor)
	return nil
}

// VerifyOrgAdminToken resolves a "<id>.<secret>" bearer to its org.
func (s *Service) VerifyOrgAdminToken(ctx context.Context, bearer string) (orgID string, err error) {
	id, secret, ok := SplitOpaque(bearer)
	if !ok {
		return "", ErrInvalidToken
	}
	row, err := s.client.OrgAdminToken.Query().
		Where(orgadmintoken.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if !crypto.VerifyToken(secret, row.TokenHash, s.pepper) {
		return "", ErrInvalidToken
	}
	if row.RevokedAt != nil {
		return "", ErrTokenRevoked
	}
	if err := s.client.OrgAdminToken.UpdateOneID(id).
		SetLastUsedAt(time.Now()).
		Exec(ctx); err != nil {
		s.logger.Warn("Failed to bump token last_used_at", "token_id", id, "error", err)
	}
	return row.OrgID, nil
}

// MintImpersonation mints a short-lived impersonation JWT for (org, team) and
// allowlists its jti when JTI logging is enabled.
func (s *Service) MintImpersonation(ctx context.Context, orgID, teamNodeID, subject string, ttl time.Duration) (string, error) {
	signed, jti, err := s.signer.MintImpersonation(orgID, teamNodeID, subject, ttl)
	if err != nil {
		return "", err
	}
	if err := s.allowlistJTI(ctx, jti, orgID, teamNodeID, ttl); err != nil {
		return "", err
	}
	s.audit.Record(ctx, audit.Event{
		Actor:  subject,
		Action: audit.ActionImpersonate,
		Target: orgID + "/" + teamNodeID,
		Detail: map[string]interface{}{"jti": jti, "ttl_seconds": int(ttl.Seconds())},
	})
	return signed, nil
}

// MintSandbox mints a short-lived sandbox JWT carrying the run id.
func (s *Service) MintSandbox(ctx context.Context, orgID, teamNodeID, runID string, ttl time.Duration) (string, error) {
	signed, jti, err := s.signer.MintSandbox(orgID, teamNodeID, runID, ttl)
	if err != nil {
		return "", err
	}
	if err := s.allowlistJTI(ctx, jti, orgID, teamNodeID, ttl); err != nil {
		return "", err
	}
	return signed, nil
}

func (s *Service) allowlistJTI(ctx context.Context, jti, orgID, teamNodeID string, ttl time.Duration) error {
	if !s.cfg.JTILogging {
		return nil
	}
	if err := s.client.ImpersonationJTI.Create().
		SetID(jti).
		SetOrgID(orgID).
		SetTeamNodeID(teamNodeID).
		SetExpiresAt(time.Now().Add(ttl)).
		Exec(ctx); err != nil {
		return fmt.Errorf("allowlisting jti: %w", err)
	}
	return nil
}

// CheckJTI enforces the allowlist: when JTI require is on, a JWT whose id
// has no row fails with ErrJTINotAllowlisted.
func (s *Service) CheckJTI(ctx context.Context, jti string) error {
	if s == nil || !s.cfg.JTIRequire {
		return nil
	}
	exists, err := s.client.ImpersonationJTI.Query().
		Where(impersonationjti.ID(jti)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return crypto.ErrJTINotAllowlisted
	}
	return nil
}

// PurgeExpiredJTIs removes allowlist rows past their expiry.
func (s *Service) PurgeExpiredJTIs(ctx context.Context) (int, error) {
	return s.client.ImpersonationJTI.Delete().
		Where(impersonationjti.ExpiresAtLT(time.Now())).
		Exec(ctx)
}

func (s *Service) recordTokenAudit(ctx context.Context, orgID, teamNodeID, tokenID string, action tokenaudit.Action, actor string) {
	builder := s.client.TokenAudit.Create().
		SetID(uuid.NewString()).
		SetOrgID(orgID).
		SetTokenID(tokenID).
		SetAction(action).
		SetActor(actor)
	if teamNodeID != "" {
		builder.SetTeamNodeID(teamNodeID)
	}
	if err := builder.Exec(ctx); err != nil {
		s.logger.Error("Failed to append token audit row",
			"token_id", tokenID, "action", action, "error", err)
	}
}
