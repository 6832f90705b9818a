// Package nodestore owns the tenant hierarchy: org/team nodes, their
// configuration documents with versioned history, and the routing-key index
// derived from those documents.
package nodestore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/incidentfox/incidentfox/ent"
	"github.com/incidentfox/incidentfox/ent/nodeconfig"
	"github.com/incidentfox/incidentfox/ent/nodeconfighistory"
	"github.com/incidentfox/incidentfox/ent/orgnode"
	"github.com/incidentfox/incidentfox/ent/routingkey"
	"github.com/incidentfox/incidentfox/ent/teamtoken"
	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/crypto"
)

// maxDepth bounds the ancestor walk; the tree is expected to be shallow
// (org → sub-team → team) but a corrupted parent pointer must not loop.
const maxDepth = 16

// Invalidator receives cache-invalidation callbacks on config writes.
type Invalidator interface {
	InvalidateOrg(orgID string)
}

// Service is the node store.
type Service struct {
	client      *ent.Client
	enc         *crypto.Encryptor
	audit       *audit.Service
	invalidator Invalidator
	logger      *slog.Logger
}

// NewService creates the node store service.
func NewService(client *ent.Client, enc *crypto.Encryptor, auditSvc *audit.Service) *Service {
	return &Service{
		client: client,
		enc:    enc,
		audit:  auditSvc,
		logger: slog.Default().With("component", "nodestore"),
	}
}

// SetInvalidator wires the effective-config cache invalidation callback.
func (s *Service) SetInvalidator(inv Invalidator) {
	s.invalidator = inv
}

func (s *Service) invalidate(orgID string) {
	if s.invalidator != nil {
		s.invalidator.InvalidateOrg(orgID)
	}
}

// CreateOrg creates an org root node (node_id == org_id) with an empty config.
func (s *Service) CreateOrg(ctx context.Context, orgID, name, actor string) (*ent.OrgNode, error) {
	node, err := s.createNode(ctx, orgID, orgID, "", orgnode.KindOrg, name)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, audit.Event{
		Actor:  actor,
		Action: audit.ActionNodeCreate,
		Target: orgID + "/" + orgID,
		Detail: map[string]interface{}{"kind": "org", "name": name},
	})
	return node, nil
}

// CreateNode creates a child node under an existing parent in the same org.
func (s *Service) CreateNode(ctx context.Context, orgID, nodeID, parentNodeID string, kind orgnode.Kind, name, actor string) (*ent.OrgNode, error) {
	if kind == orgnode.KindOrg {
		return nil, fmt.Errorf("%w: org roots are created via CreateOrg", ErrAlreadyExists)
	}
	node, err := s.createNode(ctx, orgID, nodeID, parentNodeID, kind, name)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, audit.Event{
		Actor:  actor,
		Action: audit.ActionNodeCreate,
		Target: orgID + "/" + nodeID,
		Detail: map[string]interface{}{"kind": string(kind), "parent": parentNodeID, "name": name},
	})
	return node, nil
}

func (s *Service) createNode(ctx context.Context, orgID, nodeID, parentNodeID string, kind orgnode.Kind, name string) (*ent.OrgNode, error) {
	depth := 0
	if kind != orgnode.KindOrg {
		if parentNodeID == "" || parentNodeID == nodeID {
			return nil, ErrParentNotFound
		}
		parent, err := s.GetNode(ctx, orgID, parentNodeID)
		if err != nil {
			if ent.IsNotFound(err) || err == ErrNotFound {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		depth = parent.Depth + 1
		if depth >= maxDepth {
			return nil, fmt.Errorf("node depth limit exceeded under %s/%s", orgID, parentNodeID)
		}
	}

	builder := s.client.OrgNode.Create().
		SetID(uuid.NewString()).
		SetOrgID(orgID).
		SetNodeID(nodeID).
		SetKind(kind).
		SetName(name).
		SetDepth(depth)
	if parentNodeID != "" {
		builder.SetParentID(parentNodeID)
	}

	node, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("creating node %s/%s: %w", orgID, nodeID, err)
	}
	return node, nil
}

// GetNode returns the node for (orgID, nodeID).
func (s *Service) GetNode(ctx context.Context, orgID, nodeID string) (*ent.OrgNode, error) {
	node, err := s.client.OrgNode.Query().
		Where(orgnode.OrgID(orgID), orgnode.NodeID(nodeID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return node, nil
}

// DeleteNode removes a leaf node together with its config documents, history,
// routing keys, and team tokens.
func (s *Service) DeleteNode(ctx context.Context, orgID, nodeID, actor string) error {
	children, err := s.client.OrgNode.Query().
		Where(orgnode.OrgID(orgID), orgnode.ParentID(nodeID)).
		Count(ctx)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrHasChildren
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.NodeConfig.Delete().
		Where(nodeconfig.OrgID(orgID), nodeconfig.NodeID(nodeID)).Exec(ctx); err != nil {
		return err
	}
	if _, err := tx.NodeConfigHistory.Delete().
		Where(nodeconfighistory.OrgID(orgID), nodeconfighistory.NodeID(nodeID)).Exec(ctx); err != nil {
		return err
	}
	if _, err := tx.RoutingKey.Delete().
		Where(routingkey.OrgID(orgID), routingkey.TeamNodeID(nodeID)).Exec(ctx); err != nil {
		return err
	}
	if _, err := tx.TeamToken.Delete().
		Where(teamtoken.OrgID(orgID), teamtoken.TeamNodeID(nodeID)).Exec(ctx); err != nil {
		return err
	}
	n, err := tx.OrgNode.Delete().
		Where(orgnode.OrgID(orgID), orgnode.NodeID(nodeID)).Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	s.invalidate(orgID)
	s.audit.Record(ctx, audit.Event{
		Actor:  actor,
		Action: audit.ActionNodeDelete,
		Target: orgID + "/" + nodeID,
	})
	return nil
}

// GetConfig returns the current config document and version for a node.
// A node without a config row resolves to an empty document at version 0.
func (s *Service) GetConfig(ctx context.Context, orgID, nodeID string) (map[string]interface{}, int, error) {
	row, err := s.client.NodeConfig.Query().
		Where(nodeconfig.OrgID(orgID), nodeconfig.NodeID(nodeID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return map[string]interface{}{}, 0, nil
		}
		return nil, 0, err
	}
	return row.Config, row.Version, nil
}

// PatchConfig applies an RFC-7396 merge patch to the node's config inside a
// transaction: immutable keys checked, secret fields encrypted, version
// bumped with an optimistic check, history row appended, and routing keys
// synced. On success the effective-config cache is invalidated for the org.
func (s *Service) PatchConfig(ctx context.Context, orgID, nodeID string, patch map[string]interface{}, actor string) (*ent.NodeConfig, error) {
	if _, err := s.GetNode(ctx, orgID, nodeID); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.NodeConfig.Query().
		Where(nodeconfig.OrgID(orgID), nodeconfig.NodeID(nodeID)).
		Only(ctx)
	currentDoc := map[string]interface{}{}
	currentVersion := 0
	switch {
	case err == nil:
		currentDoc = current.Config
		currentVersion = current.Version
	case ent.IsNotFound(err):
		current = nil
	default:
		return nil, err
	}

	if err := CheckImmutable(currentDoc, patch); err != nil {
		return nil, err
	}

	merged := ApplyPatch(currentDoc, patch)
	if s.enc != nil {
		merged, err = s.enc.EncryptDict(merged)
		if err != nil {
			return nil, fmt.Errorf("encrypting config secrets: %w", err)
		}
	}

	newVersion := currentVersion + 1
	var row *ent.NodeConfig
	if current == nil {
		row, err = tx.NodeConfig.Create().
			SetID(uuid.NewString()).
			SetOrgID(orgID).
			SetNodeID(nodeID).
			SetConfig(merged).
			SetVersion(newVersion).
			SetUpdatedBy(actor).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating config row: %w", err)
		}
	} else {
		n, err := tx.NodeConfig.Update().
			Where(nodeconfig.ID(current.ID), nodeconfig.Version(currentVersion)).
			SetConfig(merged).
			SetVersion(newVersion).
			SetUpdatedBy(actor).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("updating config row: %w", err)
		}
		if n == 0 {
			return nil, ErrConcurrentModification
		}
		row, err = tx.NodeConfig.Get(ctx, current.ID)
		if err != nil {
			return nil, err
		}
	}

	if _, err := tx.NodeConfigHistory.Create().
		SetID(uuid.NewString()).
		SetOrgID(orgID).
		SetNodeID(nodeID).
		SetConfig(merged).
		SetVersion(newVersion).
		SetUpdatedBy(actor).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("appending config history: %w", err)
	}

	if err := s.syncRoutingKeys(ctx, tx, orgID, nodeID, merged); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit config patch: %w", err)
	}

	s.invalidate(orgID)
	s.audit.Record(ctx, audit.Event{
		Actor:  actor,
		Action: audit.ActionConfigWrite,
		Target: orgID + "/" + nodeID,
		Detail: map[string]interface{}{"version": newVersion},
	})
	return row, nil
}

// syncRoutingKeys reconciles the routing_keys index with the routing keys
// declared in the node's config. A key already claimed by a different team
// fails the whole patch with the per-source conflict code.
func (s *Service) syncRoutingKeys(ctx context.Context, tx *ent.Tx, orgID, nodeID string, config map[string]interface{}) error {
	desired := ExtractRoutingKeys(config)

	existing, err := tx.RoutingKey.Query().
		Where(routingkey.OrgID(orgID), routingkey.TeamNodeID(nodeID)).
		All(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]*ent.RoutingKey)
	for _, rk := range existing {
		have[string(rk.Source)+"\x00"+rk.Key] = rk
	}

	want := make(map[string]struct{})
	for source, keys := range desired {
		for _, key := range keys {
			want[source+"\x00"+key] = struct{}{}
			if _, ok := have[source+"\x00"+key]; ok {
				continue
			}

			claimed, err := tx.RoutingKey.Query().
				Where(routingkey.SourceEQ(routingkey.Source(source)), routingkey.Key(key)).
				Only(ctx)
			if err == nil {
				if claimed.OrgID != orgID || claimed.TeamNodeID != nodeID {
					return &RoutingConflictError{Source: source, Key: key, Code: ConflictCode(source)}
				}
				continue
			}
			if !ent.IsNotFound(err) {
				return err
			}

			if _, err := tx.RoutingKey.Create().
				SetID(uuid.NewString()).
				SetSource(routingkey.Source(source)).
				SetKey(key).
				SetOrgID(orgID).
				SetTeamNodeID(nodeID).
				Save(ctx); err != nil {
				if ent.IsConstraintError(err) {
					// Lost the race to another writer.
					return &RoutingConflictError{Source: source, Key: key, Code: ConflictCode(source)}
				}
				return err
			}
		}
	}

	// Drop keys this node no longer declares.
	for mapKey, rk := range have {
		if _, ok := want[mapKey]; !ok {
			if err := tx.RoutingKey.DeleteOne(rk).Exec(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// AncestorConfigs returns the configs along the ancestor chain of
// (orgID, nodeID), org root first. Implements effective.ChainLoader.
func (s *Service) AncestorConfigs(ctx context.Context, orgID, nodeID string) ([]map[string]interface{}, error) {
	node, err := s.GetNode(ctx, orgID, nodeID)
	if err != nil {
		return nil, err
	}

	// Walk up to the org root; the chain is collected team-first.
	chain := []*ent.OrgNode{node}
	for i := 0; node.ParentID != nil && *node.ParentID != ""; i++ {
		if i >= maxDepth {
			return nil, fmt.Errorf("ancestor chain of %s/%s exceeds depth limit", orgID, nodeID)
		}
		parent, err := s.GetNode(ctx, orgID, *node.ParentID)
		if err != nil {
			return nil, fmt.Errorf("resolving parent %q of %s/%s: %w", *node.ParentID, orgID, nodeID, err)
		}
		chain = append(chain, parent)
		node = parent
	}

	// Reverse into org-first order and load configs.
	configs := make([]map[string]interface{}, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		cfg, _, err := s.GetConfig(ctx, orgID, chain[i].NodeID)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// LookupRouting resolves an external routing key to its owning tenant.
func (s *Service) LookupRouting(ctx context.Context, source, key string) (orgID, teamNodeID string, err error) {
	rk, err := s.client.RoutingKey.Query().
		Where(routingkey.SourceEQ(routingkey.Source(source)), routingkey.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", "", ErrNotFound
		}
		return "", "", err
	}
	return rk.OrgID, rk.TeamNodeID, nil
}
