package effective

import (
	"context"
	"fmt"
	"sync"
)

// ChainLoader loads the ordered ancestor-chain configs for a node
// (org root first). Implemented by the node store.
type ChainLoader interface {
	AncestorConfigs(ctx context.Context, orgID, nodeID string) ([]map[string]interface{}, error)
}

// Resolver memoizes effective configs per (org, node). Entries are dropped
// for the whole org on any write inside that org, a superset of the
// descendants the write can affect.
type Resolver struct {
	loader ChainLoader

	mu    sync.RWMutex
	cache map[string]map[string]interface{}
}

// NewResolver creates a resolver over the given chain loader.
func NewResolver(loader ChainLoader) *Resolver {
	return &Resolver{
		loader: loader,
		cache:  make(map[string]map[string]interface{}),
	}
}

// Resolve returns the effective config for (orgID, nodeID).
func (r *Resolver) Resolve(ctx context.Context, orgID, nodeID string) (map[string]interface{}, error) {
	key := orgID + "/" + nodeID

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	chain, err := r.loader.AncestorConfigs(ctx, orgID, nodeID)
	if err != nil {
		return nil, fmt.Errorf("loading ancestor configs for %s/%s: %w", orgID, nodeID, err)
	}
	merged := MergeChain(chain)

	r.mu.Lock()
	r.cache[key] = merged
	r.mu.Unlock()
	return merged, nil
}

// InvalidateOrg drops every cached entry for the org. Called by the node
// store after any config write inside the org.
func (r *Resolver) InvalidateOrg(orgID string) {
	prefix := orgID + "/"
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.cache {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(r.cache, key)
		}
	}
}
