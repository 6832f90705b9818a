// Package effective computes the resolved configuration view for a tenant by
// deep-merging every node config on the ancestor chain, org root first.
package effective

// Merge deep-merges overlay into base and returns a new document; neither
// input is mutated. Rules (no control keys):
//
//   - map ⊕ map     = key-wise union, recursing on overlaps
//   - scalar ⊕ any  = right wins
//   - list ⊕ list   = right replaces (never appended)
//   - x ⊕ null      = key deleted (explicit deletion)
//
// The function is associative over a chain, so folding left over
// [org, sub_team, ..., team] is deterministic.
func Merge(base, overlay map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		if v == nil {
			delete(out, k)
			continue
		}
		overlayMap, overlayIsMap := v.(map[string]interface{})
		baseMap, baseIsMap := out[k].(map[string]interface{})
		if overlayIsMap && baseIsMap {
			out[k] = Merge(baseMap, overlayMap)
			continue
		}
		out[k] = v
	}
	return out
}

// MergeChain folds Merge left over the ancestor chain's configs
// (org root first, team last).
func MergeChain(chain []map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for _, cfg := range chain {
		out = Merge(out, cfg)
	}
	return out
}
