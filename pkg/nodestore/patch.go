package nodestore

import "reflect"

// immutableKeys are top-level config keys a patch may set once but never change.
var immutableKeys = []string{"team_name"}

// ApplyPatch merges an RFC-7396-style partial document into current and
// returns the new document. Semantics:
//
//   - null values delete the key
//   - objects recurse
//   - arrays and scalars replace
//
// Neither input is mutated.
func ApplyPatch(current, patch map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(current)+len(patch))
	for k, v := range current {
		out[k] = v
	}
	for k, v := range patch {
		if v == nil {
			delete(out, k)
			continue
		}
		patchMap, patchIsMap := v.(map[string]interface{})
		currentMap, currentIsMap := out[k].(map[string]interface{})
		if patchIsMap && currentIsMap {
			out[k] = ApplyPatch(currentMap, patchMap)
			continue
		}
		if patchIsMap {
			// Recurse against an empty document so nested nulls are honored.
			out[k] = ApplyPatch(map[string]interface{}{}, patchMap)
			continue
		}
		out[k] = v
	}
	return out
}

// CheckImmutable rejects patches that would change an immutable key that is
// already set. Setting the key for the first time is allowed.
func CheckImmutable(current, patch map[string]interface{}) error {
	for _, key := range immutableKeys {
		patchVal, inPatch := patch[key]
		if !inPatch {
			continue
		}
		currentVal, inCurrent := current[key]
		// Decoded JSON values may be maps or slices, so a plain interface
		// comparison would panic on uncomparable types.
		if inCurrent && !reflect.DeepEqual(patchVal, currentVal) {
			return &ImmutableFieldError{Field: key}
		}
	}
	return nil
}
