package api

import "encoding/json"

// NormalizeIDs rewrites storage-specific "_id" fields into the primary "id"
// field, at any nesting depth, for both objects and array elements. Records
// that already carry "id" are left untouched, which makes the transform
// idempotent: applying it twice is the same as applying it once.
//
// This is a boundary conversion for payloads whose schema the client does
// not fully know; typed models take over immediately after.
func NormalizeIDs(raw json.RawMessage) (json.RawMessage, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeValue(v))
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if alt, ok := t["_id"]; ok {
			if _, ok := t["id"]; !ok {
				t["id"] = alt
			}
		}
		for k, child := range t {
			t[k] = normalizeValue(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = normalizeValue(child)
		}
		return t
	default:
		return v
	}
}
