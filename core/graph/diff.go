package graph

import (
	"reflect"
	"sort"

	"schema-engine/core/utils"
)

// Differences returns the sorted keys whose values differ between existing and desired.
// A key missing on one side and nil on the other is not a difference.
func Differences(existing, desired Properties) []string {
	keys := make(map[string]struct{}, len(existing)+len(desired))
	for k := range existing {
		keys[k] = struct{}{}
	}
	for k := range desired {
		keys[k] = struct{}{}
	}

	var changed []string
	for k := range keys {
		if !reflect.DeepEqual(normalize(existing[k]), normalize(desired[k])) {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)
	return changed
}

// HasDifference reports whether any property differs.
func HasDifference(existing, desired Properties) bool {
	return len(Differences(existing, desired)) > 0
}

// normalize maps values to the shape they take after a JSON round trip:
// integral numbers become int64 and string arrays become []string.
func normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []string, []any:
		s := utils.ToStringSlice(val)
		if len(s) == 0 {
			return nil
		}
		return s
	case string, bool:
		return val
	}
	if utils.IsIntegral(v) {
		return utils.ToInt64(v)
	}
	return v
}
