package ranking

import "strings"

// synonymGroups maps a canonical group name to the listing-portal spellings
// that mean the same thing. Portals are inconsistent about labels, so the
// fallback search matches on groups rather than exact strings.
var synonymGroups = map[string][]string{
	"house":      {"house", "residential", "villa", "townhouse"},
	"apartment":  {"apartment", "condo", "flat", "studio"},
	"commercial": {"commercial", "office", "retail", "warehouse"},
	"land":       {"land", "lot", "plot"},
}

// typeToGroup is the reverse index, built once at init.
var typeToGroup = func() map[string]string {
	idx := make(map[string]string)
	for group, members := range synonymGroups {
		for _, m := range members {
			idx[m] = group
		}
	}
	return idx
}()

// NormalizeType lowercases a property type label and resolves it to its
// canonical group name. Unknown labels pass through normalized.
func NormalizeType(propertyType string) string {
	t := strings.ToLower(strings.TrimSpace(propertyType))
	if group, ok := typeToGroup[t]; ok {
		return group
	}
	return t
}

// exactTypeMatcher matches candidates whose normalized label equals the
// target label exactly.
func exactTypeMatcher(targetType string) func(string) bool {
	want := strings.ToLower(strings.TrimSpace(targetType))
	return func(candidateType string) bool {
		return strings.ToLower(strings.TrimSpace(candidateType)) == want
	}
}

// synonymMatcher matches candidates whose label belongs to the same synonym
// group as the target.
func synonymMatcher(targetType string) func(string) bool {
	group := NormalizeType(targetType)
	return func(candidateType string) bool {
		return NormalizeType(candidateType) == group
	}
}
