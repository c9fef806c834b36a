package services

import "strings"

// NormalizeTag lowercases the tag and collapses any whitespace run into a
// single hyphen. An empty result means the tag is discarded.
func NormalizeTag(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), "-")
}

// NormalizeTagSet normalizes every tag and drops duplicates and empties,
// preserving first-occurrence order.
func NormalizeTagSet(raw []string) []string {
	var tags []string
	seen := make(map[string]struct{}, len(raw))
	for _, t := range raw {
		normalized := NormalizeTag(t)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		tags = append(tags, normalized)
	}
	return tags
}
