package matching

import "strings"

// ExtractKeywords reports which of keywords appear in text as case-insensitive
// substrings. Output follows keyword order with duplicates removed.
func ExtractKeywords(text string, keywords []string) []string {
	out := make([]string, 0)
	lower := NormalizeSkill(text)
	if lower == "" {
		return out
	}

	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		k := NormalizeSkill(kw)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		if !strings.Contains(lower, k) {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
