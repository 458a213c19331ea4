package render

import "unicode"

// HighlightIndices returns the rune indices of text consumed by a greedy
// case-insensitive subsequence walk of query. This mirrors the walk the
// ranking engine performs, so highlighted runes match what scored.
func HighlightIndices(text, query string) []int {
	if query == "" {
		return nil
	}
	queryRunes := []rune(query)
	qi := 0
	var indices []int
	pos := 0
	for _, r := range text {
		if qi >= len(queryRunes) {
			break
		}
		if unicode.ToLower(r) == unicode.ToLower(queryRunes[qi]) {
			indices = append(indices, pos)
			qi++
		}
		pos++
	}
	return indices
}
