package query

import (
	"strings"

	"github.com/lunde/raido/internal/models"
)

// MatchesSearch reports whether q is a case-insensitive substring of the
// post's title or description. The empty query matches every post.
//
// Folding is strings.ToLower on both sides: locale-naive, no trimming,
// no accent normalisation.
func MatchesSearch(q string, p models.Post) bool {
	if q == "" {
		return true
	}
	needle := strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// MatchesTags reports whether the post carries every selected tag
// (ALL-match policy). An empty selection matches every post; a post with
// no tags matches only the empty selection.
func MatchesTags(selected []string, p models.Post) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		if !hasTag(p.Tags, want) {
			return false
		}
	}
	return true
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
