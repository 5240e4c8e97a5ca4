package query

import (
	"sort"

	"github.com/lunde/raido/internal/models"
)

// Vocabulary returns every distinct tag appearing in the collection,
// sorted ascending by code point. Posts without tags contribute nothing;
// an empty collection yields an empty vocabulary.
func Vocabulary(posts []models.Post) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
