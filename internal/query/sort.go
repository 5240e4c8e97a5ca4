package query

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lunde/raido/internal/apperr"
	"github.com/lunde/raido/internal/models"
)

// SortOrder selects the total order applied to query results.
type SortOrder string

// Supported sort orders. SortNewest is the default.
const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortTitleAZ SortOrder = "az"
	SortTitleZA SortOrder = "za"
)

// ParseSortOrder validates s against the supported orders and returns it,
// or apperr.ErrInvalidArgument for anything else (including "").
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortNewest, SortOldest, SortTitleAZ, SortTitleZA:
		return o, nil
	}
	return "", fmt.Errorf("%w: sort order %q", apperr.ErrInvalidArgument, s)
}

// sortPosts orders posts in place. newest/oldest compare publication
// timestamps; az/za compare titles with an English collator so that
// ordering matches what a reader expects rather than raw code points.
// All branches sort stably: posts that compare equal keep their relative
// collection order, so repeated queries yield identical output.
func sortPosts(posts []models.Post, order SortOrder) {
	switch order {
	case SortOldest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].PublishedAt.Before(posts[j].PublishedAt)
		})
	case SortTitleAZ:
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(posts, func(i, j int) bool {
			return c.CompareString(posts[i].Title, posts[j].Title) < 0
		})
	case SortTitleZA:
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(posts, func(i, j int) bool {
			return c.CompareString(posts[i].Title, posts[j].Title) > 0
		})
	default:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].PublishedAt.After(posts[j].PublishedAt)
		})
	}
}
