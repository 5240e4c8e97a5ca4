// Package query implements the in-memory post query engine: free-text
// search, tag faceting, and sorting over a read-only post collection.
//
// The engine is deliberately simple: every derivation is a full linear
// scan of the collection, recomputed on demand. There is no index and no
// incremental state; collections are assumed small enough that O(n log n)
// per interaction is fine.
package query

import (
	"sort"

	"github.com/lunde/raido/internal/models"
)

// Engine owns the mutable query state (search text, selected tag set,
// sort order) over an immutable post collection. It is not safe for
// concurrent use; callers that share an engine must serialise access.
type Engine struct {
	posts    []models.Post
	search   string
	selected map[string]struct{}
	order    SortOrder
}

// NewEngine creates an engine over posts with empty search, no selected
// tags, and the newest-first sort order.
func NewEngine(posts []models.Post) *Engine {
	return &Engine{
		posts:    posts,
		selected: make(map[string]struct{}),
		order:    SortNewest,
	}
}

// SetPosts replaces the whole collection. Partial updates are not
// supported; query state (search, tags, order) is kept as-is.
func (e *Engine) SetPosts(posts []models.Post) {
	e.posts = posts
}

// SetSearch replaces the free-text search query.
func (e *Engine) SetSearch(q string) {
	e.search = q
}

// ToggleTag adds tag to the selected set if absent and removes it if
// present. Toggling a tag that appears in no post is legal; it simply
// yields zero matches until toggled off again.
func (e *Engine) ToggleTag(tag string) {
	if _, ok := e.selected[tag]; ok {
		delete(e.selected, tag)
	} else {
		e.selected[tag] = struct{}{}
	}
}

// SetSortOrder replaces the sort order. An unsupported value is rejected
// with apperr.ErrInvalidArgument before any state changes, so the engine
// keeps whatever order it had.
func (e *Engine) SetSortOrder(order SortOrder) error {
	parsed, err := ParseSortOrder(string(order))
	if err != nil {
		return err
	}
	e.order = parsed
	return nil
}

// Search returns the current search query.
func (e *Engine) Search() string { return e.search }

// Order returns the current sort order.
func (e *Engine) Order() SortOrder { return e.order }

// SelectedTags returns the selected tag set as a sorted slice.
func (e *Engine) SelectedTags() []string {
	out := make([]string, 0, len(e.selected))
	for t := range e.selected {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Vocabulary returns the distinct sorted tag vocabulary of the collection.
func (e *Engine) Vocabulary() []string {
	return Vocabulary(e.posts)
}

// Results applies the current query state to the collection and returns
// the filtered, sorted view. The returned slice is freshly allocated;
// the underlying collection is never reordered or mutated.
func (e *Engine) Results() []models.Post {
	selected := e.SelectedTags()
	out := make([]models.Post, 0, len(e.posts))
	for _, p := range e.posts {
		if MatchesSearch(e.search, p) && MatchesTags(selected, p) {
			out = append(out, p)
		}
	}
	sortPosts(out, e.order)
	return out
}

// ResultCount returns len(Results()). Exposed separately because callers
// display a running count without rendering the list.
func (e *Engine) ResultCount() int {
	return len(e.Results())
}

// Clone returns an independent engine with the same collection and a
// copy of the query state. The post slice is shared (it is read-only).
func (e *Engine) Clone() *Engine {
	selected := make(map[string]struct{}, len(e.selected))
	for t := range e.selected {
		selected[t] = struct{}{}
	}
	return &Engine{
		posts:    e.posts,
		search:   e.search,
		selected: selected,
		order:    e.order,
	}
}
