// Package postservice owns the in-memory post collection and answers
// queries against it.
package postservice

import (
	"context"
	"sync"

	"github.com/lunde/raido/internal/apperr"
	"github.com/lunde/raido/internal/models"
	"github.com/lunde/raido/internal/query"
)

// QueryResult is the derived view for one query.
type QueryResult struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total"`
	Tags  []string      `json:"tags"`
}

// Service is the single owner of the query engine prototype. Requests are
// answered on a clone of the prototype, so concurrent queries never
// observe each other's state; the mutex only guards collection swaps.
type Service struct {
	mu     sync.RWMutex
	engine *query.Engine
}

// NewService creates a service over the given collection.
func NewService(posts []models.Post) *Service {
	return &Service{engine: query.NewEngine(posts)}
}

// Reload replaces the whole collection. Partial updates are not supported.
func (s *Service) Reload(posts []models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetPosts(posts)
}

// Query applies one request's search text, tag selection, and sort order,
// returning the filtered view plus the tag vocabulary. tags is treated as
// a set (duplicates collapse). An empty sort means the default order; an
// unsupported sort returns apperr.ErrInvalidArgument.
func (s *Service) Query(_ context.Context, search string, tags []string, sort string) (*QueryResult, error) {
	s.mu.RLock()
	e := s.engine.Clone()
	s.mu.RUnlock()

	e.SetSearch(search)
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		e.ToggleTag(t)
	}
	if sort != "" {
		order, err := query.ParseSortOrder(sort)
		if err != nil {
			return nil, err
		}
		if err := e.SetSortOrder(order); err != nil {
			return nil, err
		}
	}

	posts := e.Results()
	return &QueryResult{
		Posts: posts,
		Total: len(posts),
		Tags:  e.Vocabulary(),
	}, nil
}

// Vocabulary returns the distinct sorted tag vocabulary of the collection.
func (s *Service) Vocabulary(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Vocabulary()
}

// GetPost returns the post with the given ID, or apperr.ErrNotFound.
func (s *Service) GetPost(_ context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.engine.Results() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperr.ErrNotFound
}
