package api

import (
	"github.com/lunde/raido/internal/models"
	"github.com/lunde/raido/internal/postservice"
)

// PostListResponse is the filtered post view plus its facet data.
type PostListResponse = postservice.QueryResult

// PostDetail is the single-post response type (aliased from the domain layer).
type PostDetail = models.Post

// TagListResponse wraps the tag vocabulary.
type TagListResponse struct {
	Tags []string `json:"tags" validate:"required"`
}
