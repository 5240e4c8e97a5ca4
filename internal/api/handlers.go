package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lunde/raido/internal/apperr"
	"github.com/lunde/raido/internal/postservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *postservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *postservice.Service) *Handler {
	return &Handler{svc: svc}
}

// postID extracts the post ID from the URL (everything after /posts/).
// IDs may contain slashes (e.g. guides/profiling), and OpenAPI clients
// may encode them (guides%2Fprofiling).
func postID(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// splitTags parses the comma-separated tags query parameter.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ListPosts handles GET /api/posts.
//
//	@Summary		List posts filtered by search text, tags, and sort order
//	@Tags			posts
//	@Produce		json
//	@Param			q		query		string	false	"Free-text search over title and description"
//	@Param			tags	query		string	false	"Comma-separated tags; a post must carry all of them"
//	@Param			sort	query		string	false	"Sort order"	Enums(newest, oldest, az, za)
//	@Success		200		{object}	PostListResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/posts [get]
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	search := params.Get("q")
	tags := splitTags(params.Get("tags"))
	sort := params.Get("sort")

	res, err := h.svc.Query(r.Context(), search, tags, sort)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidArgument) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		slog.Error("list posts failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetPost handles GET /api/posts/*.
//
//	@Summary		Get a single post by ID
//	@Tags			posts
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	PostDetail
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/posts/{id} [get]
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := postID(r)
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("id is required"))
		return
	}
	post, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get post failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// ListTags handles GET /api/tags.
//
//	@Summary		Get the distinct sorted tag vocabulary
//	@Tags			tags
//	@Produce		json
//	@Success		200	{object}	TagListResponse
//	@Security		BearerAuth
//	@Router			/tags [get]
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TagListResponse{
		Tags: h.svc.Vocabulary(r.Context()),
	})
}
