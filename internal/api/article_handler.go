// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/wrenhall/newsdesk-api/internal/api/shared"
	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/platform/logger"
	"github.com/wrenhall/newsdesk-api/internal/service"
)

// createArticleRequest represents the request body for creating a new
// article. The fields are pointers so that missing keys can be told apart
// from empty values; keys outside this set are ignored.
type createArticleRequest struct {
	Author *string `json:"author"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Topic  *string `json:"topic"`
}

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	articleService service.ArticleService
	logger         *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService service.ArticleService, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		panic("logger cannot be nil for ArticleHandler")
	}

	return &ArticleHandler{
		articleService: articleService,
		logger:         logger.With(slog.String("component", "article_handler")),
	}
}

// ListArticles handles GET /api/articles requests.
// The topic, sort_by, order, limit and p query parameters are validated
// before any storage access; unrecognized parameters are rejected rather
// than ignored.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	result, err := h.articleService.List(r.Context(), r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list articles")
		return
	}

	log.Debug("listed articles",
		slog.Int("count", len(result.Articles)),
		slog.Int("total_count", result.TotalCount))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetArticle handles GET /api/articles/{article_id} requests.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	article, err := h.articleService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get article")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]*domain.Article{"article": article})
}

// CreateArticle handles POST /api/articles requests.
// The body must carry the author, title, body and topic keys; a missing key
// fails before any storage access, while an unknown author or topic surfaces
// as a foreign key violation from storage.
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req createArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Author == nil || req.Title == nil || req.Body == nil || req.Topic == nil {
		HandleAPIError(w, r, domain.ErrMissingFields, "")
		return
	}

	article, err := h.articleService.Create(r.Context(), *req.Author, *req.Title, *req.Body, *req.Topic)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create article")
		return
	}

	log.Info("article created",
		slog.Int64("article_id", article.ArticleID),
		slog.String("author", article.Author))
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]*domain.Article{"article": article})
}

// UpdateArticleVotes handles PATCH /api/articles/{article_id} requests.
// The body's inc_votes delta may be negative and the resulting count is
// unbounded in both directions.
func (h *ArticleHandler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	delta, err := decodeVoteDelta(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	article, err := h.articleService.UpdateVotes(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update article votes")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]*domain.Article{"article": article})
}

// DeleteArticle handles DELETE /api/articles/{article_id} requests.
// Successful deletion returns no payload; deleting the same article twice
// yields not-found on the second call.
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.articleService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete article")
		return
	}

	log.Info("article deleted", slog.Int64("article_id", id))
	w.WriteHeader(http.StatusNoContent)
}
