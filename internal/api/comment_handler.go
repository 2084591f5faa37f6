package api

import (
	"log/slog"
	"net/http"

	"github.com/wrenhall/newsdesk-api/internal/api/shared"
	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/platform/logger"
	"github.com/wrenhall/newsdesk-api/internal/service"
)

// createCommentRequest represents the request body for posting a comment.
// The fields are pointers so that missing keys can be told apart from empty
// values; keys outside this set are ignored.
type createCommentRequest struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentService service.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		panic("logger cannot be nil for CommentHandler")
	}

	return &CommentHandler{
		commentService: commentService,
		logger:         logger.With(slog.String("component", "comment_handler")),
	}
}

// ListComments handles GET /api/articles/{article_id}/comments requests.
// Comments on a nonexistent article report not-found; an existing article
// with no comments reports an empty list.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.commentService.ListForArticle(r.Context(), articleID, r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}

	log.Debug("listed comments",
		slog.Int64("article_id", articleID),
		slog.Int("count", len(result.Comments)),
		slog.Int("total_count", result.TotalCount))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// CreateComment handles POST /api/articles/{article_id}/comments requests.
// The body must carry the username and body keys; a missing key fails before
// any storage access, while an unknown username or article surfaces as a
// foreign key violation from storage.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req createCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Username == nil || req.Body == nil {
		HandleAPIError(w, r, domain.ErrMissingFields, "")
		return
	}

	comment, err := h.commentService.Create(r.Context(), articleID, *req.Username, *req.Body)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}

	log.Info("comment created",
		slog.Int64("comment_id", comment.CommentID),
		slog.Int64("article_id", articleID))
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]*domain.Comment{"comment": comment})
}

// UpdateCommentVotes handles PATCH /api/comments/{comment_id} requests.
func (h *CommentHandler) UpdateCommentVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	delta, err := decodeVoteDelta(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comment, err := h.commentService.UpdateVotes(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update comment votes")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]*domain.Comment{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.commentService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete comment")
		return
	}

	log.Info("comment deleted", slog.Int64("comment_id", id))
	w.WriteHeader(http.StatusNoContent)
}
