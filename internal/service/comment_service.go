package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/listing"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// CommentList is the result of a paginated comment listing.
type CommentList struct {
	Comments   []*domain.Comment `json:"comments"`
	TotalCount int               `json:"total_count"`
}

// CommentService provides comment listing and mutation operations.
type CommentService interface {
	// ListForArticle validates the raw query parameters and returns the
	// requested page of comments on the article. The parent article's
	// existence is confirmed first: comments on a nonexistent article report
	// not-found, while an existing article with no comments reports an empty
	// list with a zero total.
	ListForArticle(ctx context.Context, articleID int64, params url.Values) (*CommentList, error)

	// Create posts a comment on an article by an existing user.
	Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error)

	// UpdateVotes adds delta to the comment's vote count and returns the
	// updated comment.
	UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error)

	// Delete removes the comment. Deleting an absent comment reports not-found.
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	comments store.CommentStore
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewCommentService creates a CommentService backed by the given stores.
// If logger is nil, a default logger will be used.
func NewCommentService(
	comments store.CommentStore,
	articles store.ArticleStore,
	logger *slog.Logger,
) CommentService {
	if comments == nil {
		panic("comment store cannot be nil for CommentService")
	}
	if articles == nil {
		panic("article store cannot be nil for CommentService")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &commentService{
		comments: comments,
		articles: articles,
		logger:   logger.With(slog.String("component", "comment_service")),
	}
}

func (s *commentService) ListForArticle(
	ctx context.Context,
	articleID int64,
	params url.Values,
) (*CommentList, error) {
	query, err := listing.ParseCommentQuery(params)
	if err != nil {
		return nil, err
	}

	// Not-found beats empty list: confirm the parent before listing children.
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return nil, err
	}

	comments, total, err := s.comments.ListByArticle(ctx, articleID, query)
	if err != nil {
		return nil, err
	}

	return &CommentList{Comments: comments, TotalCount: total}, nil
}

func (s *commentService) Create(
	ctx context.Context,
	articleID int64,
	username, body string,
) (*domain.Comment, error) {
	comment, err := domain.NewComment(articleID, username, body)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) UpdateVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Comment, error) {
	return s.comments.IncrementVotes(ctx, id, delta)
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	return s.comments.Delete(ctx, id)
}
