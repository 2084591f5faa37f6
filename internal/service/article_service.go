// Package service provides application-level services orchestrating
// validation, query assembly and store access for the API handlers.
package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/listing"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// ArticleList is the result of a paginated article listing. TotalCount is the
// number of rows matching the filter across all pages, not the page size.
type ArticleList struct {
	Articles   []*domain.Article `json:"articles"`
	TotalCount int               `json:"total_count"`
}

// ArticleService provides article listing and mutation operations.
type ArticleService interface {
	// List validates the raw query parameters, assembles the listing query
	// and returns the requested page with its total count. Validation errors
	// surface before any articles are read.
	List(ctx context.Context, params url.Values) (*ArticleList, error)

	// Get retrieves a single article with its derived comment count.
	Get(ctx context.Context, id int64) (*domain.Article, error)

	// Create persists a new article authored by an existing user under an
	// existing topic.
	Create(ctx context.Context, author, title, body, topic string) (*domain.Article, error)

	// UpdateVotes adds delta to the article's vote count and returns the
	// updated article.
	UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)

	// Delete removes the article; its comments go with it via the schema's
	// cascade. Deleting an absent article reports not-found.
	Delete(ctx context.Context, id int64) error
}

type articleService struct {
	articles store.ArticleStore
	topics   store.TopicStore
	logger   *slog.Logger
}

// NewArticleService creates an ArticleService backed by the given stores.
// If logger is nil, a default logger will be used.
func NewArticleService(
	articles store.ArticleStore,
	topics store.TopicStore,
	logger *slog.Logger,
) ArticleService {
	if articles == nil {
		panic("article store cannot be nil for ArticleService")
	}
	if topics == nil {
		panic("topic store cannot be nil for ArticleService")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &articleService{
		articles: articles,
		topics:   topics,
		logger:   logger.With(slog.String("component", "article_service")),
	}
}

func (s *articleService) List(ctx context.Context, params url.Values) (*ArticleList, error) {
	// The topic allow-list is read from storage per request so that newly
	// created topics are accepted without a restart.
	slugs, err := s.topics.Slugs(ctx)
	if err != nil {
		return nil, err
	}

	query, err := listing.ParseArticleQuery(params, slugs)
	if err != nil {
		return nil, err
	}

	articles, total, err := s.articles.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return &ArticleList{Articles: articles, TotalCount: total}, nil
}

func (s *articleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return s.articles.GetByID(ctx, id)
}

func (s *articleService) Create(
	ctx context.Context,
	author, title, body, topic string,
) (*domain.Article, error) {
	article, err := domain.NewArticle(author, title, body, topic)
	if err != nil {
		return nil, err
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) UpdateVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Article, error) {
	return s.articles.IncrementVotes(ctx, id, delta)
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	return s.articles.Delete(ctx, id)
}
