// Package mocks provides hand-written mock implementations of the store
// interfaces for use in tests.
package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/listing"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// MockArticleStore implements store.ArticleStore for testing
type MockArticleStore struct {
	// Function fields for customizable behavior
	ListFn           func(ctx context.Context, query listing.Query) ([]*domain.Article, int, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Article, error)
	CreateFn         func(ctx context.Context, article *domain.Article) error
	IncrementVotesFn func(ctx context.Context, id int64, delta int) (*domain.Article, error)
	DeleteFn         func(ctx context.Context, id int64) error

	// Data for default implementation
	Articles map[int64]*domain.Article
	NextID   int64
}

// NewMockArticleStore creates a new mock store with initialized defaults
func NewMockArticleStore() *MockArticleStore {
	return &MockArticleStore{
		Articles: make(map[int64]*domain.Article),
		NextID:   1,
	}
}

var _ store.ArticleStore = (*MockArticleStore)(nil)

// List implements the ArticleStore interface
func (m *MockArticleStore) List(
	ctx context.Context,
	query listing.Query,
) ([]*domain.Article, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, query)
	}

	matching := []*domain.Article{}
	for _, a := range m.Articles {
		if query.Topic == "" || a.Topic == query.Topic {
			matching = append(matching, a)
		}
	}
	sortArticles(matching, query)

	total := len(matching)
	offset := query.Offset()
	if offset >= total {
		return []*domain.Article{}, total, nil
	}
	end := offset + query.Limit
	if end > total {
		end = total
	}
	return matching[offset:end], total, nil
}

// GetByID implements the ArticleStore interface
func (m *MockArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	article, exists := m.Articles[id]
	if !exists {
		return nil, store.ErrArticleNotFound
	}
	return article, nil
}

// Create implements the ArticleStore interface
func (m *MockArticleStore) Create(ctx context.Context, article *domain.Article) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, article)
	}

	article.ArticleID = m.NextID
	m.NextID++
	m.Articles[article.ArticleID] = article
	return nil
}

// IncrementVotes implements the ArticleStore interface
func (m *MockArticleStore) IncrementVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Article, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}

	article, exists := m.Articles[id]
	if !exists {
		return nil, store.ErrArticleNotFound
	}
	article.Votes += delta
	return article, nil
}

// Delete implements the ArticleStore interface
func (m *MockArticleStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Articles[id]; !exists {
		return store.ErrArticleNotFound
	}
	delete(m.Articles, id)
	return nil
}

// WithTx implements the ArticleStore interface
func (m *MockArticleStore) WithTx(tx *sql.Tx) store.ArticleStore {
	return m
}

// sortArticles orders the slice by the query's validated sort column and
// direction, mirroring the ORDER BY the real store emits.
func sortArticles(articles []*domain.Article, query listing.Query) {
	less := func(a, b *domain.Article) bool {
		switch query.Column {
		case "articles.article_id":
			return a.ArticleID < b.ArticleID
		case "articles.title":
			return a.Title < b.Title
		case "articles.topic":
			return a.Topic < b.Topic
		case "articles.author":
			return a.Author < b.Author
		case "articles.body":
			return a.Body < b.Body
		case "articles.votes":
			return a.Votes < b.Votes
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if query.Order == "ASC" {
			return less(articles[i], articles[j])
		}
		return less(articles[j], articles[i])
	})
}

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	ListByArticleFn  func(ctx context.Context, articleID int64, query listing.Query) ([]*domain.Comment, int, error)
	CreateFn         func(ctx context.Context, comment *domain.Comment) error
	IncrementVotesFn func(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	DeleteFn         func(ctx context.Context, id int64) error

	Comments map[int64]*domain.Comment
	NextID   int64
}

// NewMockCommentStore creates a new mock store with initialized defaults
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Comments: make(map[int64]*domain.Comment),
		NextID:   1,
	}
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// ListByArticle implements the CommentStore interface
func (m *MockCommentStore) ListByArticle(
	ctx context.Context,
	articleID int64,
	query listing.Query,
) ([]*domain.Comment, int, error) {
	if m.ListByArticleFn != nil {
		return m.ListByArticleFn(ctx, articleID, query)
	}

	matching := []*domain.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			matching = append(matching, c)
		}
	}
	sortComments(matching, query)

	total := len(matching)
	offset := query.Offset()
	if offset >= total {
		return []*domain.Comment{}, total, nil
	}
	end := offset + query.Limit
	if end > total {
		end = total
	}
	return matching[offset:end], total, nil
}

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	comment.CommentID = m.NextID
	m.NextID++
	m.Comments[comment.CommentID] = comment
	return nil
}

// IncrementVotes implements the CommentStore interface
func (m *MockCommentStore) IncrementVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Comment, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}

	comment, exists := m.Comments[id]
	if !exists {
		return nil, store.ErrCommentNotFound
	}
	comment.Votes += delta
	return comment, nil
}

// Delete implements the CommentStore interface
func (m *MockCommentStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Comments[id]; !exists {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, id)
	return nil
}

// WithTx implements the CommentStore interface
func (m *MockCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return m
}

// sortComments is the comment counterpart of sortArticles.
func sortComments(comments []*domain.Comment, query listing.Query) {
	less := func(a, b *domain.Comment) bool {
		switch query.Column {
		case "comments.comment_id":
			return a.CommentID < b.CommentID
		case "comments.body":
			return a.Body < b.Body
		case "comments.author":
			return a.Author < b.Author
		case "comments.votes":
			return a.Votes < b.Votes
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		if query.Order == "ASC" {
			return less(comments[i], comments[j])
		}
		return less(comments[j], comments[i])
	})
}

// MockTopicStore implements store.TopicStore for testing
type MockTopicStore struct {
	ListFn   func(ctx context.Context) ([]*domain.Topic, error)
	SlugsFn  func(ctx context.Context) ([]string, error)
	CreateFn func(ctx context.Context, topic *domain.Topic) error

	Topics map[string]*domain.Topic
}

// NewMockTopicStore creates a new mock store with initialized defaults
func NewMockTopicStore(slugs ...string) *MockTopicStore {
	topics := make(map[string]*domain.Topic)
	for _, slug := range slugs {
		topics[slug] = &domain.Topic{Slug: slug, Description: slug}
	}
	return &MockTopicStore{Topics: topics}
}

var _ store.TopicStore = (*MockTopicStore)(nil)

// List implements the TopicStore interface
func (m *MockTopicStore) List(ctx context.Context) ([]*domain.Topic, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	topics := []*domain.Topic{}
	for _, t := range m.Topics {
		topics = append(topics, t)
	}
	return topics, nil
}

// Slugs implements the TopicStore interface
func (m *MockTopicStore) Slugs(ctx context.Context) ([]string, error) {
	if m.SlugsFn != nil {
		return m.SlugsFn(ctx)
	}

	var slugs []string
	for slug := range m.Topics {
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

// Create implements the TopicStore interface
func (m *MockTopicStore) Create(ctx context.Context, topic *domain.Topic) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, topic)
	}

	if _, exists := m.Topics[topic.Slug]; exists {
		return store.ErrDuplicate
	}
	m.Topics[topic.Slug] = topic
	return nil
}

// WithTx implements the TopicStore interface
func (m *MockTopicStore) WithTx(tx *sql.Tx) store.TopicStore {
	return m
}

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	ListFn          func(ctx context.Context) ([]*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)

	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	users := []*domain.User{}
	for _, u := range m.Users {
		users = append(users, u)
	}
	return users, nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// WithTx implements the UserStore interface
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
