package store

import (
	"context"
	"database/sql"

	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/listing"
)

// ArticleStore defines the interface for article data persistence.
type ArticleStore interface {
	// List retrieves a page of articles matching the descriptor, each with
	// its derived comment_count, together with the total number of matching
	// rows ignoring pagination. A page beyond the last returns an empty
	// slice and the correct total, not an error.
	List(ctx context.Context, query listing.Query) ([]*domain.Article, int, error)

	// GetByID retrieves an article by its unique ID, including its derived
	// comment_count. Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)

	// Create saves a new article, filling in the generated identifier,
	// creation timestamp and initial vote count on the given article.
	// Returns ErrForeignKeyViolation if the author or topic does not exist.
	Create(ctx context.Context, article *domain.Article) error

	// IncrementVotes atomically adds delta to the article's vote count and
	// returns the updated article. The count is unbounded and may go
	// negative. Returns ErrArticleNotFound if the article does not exist.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)

	// Delete removes an article by its ID. Returns ErrArticleNotFound if the
	// article does not exist, so a second delete of the same id reports
	// not-found rather than a silent no-op.
	//
	// Comment removal relies on the ON DELETE CASCADE constraint declared in
	// the schema; the store does not delete comments in application code.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new ArticleStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) ArticleStore
}
