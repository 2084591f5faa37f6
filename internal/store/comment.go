package store

import (
	"context"
	"database/sql"

	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/listing"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// ListByArticle retrieves a page of comments on the given article plus
	// the total number of comments on it ignoring pagination. An existing
	// article with no comments yields an empty slice and a zero total;
	// confirming the article exists is the caller's responsibility.
	ListByArticle(ctx context.Context, articleID int64, query listing.Query) ([]*domain.Comment, int, error)

	// Create saves a new comment, filling in the generated identifier,
	// creation timestamp and initial vote count on the given comment.
	// Returns ErrForeignKeyViolation if the author or article does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// IncrementVotes atomically adds delta to the comment's vote count and
	// returns the updated comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error)

	// Delete removes a comment by its ID. Returns ErrCommentNotFound if the
	// comment does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CommentStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) CommentStore
}
