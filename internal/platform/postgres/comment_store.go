package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/listing"
	"github.com/wrenhall/newsdesk-api/internal/platform/logger"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// WithTx implements store.CommentStore.WithTx
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{
		db:     tx,
		logger: s.logger,
	}
}

// ListByArticle implements store.CommentStore.ListByArticle
func (s *PostgresCommentStore) ListByArticle(
	ctx context.Context,
	articleID int64,
	query listing.Query,
) ([]*domain.Comment, int, error) {
	// As with the article listing, page and total must come from the same
	// snapshot. When already inside a transaction, run directly.
	if db, ok := s.db.(*sql.DB); ok {
		var (
			comments []*domain.Comment
			total    int
		)
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			var err error
			comments, total, err = s.WithTx(tx).ListByArticle(ctx, articleID, query)
			return err
		})
		return comments, total, err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	listSQL, listArgs := buildCommentListQuery(articleID, query)

	rows, err := s.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Error("failed to query comments",
			slog.String("error", err.Error()),
			slog.Int64("article_id", articleID))
		return nil, 0, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	comments := []*domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.CommentID,
			&comment.Body,
			&comment.ArticleID,
			&comment.Author,
			&comment.Votes,
			&comment.CreatedAt,
		); err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, 0, MapError(err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM comments WHERE article_id = $1`
	if err := s.db.QueryRowContext(ctx, countQuery, articleID).Scan(&total); err != nil {
		log.Error("failed to count comments",
			slog.String("error", err.Error()),
			slog.Int64("article_id", articleID))
		return nil, 0, MapError(err)
	}

	log.Debug("listed comments",
		slog.Int64("article_id", articleID),
		slog.Int("count", len(comments)),
		slog.Int("total_count", total))
	return comments, total, nil
}

// Create implements store.CommentStore.Create
// Returns store.ErrForeignKeyViolation if the author or article does not exist.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO comments (body, article_id, author)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		comment.Body,
		comment.ArticleID,
		comment.Author,
	).Scan(&comment.CommentID, &comment.Votes, &comment.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.String("error", err.Error()),
				slog.Int64("article_id", comment.ArticleID),
				slog.String("author", comment.Author))
			return fmt.Errorf("%w: unknown article or author", store.ErrForeignKeyViolation)
		}

		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int64("article_id", comment.ArticleID))
		return MapError(err)
	}

	log.Info("comment created",
		slog.Int64("comment_id", comment.CommentID),
		slog.Int64("article_id", comment.ArticleID),
		slog.String("author", comment.Author))
	return nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes
func (s *PostgresCommentStore) IncrementVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, body, article_id, author, votes, created_at
	`

	var comment domain.Comment
	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(
		&comment.CommentID,
		&comment.Body,
		&comment.ArticleID,
		&comment.Author,
		&comment.Votes,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found for vote update", slog.Int64("comment_id", id))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to update comment votes",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id),
			slog.Int("delta", delta))
		return nil, MapError(err)
	}

	log.Info("comment votes updated",
		slog.Int64("comment_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", comment.Votes))
	return &comment, nil
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		log.Debug("comment not found for delete", slog.Int64("comment_id", id))
		return err
	}

	log.Info("comment deleted", slog.Int64("comment_id", id))
	return nil
}
