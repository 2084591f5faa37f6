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

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the ArticleStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// WithTx implements store.ArticleStore.WithTx
func (s *PostgresArticleStore) WithTx(tx *sql.Tx) store.ArticleStore {
	return &PostgresArticleStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.ArticleStore.List
// It runs the assembled listing query plus the companion count query and
// returns the page of articles together with the total matching row count.
func (s *PostgresArticleStore) List(
	ctx context.Context,
	query listing.Query,
) ([]*domain.Article, int, error) {
	// The page and the total come from two statements; running them in one
	// transaction keeps total_count consistent with the page under
	// concurrent writes. When already inside a transaction, run directly.
	if db, ok := s.db.(*sql.DB); ok {
		var (
			articles []*domain.Article
			total    int
		)
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			var err error
			articles, total, err = s.WithTx(tx).List(ctx, query)
			return err
		})
		return articles, total, err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	listSQL, listArgs := buildArticleListQuery(query)

	rows, err := s.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Error("failed to query articles",
			slog.String("error", err.Error()),
			slog.String("topic", query.Topic))
		return nil, 0, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	articles := []*domain.Article{}
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ArticleID,
			&article.Title,
			&article.Body,
			&article.Topic,
			&article.Author,
			&article.Votes,
			&article.CreatedAt,
			&article.CommentCount,
		); err != nil {
			log.Error("failed to scan article row", slog.String("error", err.Error()))
			return nil, 0, MapError(err)
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	countSQL, countArgs := buildArticleCountQuery(query)

	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Error("failed to count articles",
			slog.String("error", err.Error()),
			slog.String("topic", query.Topic))
		return nil, 0, MapError(err)
	}

	log.Debug("listed articles",
		slog.Int("count", len(articles)),
		slog.Int("total_count", total),
		slog.String("topic", query.Topic))
	return articles, total, nil
}

// GetByID implements store.ArticleStore.GetByID
// The comment_count is recomputed on every read and never cached.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT articles.article_id, articles.title, articles.body,
			articles.topic, articles.author, articles.votes, articles.created_at,
			COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Body,
		&article.Topic,
		&article.Author,
		&article.Votes,
		&article.CreatedAt,
		&article.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article by ID",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return nil, MapError(err)
	}

	return &article, nil
}

// Create implements store.ArticleStore.Create
// It saves a new article, relying on the database to assign the identifier,
// initial vote count and creation timestamp, which are read back via RETURNING.
// Returns store.ErrForeignKeyViolation if the author or topic does not exist.
func (s *PostgresArticleStore) Create(ctx context.Context, article *domain.Article) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := article.Validate(); err != nil {
		log.Warn("article validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO articles (title, body, topic, author)
		VALUES ($1, $2, $3, $4)
		RETURNING article_id, votes, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		article.Title,
		article.Body,
		article.Topic,
		article.Author,
	).Scan(&article.ArticleID, &article.Votes, &article.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during article creation",
				slog.String("error", err.Error()),
				slog.String("topic", article.Topic),
				slog.String("author", article.Author))
			return fmt.Errorf("%w: unknown topic or author", store.ErrForeignKeyViolation)
		}

		log.Error("failed to create article",
			slog.String("error", err.Error()),
			slog.String("author", article.Author))
		return MapError(err)
	}

	log.Info("article created",
		slog.Int64("article_id", article.ArticleID),
		slog.String("topic", article.Topic),
		slog.String("author", article.Author))
	return nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// The increment is a single conditional UPDATE, so the database's atomic
// update is the unit of safety under concurrent votes on the same row.
// No floor is applied; the resulting count may be negative.
func (s *PostgresArticleStore) IncrementVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, body, topic, author, votes, created_at
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Body,
		&article.Topic,
		&article.Author,
		&article.Votes,
		&article.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found for vote update", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to update article votes",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id),
			slog.Int("delta", delta))
		return nil, MapError(err)
	}

	// The updated row has no aggregate columns; fetch the derived count.
	countQuery := `SELECT COUNT(*) FROM comments WHERE article_id = $1`
	if err := s.db.QueryRowContext(ctx, countQuery, id).Scan(&article.CommentCount); err != nil {
		log.Error("failed to count comments after vote update",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return nil, MapError(err)
	}

	log.Info("article votes updated",
		slog.Int64("article_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", article.Votes))
	return &article, nil
}

// Delete implements store.ArticleStore.Delete
// A single conditional DELETE reports not-found through the affected row
// count, so deleting an already-removed article yields not-found rather than
// a repeat success. Comments go with the article via the schema's cascade.
func (s *PostgresArticleStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
	if err != nil {
		log.Error("failed to delete article",
			slog.String("error", err.Error()),
			slog.Int64("article_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrArticleNotFound); err != nil {
		log.Debug("article not found for delete", slog.Int64("article_id", id))
		return err
	}

	log.Info("article deleted", slog.Int64("article_id", id))
	return nil
}
