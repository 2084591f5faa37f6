package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/platform/logger"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the TopicStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// Ensure PostgresTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*PostgresTopicStore)(nil)

// WithTx implements store.TopicStore.WithTx
func (s *PostgresTopicStore) WithTx(tx *sql.Tx) store.TopicStore {
	return &PostgresTopicStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.TopicStore.List
func (s *PostgresTopicStore) List(ctx context.Context) ([]*domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT slug, description FROM topics ORDER BY slug`)
	if err != nil {
		log.Error("failed to query topics", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	topics := []*domain.Topic{}
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			log.Error("failed to scan topic row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		topics = append(topics, &topic)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return topics, nil
}

// Slugs implements store.TopicStore.Slugs
// The result is the live topic-filter allow-list; it is read fresh per
// request rather than cached, so new topics are accepted immediately.
func (s *PostgresTopicStore) Slugs(ctx context.Context) ([]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT slug FROM topics`)
	if err != nil {
		log.Error("failed to query topic slugs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			log.Error("failed to scan slug row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return slugs, nil
}

// Create implements store.TopicStore.Create
// Returns store.ErrDuplicate if a topic with the same slug already exists.
func (s *PostgresTopicStore) Create(ctx context.Context, topic *domain.Topic) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := topic.Validate(); err != nil {
		log.Warn("topic validation failed during create",
			slog.String("error", err.Error()),
			slog.String("slug", topic.Slug))
		return err
	}

	query := `INSERT INTO topics (slug, description) VALUES ($1, $2)`

	if _, err := s.db.ExecContext(ctx, query, topic.Slug, topic.Description); err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate topic slug", slog.String("slug", topic.Slug))
			return fmt.Errorf("%w: topic %q", store.ErrDuplicate, topic.Slug)
		}

		log.Error("failed to create topic",
			slog.String("error", err.Error()),
			slog.String("slug", topic.Slug))
		return MapError(err)
	}

	log.Info("topic created", slog.String("slug", topic.Slug))
	return nil
}
