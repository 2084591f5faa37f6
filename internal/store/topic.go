package store

import (
	"context"
	"database/sql"

	"github.com/wrenhall/newsdesk-api/internal/domain"
)

// TopicStore defines the interface for topic data persistence.
type TopicStore interface {
	// List retrieves all topics ordered by slug.
	List(ctx context.Context) ([]*domain.Topic, error)

	// Slugs retrieves the slugs of all topics. The listing service uses this
	// as the live allow-list for the topic filter, so validation never works
	// from a stale hardcoded set.
	Slugs(ctx context.Context) ([]string, error)

	// Create saves a new topic. Returns ErrDuplicate if a topic with the
	// same slug already exists.
	Create(ctx context.Context, topic *domain.Topic) error

	// WithTx returns a new TopicStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TopicStore
}
