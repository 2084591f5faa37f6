package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/listing"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "listing validation", err: listing.ErrInvalidTopic, expected: http.StatusBadRequest},
		{name: "unknown query key", err: listing.ErrUnknownKey, expected: http.StatusBadRequest},
		{name: "missing fields", err: domain.ErrMissingFields, expected: http.StatusBadRequest},
		{name: "invalid data type", err: domain.ErrInvalidDataType, expected: http.StatusBadRequest},
		{name: "bad identifier", err: domain.ErrInvalidID, expected: http.StatusBadRequest},
		{name: "generic validation", err: domain.ErrValidation, expected: http.StatusBadRequest},
		{name: "foreign key violation", err: store.ErrForeignKeyViolation, expected: http.StatusBadRequest},
		{name: "storage type rejection", err: store.ErrInvalidType, expected: http.StatusBadRequest},
		{name: "empty article title", err: domain.ErrArticleTitleEmpty, expected: http.StatusBadRequest},
		{name: "article not found", err: store.ErrArticleNotFound, expected: http.StatusNotFound},
		{name: "comment not found", err: store.ErrCommentNotFound, expected: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrUserNotFound), expected: http.StatusNotFound},
		{name: "duplicate", err: store.ErrDuplicate, expected: http.StatusConflict},
		{name: "unclassified", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "invalid topic", err: listing.ErrInvalidTopic, expected: "invalid topic query"},
		{name: "invalid sort_by", err: listing.ErrInvalidSortBy, expected: "invalid sort_by query"},
		{name: "invalid order", err: listing.ErrInvalidOrder, expected: "order must be asc or desc"},
		{name: "invalid limit", err: listing.ErrInvalidLimit, expected: "invalid limit query"},
		{name: "invalid page", err: listing.ErrInvalidPage, expected: "invalid page query"},
		{name: "unknown article key", err: listing.ErrUnknownKey, expected: "invalid query key"},
		{name: "unknown comment key", err: listing.ErrUnknownCommentKey, expected: "invalid query"},
		{name: "missing fields", err: domain.ErrMissingFields, expected: "posted body missing required fields"},
		{name: "invalid data type", err: domain.ErrInvalidDataType, expected: "input uses invalid data type"},
		{name: "bad identifier", err: domain.ErrInvalidID, expected: "input uses invalid data type"},
		{name: "storage type rejection", err: store.ErrInvalidType, expected: "input uses invalid data type"},
		{name: "foreign key violation", err: store.ErrForeignKeyViolation, expected: "foreign key violation"},
		{
			name:     "wrapped foreign key keeps the stable message",
			err:      fmt.Errorf("insert comment: %w (comments_author_fkey)", store.ErrForeignKeyViolation),
			expected: "foreign key violation",
		},
		{name: "article not found", err: store.ErrArticleNotFound, expected: "article not found"},
		{name: "comment not found", err: store.ErrCommentNotFound, expected: "comment not found"},
		{name: "topic not found", err: store.ErrTopicNotFound, expected: "topic not found"},
		{name: "user not found", err: store.ErrUserNotFound, expected: "user not found"},
		{name: "generic not found", err: store.ErrNotFound, expected: "not found"},
		{name: "duplicate", err: store.ErrDuplicate, expected: "already exists"},
		{name: "entity validation carries its own message", err: domain.ErrCommentBodyEmpty, expected: "comment body cannot be empty"},
		{name: "unclassified", err: errors.New("pq: deadlock detected"), expected: "An unexpected error occurred"},
		{name: "nil", err: nil, expected: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessageNeverEchoesStorageDetail(t *testing.T) {
	raw := errors.New(`pq: duplicate key value violates unique constraint "topics_pkey"`)
	msg := GetSafeErrorMessage(fmt.Errorf("%w: %v", store.ErrDuplicate, raw))
	assert.Equal(t, "already exists", msg)
	assert.NotContains(t, msg, "pq:")
}
