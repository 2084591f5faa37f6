package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownTopics = []string{"coding", "football", "cooking"}

func TestParseArticleQueryDefaults(t *testing.T) {
	q, err := ParseArticleQuery(url.Values{}, knownTopics)
	require.NoError(t, err)

	assert.Equal(t, "", q.Topic)
	assert.Equal(t, "articles.created_at", q.Column)
	assert.Equal(t, "DESC", q.Order)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 0, q.Offset())
}

func TestParseArticleQueryValid(t *testing.T) {
	tests := []struct {
		name     string
		params   url.Values
		expected Query
	}{
		{
			name:   "topic filter",
			params: url.Values{"topic": {"coding"}},
			expected: Query{
				Topic:  "coding",
				Column: "articles.created_at",
				Order:  "DESC",
				Limit:  10,
				Page:   1,
			},
		},
		{
			name:   "topic is lower cased before the allow list check",
			params: url.Values{"topic": {"CODING"}},
			expected: Query{
				Topic:  "coding",
				Column: "articles.created_at",
				Order:  "DESC",
				Limit:  10,
				Page:   1,
			},
		},
		{
			name:   "sort by votes ascending",
			params: url.Values{"sort_by": {"votes"}, "order": {"asc"}},
			expected: Query{
				Column: "articles.votes",
				Order:  "ASC",
				Limit:  10,
				Page:   1,
			},
		},
		{
			name:   "sort_by and order are case insensitive",
			params: url.Values{"sort_by": {"Title"}, "order": {"Asc"}},
			expected: Query{
				Column: "articles.title",
				Order:  "ASC",
				Limit:  10,
				Page:   1,
			},
		},
		{
			name:   "explicit pagination",
			params: url.Values{"limit": {"5"}, "p": {"3"}},
			expected: Query{
				Column: "articles.created_at",
				Order:  "DESC",
				Limit:  5,
				Page:   3,
			},
		},
		{
			name:   "sort by article_id",
			params: url.Values{"sort_by": {"article_id"}},
			expected: Query{
				Column: "articles.article_id",
				Order:  "DESC",
				Limit:  10,
				Page:   1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseArticleQuery(tt.params, knownTopics)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestParseArticleQueryErrors(t *testing.T) {
	tests := []struct {
		name        string
		params      url.Values
		expectedErr error
	}{
		{
			name:        "unknown query key",
			params:      url.Values{"sortby": {"votes"}},
			expectedErr: ErrUnknownKey,
		},
		{
			name:        "unknown topic",
			params:      url.Values{"topic": {"knitting"}},
			expectedErr: ErrInvalidTopic,
		},
		{
			name:        "unknown sort column",
			params:      url.Values{"sort_by": {"comment_count"}},
			expectedErr: ErrInvalidSortBy,
		},
		{
			name:        "sort column not injectable",
			params:      url.Values{"sort_by": {"votes; DROP TABLE articles"}},
			expectedErr: ErrInvalidSortBy,
		},
		{
			name:        "bad order",
			params:      url.Values{"order": {"sideways"}},
			expectedErr: ErrInvalidOrder,
		},
		{
			name:        "non-numeric limit",
			params:      url.Values{"limit": {"ten"}},
			expectedErr: ErrInvalidLimit,
		},
		{
			name:        "zero limit",
			params:      url.Values{"limit": {"0"}},
			expectedErr: ErrInvalidLimit,
		},
		{
			name:        "negative limit",
			params:      url.Values{"limit": {"-3"}},
			expectedErr: ErrInvalidLimit,
		},
		{
			name:        "non-numeric page",
			params:      url.Values{"p": {"first"}},
			expectedErr: ErrInvalidPage,
		},
		{
			name:        "zero page",
			params:      url.Values{"p": {"0"}},
			expectedErr: ErrInvalidPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArticleQuery(tt.params, knownTopics)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestParseArticleQueryPrecedence(t *testing.T) {
	// Several violations at once; the fixed precedence order decides which
	// error wins.
	tests := []struct {
		name        string
		params      url.Values
		expectedErr error
	}{
		{
			name: "unknown key beats bad topic",
			params: url.Values{
				"bogus": {"1"},
				"topic": {"knitting"},
			},
			expectedErr: ErrUnknownKey,
		},
		{
			name: "bad topic beats bad sort_by",
			params: url.Values{
				"topic":   {"knitting"},
				"sort_by": {"height"},
			},
			expectedErr: ErrInvalidTopic,
		},
		{
			name: "bad sort_by beats bad order",
			params: url.Values{
				"sort_by": {"height"},
				"order":   {"sideways"},
			},
			expectedErr: ErrInvalidSortBy,
		},
		{
			name: "bad order beats bad limit",
			params: url.Values{
				"order": {"sideways"},
				"limit": {"lots"},
			},
			expectedErr: ErrInvalidOrder,
		},
		{
			name: "bad limit beats bad page",
			params: url.Values{
				"limit": {"lots"},
				"p":     {"first"},
			},
			expectedErr: ErrInvalidLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArticleQuery(tt.params, knownTopics)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestParseCommentQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := ParseCommentQuery(url.Values{})
		require.NoError(t, err)
		assert.Equal(t, "comments.created_at", q.Column)
		assert.Equal(t, "DESC", q.Order)
		assert.Equal(t, 10, q.Limit)
		assert.Equal(t, 1, q.Page)
	})

	t.Run("sort by votes", func(t *testing.T) {
		q, err := ParseCommentQuery(url.Values{"sort_by": {"votes"}, "order": {"asc"}})
		require.NoError(t, err)
		assert.Equal(t, "comments.votes", q.Column)
		assert.Equal(t, "ASC", q.Order)
	})

	t.Run("topic is not a recognized comment key", func(t *testing.T) {
		_, err := ParseCommentQuery(url.Values{"topic": {"coding"}})
		assert.ErrorIs(t, err, ErrUnknownCommentKey)
	})

	t.Run("unknown key uses the comment specific message", func(t *testing.T) {
		_, err := ParseCommentQuery(url.Values{"bogus": {"1"}})
		assert.ErrorIs(t, err, ErrUnknownCommentKey)
		assert.Equal(t, "invalid query", err.Error())
	})

	t.Run("article sort columns are rejected", func(t *testing.T) {
		_, err := ParseCommentQuery(url.Values{"sort_by": {"title"}})
		assert.ErrorIs(t, err, ErrInvalidSortBy)
	})
}

func TestQueryOffset(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		page     int
		expected int
	}{
		{name: "first page", limit: 10, page: 1, expected: 0},
		{name: "second page", limit: 10, page: 2, expected: 10},
		{name: "third page of five", limit: 5, page: 3, expected: 10},
		{name: "large page", limit: 25, page: 40, expected: 975},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Query{Limit: tt.limit, Page: tt.page}
			assert.Equal(t, tt.expected, q.Offset())
		})
	}
}

func TestIsValidationError(t *testing.T) {
	for _, err := range []error{
		ErrInvalidTopic,
		ErrInvalidSortBy,
		ErrInvalidOrder,
		ErrInvalidLimit,
		ErrInvalidPage,
		ErrUnknownKey,
		ErrUnknownCommentKey,
	} {
		assert.True(t, IsValidationError(err), "expected %v to be a validation error", err)
	}

	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(assert.AnError))
}

func TestAllowListsMatchSortableColumns(t *testing.T) {
	// Every allow-listed key resolves to a qualified column on its own table.
	for key, column := range ArticleColumns {
		assert.Contains(t, column, "articles.", "article sort key %q", key)
	}
	for key, column := range CommentColumns {
		assert.Contains(t, column, "comments.", "comment sort key %q", key)
	}
}
