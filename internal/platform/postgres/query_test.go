package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wrenhall/newsdesk-api/internal/listing"
)

func defaultArticleQuery() listing.Query {
	return listing.Query{
		Column: "articles.created_at",
		Order:  "DESC",
		Limit:  10,
		Page:   1,
	}
}

func TestBuildArticleListQuery(t *testing.T) {
	t.Run("without topic filter", func(t *testing.T) {
		query, args := buildArticleListQuery(defaultArticleQuery())

		assert.Contains(t, query, "LEFT JOIN comments ON comments.article_id = articles.article_id")
		assert.Contains(t, query, "COUNT(comments.comment_id) AS comment_count")
		assert.Contains(t, query, "GROUP BY articles.article_id")
		assert.Contains(t, query, "ORDER BY articles.created_at DESC")
		assert.Contains(t, query, "LIMIT $1 OFFSET $2")
		assert.NotContains(t, query, "WHERE")
		assert.Equal(t, []any{10, 0}, args)
	})

	t.Run("with topic filter", func(t *testing.T) {
		q := defaultArticleQuery()
		q.Topic = "coding"
		query, args := buildArticleListQuery(q)

		assert.Contains(t, query, "WHERE articles.topic = $1")
		assert.Contains(t, query, "LIMIT $2 OFFSET $3")
		assert.Equal(t, []any{"coding", 10, 0}, args)
	})

	t.Run("pagination pushes the offset down", func(t *testing.T) {
		q := defaultArticleQuery()
		q.Limit = 5
		q.Page = 3
		_, args := buildArticleListQuery(q)

		assert.Equal(t, []any{5, 10}, args)
	})

	t.Run("validated sort column and direction are interpolated", func(t *testing.T) {
		q := defaultArticleQuery()
		q.Column = "articles.votes"
		q.Order = "ASC"
		query, _ := buildArticleListQuery(q)

		assert.Contains(t, query, "ORDER BY articles.votes ASC")
	})
}

func TestBuildArticleCountQuery(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		query, args := buildArticleCountQuery(defaultArticleQuery())
		assert.Equal(t, "SELECT COUNT(*) FROM articles", query)
		assert.Nil(t, args)
	})

	t.Run("topic filter applies, pagination does not", func(t *testing.T) {
		q := defaultArticleQuery()
		q.Topic = "football"
		q.Page = 7
		query, args := buildArticleCountQuery(q)

		assert.Equal(t, "SELECT COUNT(*) FROM articles WHERE articles.topic = $1", query)
		assert.Equal(t, []any{"football"}, args)
		assert.NotContains(t, query, "LIMIT")
	})
}

func TestBuildCommentListQuery(t *testing.T) {
	q := listing.Query{
		Column: "comments.votes",
		Order:  "ASC",
		Limit:  10,
		Page:   2,
	}
	query, args := buildCommentListQuery(42, q)

	assert.Contains(t, query, "WHERE comments.article_id = $1")
	assert.Contains(t, query, "ORDER BY comments.votes ASC")
	assert.Contains(t, query, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{int64(42), 10, 10}, args)
}
