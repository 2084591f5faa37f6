package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	t.Run("valid article", func(t *testing.T) {
		article, err := NewArticle("butter_bridge", "Running a node app", "some text", "coding")
		require.NoError(t, err)
		assert.Equal(t, "butter_bridge", article.Author)
		assert.Equal(t, int64(0), article.ArticleID)
		assert.Equal(t, 0, article.Votes)
		assert.True(t, article.CreatedAt.IsZero())
	})

	tests := []struct {
		name        string
		author      string
		title       string
		body        string
		topic       string
		expectedErr error
	}{
		{name: "empty title", author: "a", title: "", body: "b", topic: "t", expectedErr: ErrArticleTitleEmpty},
		{name: "whitespace title", author: "a", title: "   ", body: "b", topic: "t", expectedErr: ErrArticleTitleEmpty},
		{name: "empty body", author: "a", title: "t", body: "", topic: "t", expectedErr: ErrArticleBodyEmpty},
		{name: "empty topic", author: "a", title: "t", body: "b", topic: "", expectedErr: ErrArticleTopicEmpty},
		{name: "empty author", author: "", title: "t", body: "b", topic: "t", expectedErr: ErrArticleAuthorEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArticle(tt.author, tt.title, tt.body, tt.topic)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestNewComment(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		comment, err := NewComment(7, "icellusedkars", "well said")
		require.NoError(t, err)
		assert.Equal(t, int64(7), comment.ArticleID)
		assert.Equal(t, "icellusedkars", comment.Author)
		assert.Equal(t, 0, comment.Votes)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := NewComment(7, "icellusedkars", " ")
		assert.ErrorIs(t, err, ErrCommentBodyEmpty)
	})

	t.Run("empty author", func(t *testing.T) {
		_, err := NewComment(7, "", "well said")
		assert.ErrorIs(t, err, ErrCommentAuthorEmpty)
	})
}

func TestNewTopic(t *testing.T) {
	t.Run("slug is trimmed and lower cased", func(t *testing.T) {
		topic, err := NewTopic("  Coding ", "all things code")
		require.NoError(t, err)
		assert.Equal(t, "coding", topic.Slug)
	})

	t.Run("empty slug", func(t *testing.T) {
		_, err := NewTopic("   ", "desc")
		assert.ErrorIs(t, err, ErrTopicSlugEmpty)
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := NewTopic("coding", "")
		assert.ErrorIs(t, err, ErrTopicDescriptionEmpty)
	})
}

func TestInvalidIDWrapsInvalidDataType(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidID, ErrInvalidDataType)
}
