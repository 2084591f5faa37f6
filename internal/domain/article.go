package domain

import (
	"errors"
	"strings"
	"time"
)

// Article-specific validation errors.
var (
	// ErrArticleTitleEmpty is returned when an article's title is empty.
	ErrArticleTitleEmpty = errors.New("article title cannot be empty")

	// ErrArticleBodyEmpty is returned when an article's body is empty.
	ErrArticleBodyEmpty = errors.New("article body cannot be empty")

	// ErrArticleTopicEmpty is returned when an article's topic is empty.
	ErrArticleTopicEmpty = errors.New("article topic cannot be empty")

	// ErrArticleAuthorEmpty is returned when an article's author is empty.
	ErrArticleAuthorEmpty = errors.New("article author cannot be empty")
)

// Article represents a published article. The identifier, vote count and
// creation timestamp are generated by the store on insert. CommentCount is
// a derived attribute, recomputed on every read by joining against comments;
// it is never persisted.
type Article struct {
	ArticleID    int64     `json:"article_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewArticle builds an Article from caller-supplied fields, ready for
// insertion. Identifier, votes and timestamp are left for the store to
// assign. Returns an error if any field fails validation.
func NewArticle(author, title, body, topic string) (*Article, error) {
	article := &Article{
		Title:  title,
		Body:   body,
		Topic:  topic,
		Author: author,
	}

	if err := article.Validate(); err != nil {
		return nil, err
	}

	return article, nil
}

// Validate checks if the Article has valid data.
// Returns an error if any field fails validation.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrArticleTitleEmpty
	}
	if strings.TrimSpace(a.Body) == "" {
		return ErrArticleBodyEmpty
	}
	if strings.TrimSpace(a.Topic) == "" {
		return ErrArticleTopicEmpty
	}
	if strings.TrimSpace(a.Author) == "" {
		return ErrArticleAuthorEmpty
	}
	return nil
}
