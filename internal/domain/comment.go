package domain

import (
	"errors"
	"strings"
	"time"
)

// Comment-specific validation errors.
var (
	// ErrCommentBodyEmpty is returned when a comment's body is empty.
	ErrCommentBodyEmpty = errors.New("comment body cannot be empty")

	// ErrCommentAuthorEmpty is returned when a comment's author is empty.
	ErrCommentAuthorEmpty = errors.New("comment author cannot be empty")
)

// Comment represents a comment posted on an article. The identifier, vote
// count and creation timestamp are generated by the store on insert.
type Comment struct {
	CommentID int64     `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment builds a Comment targeting the given article, ready for
// insertion. Returns an error if any field fails validation.
func NewComment(articleID int64, author, body string) (*Comment, error) {
	comment := &Comment{
		Body:      body,
		ArticleID: articleID,
		Author:    author,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Body) == "" {
		return ErrCommentBodyEmpty
	}
	if strings.TrimSpace(c.Author) == "" {
		return ErrCommentAuthorEmpty
	}
	return nil
}
