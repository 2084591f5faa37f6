package postgres

import (
	"fmt"
	"strings"

	"github.com/wrenhall/newsdesk-api/internal/listing"
)

// This file is the only place user-influenced tokens are interpolated into
// SQL text. The sort column and direction in a listing.Query have already
// passed the closed allow-list checks in the listing package; every other
// value travels as a bind parameter.

// buildArticleListQuery assembles the article listing SELECT: comments are
// left-joined and counted per article, the topic filter is applied only when
// present, and pagination is pushed down as LIMIT/OFFSET. Returns the query
// text and its bind arguments.
func buildArticleListQuery(q listing.Query) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT articles.article_id, articles.title, articles.body,
		articles.topic, articles.author, articles.votes, articles.created_at,
		COUNT(comments.comment_id) AS comment_count
	FROM articles
	LEFT JOIN comments ON comments.article_id = articles.article_id`)

	var args []any
	if q.Topic != "" {
		args = append(args, q.Topic)
		fmt.Fprintf(&sb, "\n\tWHERE articles.topic = $%d", len(args))
	}

	sb.WriteString("\n\tGROUP BY articles.article_id")
	fmt.Fprintf(&sb, "\n\tORDER BY %s %s", q.Column, q.Order)

	args = append(args, q.Limit)
	fmt.Fprintf(&sb, "\n\tLIMIT $%d", len(args))
	args = append(args, q.Offset())
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	return sb.String(), args
}

// buildArticleCountQuery assembles the companion total-count query: it honors
// the topic filter but ignores sort and pagination, so total_count stays
// invariant across pages of the same filter.
func buildArticleCountQuery(q listing.Query) (string, []any) {
	query := "SELECT COUNT(*) FROM articles"
	if q.Topic != "" {
		return query + " WHERE articles.topic = $1", []any{q.Topic}
	}
	return query, nil
}

// buildCommentListQuery assembles the comment listing SELECT for one article.
func buildCommentListQuery(articleID int64, q listing.Query) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT comments.comment_id, comments.body, comments.article_id,
		comments.author, comments.votes, comments.created_at
	FROM comments
	WHERE comments.article_id = $1`)

	args := []any{articleID}
	fmt.Fprintf(&sb, "\n\tORDER BY %s %s", q.Column, q.Order)

	args = append(args, q.Limit)
	fmt.Fprintf(&sb, "\n\tLIMIT $%d", len(args))
	args = append(args, q.Offset())
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	return sb.String(), args
}
