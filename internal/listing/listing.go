// Package listing validates the query parameters accepted by the list
// endpoints and normalizes them into a filter/sort/pagination descriptor.
package listing

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Validation errors for list query parameters. The messages are the stable
// strings returned to clients; the two unknown-key variants are deliberately
// distinct between the article and comment endpoints.
var (
	// ErrInvalidTopic is returned when the topic filter names an unknown topic.
	ErrInvalidTopic = errors.New("invalid topic query")

	// ErrInvalidSortBy is returned when sort_by names a column outside the
	// resource's sortable set.
	ErrInvalidSortBy = errors.New("invalid sort_by query")

	// ErrInvalidOrder is returned when order is neither asc nor desc.
	ErrInvalidOrder = errors.New("order must be asc or desc")

	// ErrInvalidLimit is returned when limit does not parse as a positive integer.
	ErrInvalidLimit = errors.New("invalid limit query")

	// ErrInvalidPage is returned when p does not parse as a positive integer.
	ErrInvalidPage = errors.New("invalid page query")

	// ErrUnknownKey is returned by the article listing for unrecognized
	// query keys.
	ErrUnknownKey = errors.New("invalid query key")

	// ErrUnknownCommentKey is the comment listing's unrecognized-key error.
	ErrUnknownCommentKey = errors.New("invalid query")
)

// Pagination defaults applied when the corresponding parameter is absent.
const (
	DefaultLimit = 10
	DefaultPage  = 1
	DefaultOrder = "DESC"

	defaultSortKey = "created_at"
)

// ArticleColumns maps the sortable keys accepted by the article listing to
// the qualified columns they order by. The key set is the sort_by allow-list;
// only values drawn from this map may ever be interpolated into SQL text.
var ArticleColumns = map[string]string{
	"article_id": "articles.article_id",
	"title":      "articles.title",
	"topic":      "articles.topic",
	"author":     "articles.author",
	"body":       "articles.body",
	"votes":      "articles.votes",
	"created_at": "articles.created_at",
}

// CommentColumns is the comment listing's counterpart of ArticleColumns.
var CommentColumns = map[string]string{
	"comment_id": "comments.comment_id",
	"body":       "comments.body",
	"author":     "comments.author",
	"votes":      "comments.votes",
	"created_at": "comments.created_at",
}

// Query is the normalized descriptor produced by parsing and validating the
// raw query parameters of a list request. Column and Order hold tokens that
// have already passed the closed allow-list checks and are therefore safe to
// interpolate into an ORDER BY clause.
type Query struct {
	// Topic is the equality filter on article topic; empty means no filter.
	Topic string

	// Column is the fully qualified sort column.
	Column string

	// Order is "ASC" or "DESC".
	Order string

	// Limit is the page size, always positive.
	Limit int

	// Page is the 1-based page number, always positive.
	Page int
}

// Offset returns the row offset implied by Limit and Page.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParseArticleQuery validates the article listing's query parameters against
// the closed sets of known topics and sortable columns, failing fast on the
// first violation in fixed precedence order: unknown key, topic, sort_by,
// order, limit, page. The topic slugs are supplied by the caller so the
// allow-list tracks the live contents of the topics table rather than a
// hardcoded literal.
func ParseArticleQuery(values url.Values, topics []string) (Query, error) {
	if err := checkKeys(values, articleKeys, ErrUnknownKey); err != nil {
		return Query{}, err
	}

	q := Query{
		Column: ArticleColumns[defaultSortKey],
		Order:  DefaultOrder,
		Limit:  DefaultLimit,
		Page:   DefaultPage,
	}

	if raw := values.Get("topic"); raw != "" {
		topic := strings.ToLower(raw)
		if !containsSlug(topics, topic) {
			return Query{}, ErrInvalidTopic
		}
		q.Topic = topic
	}

	if err := parseCommon(values, ArticleColumns, &q); err != nil {
		return Query{}, err
	}
	return q, nil
}

// ParseCommentQuery validates the comment listing's query parameters. The
// comment listing has no topic filter and reports unrecognized keys with its
// own message.
func ParseCommentQuery(values url.Values) (Query, error) {
	if err := checkKeys(values, commentKeys, ErrUnknownCommentKey); err != nil {
		return Query{}, err
	}

	q := Query{
		Column: CommentColumns[defaultSortKey],
		Order:  DefaultOrder,
		Limit:  DefaultLimit,
		Page:   DefaultPage,
	}

	if err := parseCommon(values, CommentColumns, &q); err != nil {
		return Query{}, err
	}
	return q, nil
}

var articleKeys = map[string]bool{
	"topic":   true,
	"sort_by": true,
	"order":   true,
	"limit":   true,
	"p":       true,
}

var commentKeys = map[string]bool{
	"sort_by": true,
	"order":   true,
	"limit":   true,
	"p":       true,
}

func checkKeys(values url.Values, recognized map[string]bool, unknownErr error) error {
	for key := range values {
		if !recognized[key] {
			return unknownErr
		}
	}
	return nil
}

// parseCommon handles the sort_by, order, limit and p parameters shared by
// both listings, in their precedence order.
func parseCommon(values url.Values, columns map[string]string, q *Query) error {
	if raw := values.Get("sort_by"); raw != "" {
		column, ok := columns[strings.ToLower(raw)]
		if !ok {
			return ErrInvalidSortBy
		}
		q.Column = column
	}

	if raw := values.Get("order"); raw != "" {
		order := strings.ToUpper(raw)
		if order != "ASC" && order != "DESC" {
			return ErrInvalidOrder
		}
		q.Order = order
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return ErrInvalidLimit
		}
		q.Limit = limit
	}

	if raw := values.Get("p"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page <= 0 {
			return ErrInvalidPage
		}
		q.Page = page
	}

	return nil
}

func containsSlug(slugs []string, slug string) bool {
	for _, s := range slugs {
		if s == slug {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err is one of the listing validation
// errors. Handlers use this to map the error to a 400 response carrying the
// error's own message.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTopic) ||
		errors.Is(err, ErrInvalidSortBy) ||
		errors.Is(err, ErrInvalidOrder) ||
		errors.Is(err, ErrInvalidLimit) ||
		errors.Is(err, ErrInvalidPage) ||
		errors.Is(err, ErrUnknownKey) ||
		errors.Is(err, ErrUnknownCommentKey)
}
