package domain

import (
	"errors"
	"strings"
)

// Topic-specific validation errors.
var (
	// ErrTopicSlugEmpty is returned when a topic's slug is empty.
	ErrTopicSlugEmpty = errors.New("topic slug cannot be empty")

	// ErrTopicDescriptionEmpty is returned when a topic's description is empty.
	ErrTopicDescriptionEmpty = errors.New("topic description cannot be empty")
)

// Topic is a category articles are filed under. The slug is the primary key
// and doubles as the value accepted by the article listing's topic filter.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// NewTopic builds a Topic, normalizing the slug to lower case.
// Returns an error if any field fails validation.
func NewTopic(slug, description string) (*Topic, error) {
	topic := &Topic{
		Slug:        strings.ToLower(strings.TrimSpace(slug)),
		Description: description,
	}

	if err := topic.Validate(); err != nil {
		return nil, err
	}

	return topic, nil
}

// Validate checks if the Topic has valid data.
func (t *Topic) Validate() error {
	if t.Slug == "" {
		return ErrTopicSlugEmpty
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrTopicDescriptionEmpty
	}
	return nil
}
