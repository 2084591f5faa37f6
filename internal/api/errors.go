package api

import (
	"errors"
	"net/http"

	"github.com/wrenhall/newsdesk-api/internal/api/shared"
	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/listing"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors: query validation, malformed bodies, bad identifiers,
	// broken references
	case listing.IsValidationError(err),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidDataType),
		errors.Is(err, store.ErrForeignKeyViolation),
		errors.Is(err, store.ErrInvalidType),
		isEntityValidationError(err):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the stable, user-facing message for the error
// kind. Raw storage errors are never echoed back; each classified kind has
// one fixed string.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Listing validation errors carry their own stable messages. The
	// article and comment listings use distinct unknown-key strings.
	case errors.Is(err, listing.ErrInvalidTopic):
		return listing.ErrInvalidTopic.Error()
	case errors.Is(err, listing.ErrInvalidSortBy):
		return listing.ErrInvalidSortBy.Error()
	case errors.Is(err, listing.ErrInvalidOrder):
		return listing.ErrInvalidOrder.Error()
	case errors.Is(err, listing.ErrInvalidLimit):
		return listing.ErrInvalidLimit.Error()
	case errors.Is(err, listing.ErrInvalidPage):
		return listing.ErrInvalidPage.Error()
	case errors.Is(err, listing.ErrUnknownKey):
		return listing.ErrUnknownKey.Error()
	case errors.Is(err, listing.ErrUnknownCommentKey):
		return listing.ErrUnknownCommentKey.Error()

	// Malformed bodies and identifiers
	case errors.Is(err, domain.ErrMissingFields):
		return "posted body missing required fields"
	case errors.Is(err, domain.ErrInvalidDataType),
		errors.Is(err, store.ErrInvalidType):
		return "input uses invalid data type"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request format"

	// Broken references on insert
	case errors.Is(err, store.ErrForeignKeyViolation):
		return "foreign key violation"

	// Not found errors
	case errors.Is(err, store.ErrArticleNotFound):
		return "article not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return "comment not found"
	case errors.Is(err, store.ErrTopicNotFound):
		return "topic not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"
	case store.IsNotFoundError(err):
		return "not found"

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return "already exists"

	// Entity validation failures surface their own field message
	case isEntityValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// isEntityValidationError reports whether err is one of the domain entities'
// field validation errors (empty title, body, slug and so on).
func isEntityValidationError(err error) bool {
	return errors.Is(err, domain.ErrArticleTitleEmpty) ||
		errors.Is(err, domain.ErrArticleBodyEmpty) ||
		errors.Is(err, domain.ErrArticleTopicEmpty) ||
		errors.Is(err, domain.ErrArticleAuthorEmpty) ||
		errors.Is(err, domain.ErrCommentBodyEmpty) ||
		errors.Is(err, domain.ErrCommentAuthorEmpty) ||
		errors.Is(err, domain.ErrTopicSlugEmpty) ||
		errors.Is(err, domain.ErrTopicDescriptionEmpty)
}

// HandleAPIError writes the response for err: the status from
// MapErrorToStatusCode and the stable message from GetSafeErrorMessage,
// logging the full error alongside. fallbackMessage, when non-empty,
// replaces the generic message for unclassified (5xx) failures.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)

	if statusCode == http.StatusInternalServerError && fallbackMessage != "" {
		safeMessage = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}
