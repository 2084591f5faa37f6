package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wrenhall/newsdesk-api/internal/api/shared"
	"github.com/wrenhall/newsdesk-api/internal/domain"
)

// getPathID extracts an integer identifier from the URL path parameters.
// A value that fails to parse as an integer is rejected with
// domain.ErrInvalidID before any storage access, regardless of operation.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidID, paramName, pathParam)
	}

	return id, nil
}

// updateVotesRequest represents the request body for a vote increment.
// IncVotes is a pointer so a missing key is distinguishable from zero.
type updateVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// decodeVoteDelta reads the vote delta from a PATCH body. A missing inc_votes
// key is a missing-required-fields failure; a value that is not an integer is
// an invalid-data-type failure. Both are detected before any storage access.
func decodeVoteDelta(r *http.Request) (int, error) {
	var req updateVotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return 0, fmt.Errorf("%w: inc_votes", domain.ErrInvalidDataType)
		}
		return 0, fmt.Errorf("%w: malformed body", domain.ErrValidation)
	}

	if req.IncVotes == nil {
		return 0, domain.ErrMissingFields
	}

	return *req.IncVotes, nil
}
