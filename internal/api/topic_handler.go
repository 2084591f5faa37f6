package api

import (
	"log/slog"
	"net/http"

	"github.com/wrenhall/newsdesk-api/internal/api/shared"
	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/platform/logger"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// createTopicRequest represents the request body for creating a topic.
type createTopicRequest struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topicStore store.TopicStore
	logger     *slog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topicStore store.TopicStore, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		panic("logger cannot be nil for TopicHandler")
	}

	return &TopicHandler{
		topicStore: topicStore,
		logger:     logger.With(slog.String("component", "topic_handler")),
	}
}

// ListTopics handles GET /api/topics requests.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list topics")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]*domain.Topic{"topics": topics})
}

// CreateTopic handles POST /api/topics requests.
// Creating a topic extends the topic filter's allow-list immediately, since
// that list is read from storage per request.
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req createTopicRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Slug == nil || req.Description == nil {
		HandleAPIError(w, r, domain.ErrMissingFields, "")
		return
	}

	topic, err := domain.NewTopic(*req.Slug, *req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.topicStore.Create(r.Context(), topic); err != nil {
		HandleAPIError(w, r, err, "Failed to create topic")
		return
	}

	log.Info("topic created", slog.String("slug", topic.Slug))
	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]*domain.Topic{"topic": topic})
}
