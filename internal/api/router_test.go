package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/wrenhall/newsdesk-api/internal/api"
	"github.com/wrenhall/newsdesk-api/internal/domain"
	"github.com/wrenhall/newsdesk-api/internal/mocks"
	"github.com/wrenhall/newsdesk-api/internal/service"
)

// testEnv wires the handlers to mock-backed services behind the same routes
// the server mounts.
type testEnv struct {
	router   chi.Router
	articles *mocks.MockArticleStore
	comments *mocks.MockCommentStore
	topics   *mocks.MockTopicStore
	users    *mocks.MockUserStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		articles: mocks.NewMockArticleStore(),
		comments: mocks.NewMockCommentStore(),
		topics:   mocks.NewMockTopicStore("coding", "football", "cooking"),
		users:    mocks.NewMockUserStore(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	articleService := service.NewArticleService(env.articles, env.topics, logger)
	commentService := service.NewCommentService(env.comments, env.articles, logger)

	articleHandler := api.NewArticleHandler(articleService, logger)
	commentHandler := api.NewCommentHandler(commentService, logger)
	topicHandler := api.NewTopicHandler(env.topics, logger)
	userHandler := api.NewUserHandler(env.users, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/topics", topicHandler.ListTopics)
		r.Post("/topics", topicHandler.CreateTopic)

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{username}", userHandler.GetUser)

		r.Get("/articles", articleHandler.ListArticles)
		r.Post("/articles", articleHandler.CreateArticle)
		r.Get("/articles/{article_id}", articleHandler.GetArticle)
		r.Patch("/articles/{article_id}", articleHandler.UpdateArticleVotes)
		r.Delete("/articles/{article_id}", articleHandler.DeleteArticle)

		r.Get("/articles/{article_id}/comments", commentHandler.ListComments)
		r.Post("/articles/{article_id}/comments", commentHandler.CreateComment)

		r.Patch("/comments/{comment_id}", commentHandler.UpdateCommentVotes)
		r.Delete("/comments/{comment_id}", commentHandler.DeleteComment)
	})

	env.router = r
	return env
}

// seedArticle inserts an article directly into the mock store.
func (env *testEnv) seedArticle(t *testing.T, title, topic string) *domain.Article {
	t.Helper()
	article, err := domain.NewArticle("butter_bridge", title, "some text", topic)
	require.NoError(t, err)
	require.NoError(t, env.articles.Create(context.Background(), article))
	return article
}

// seedComment inserts a comment directly into the mock store.
func (env *testEnv) seedComment(t *testing.T, articleID int64) *domain.Comment {
	t.Helper()
	comment, err := domain.NewComment(articleID, "icellusedkars", "well said")
	require.NoError(t, err)
	require.NoError(t, env.comments.Create(context.Background(), comment))
	return comment
}

// do performs a request against the router and returns the recorder.
func (env *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorded JSON response into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// errorMessage extracts the error field from a recorded error response.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &resp)
	return resp.Error
}
