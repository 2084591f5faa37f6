package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wrenhall/newsdesk-api/internal/api"
	apimiddleware "github.com/wrenhall/newsdesk-api/internal/api/middleware"
	"github.com/wrenhall/newsdesk-api/internal/config"
	"github.com/wrenhall/newsdesk-api/internal/platform/postgres"
	"github.com/wrenhall/newsdesk-api/internal/service"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// application bundles the configuration, logger, database handle and wired
// services the server runs on.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	articleService service.ArticleService
	commentService service.CommentService
	topicStore     store.TopicStore
	userStore      store.UserStore
}

// newApplication wires stores and services onto the given database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	articleStore := postgres.NewPostgresArticleStore(db, logger)
	commentStore := postgres.NewPostgresCommentStore(db, logger)
	topicStore := postgres.NewPostgresTopicStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		articleService: service.NewArticleService(articleStore, topicStore, logger),
		commentService: service.NewCommentService(commentStore, articleStore, logger),
		topicStore:     topicStore,
		userStore:      userStore,
	}
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.NewTraceMiddleware(app.logger))

	articleHandler := api.NewArticleHandler(app.articleService, app.logger)
	commentHandler := api.NewCommentHandler(app.commentService, app.logger)
	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)

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

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
