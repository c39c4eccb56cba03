package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quizmentor/quizmentor-lambda/internal/answer"
	"github.com/quizmentor/quizmentor-lambda/internal/attempt"
	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"github.com/quizmentor/quizmentor-lambda/internal/middlewares"
	"github.com/quizmentor/quizmentor-lambda/internal/question"
	"github.com/quizmentor/quizmentor-lambda/internal/topic"
)

type RouterConfig struct {
	TopicHandler    *topic.Handler
	QuestionHandler *question.Handler
	AttemptHandler  *attempt.Handler
	AnswerHandler   *answer.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{
			"status":    "UP",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/topics", cfg.TopicHandler.ListTopics)

		r.Post("/quiz/start", cfg.AttemptHandler.StartAttempt)
		r.Get("/quiz/attempts/active", cfg.AttemptHandler.GetActiveAttempt)
		r.Post("/quiz/attempts/{id}/abandon", cfg.AttemptHandler.AbandonAttempt)
		r.Get("/quiz/{topicId}/questions", cfg.QuestionHandler.ListEligibleQuestions)

		r.Post("/answers", cfg.AnswerHandler.SubmitAnswer)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Mount("/questions", question.AdminRoutes(cfg.QuestionHandler))
	})

	return r
}
