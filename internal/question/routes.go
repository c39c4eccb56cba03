package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminRoutes covers the moderation surface mounted under /admin/questions.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.GenerateQuestions)
	r.Get("/pending", h.ListPending)
	r.Get("/approved", h.ListApproved)
	r.Get("/deactivated", h.ListDeactivated)
	r.Post("/{id}/approve", h.Approve)
	r.Post("/{id}/deactivate", h.Deactivate)
	r.Post("/{id}/make-pending", h.MakePending)
	r.Delete("/{id}/reject", h.Reject)

	return r
}
