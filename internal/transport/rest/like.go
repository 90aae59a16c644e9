package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

type engagementService interface {
	LikeQuestion(ctx context.Context, questionID int64) (int, error)
	LikeAnswer(ctx context.Context, answerID int64) (int, error)
}

// LikeHandler serves the like endpoints.
type LikeHandler struct {
	svc engagementService
	log *slog.Logger
}

// NewLikeHandler creates a LikeHandler.
func NewLikeHandler(svc engagementService, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{svc: svc, log: logger.With("handler", "like")}
}

type likeResponse struct {
	Likes        int  `json:"likes,omitempty"`
	AlreadyLiked bool `json:"alreadyLiked,omitempty"`
}

// Question handles POST /question/{id}/like.
func (h *LikeHandler) Question(w http.ResponseWriter, r *http.Request) {
	h.like(w, r, h.svc.LikeQuestion)
}

// Answer handles POST /answer/{id}/like.
func (h *LikeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	h.like(w, r, h.svc.LikeAnswer)
}

// like reports a repeated like as a no-op rather than an error.
func (h *LikeHandler) like(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (int, error)) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	likes, err := fn(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusOK, likeResponse{AlreadyLiked: true})
	case err != nil:
		handleError(h.log, w, r, err)
	default:
		writeJSON(w, http.StatusOK, likeResponse{Likes: likes})
	}
}
