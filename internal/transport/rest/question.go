package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/internal/service/question"
)

type questionService interface {
	Ask(ctx context.Context, input question.AskInput) (domain.Question, error)
	Get(ctx context.Context, id int64, rawPage string) (*question.Detail, error)
	AddAnswer(ctx context.Context, questionID int64, input question.AnswerInput) (*question.Placement, error)
	Delete(ctx context.Context, id int64) error
}

// QuestionHandler serves the question page, answering and asking.
type QuestionHandler struct {
	svc     questionService
	avatars avatarURLs
	log     *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService, avatars avatarURLs, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, avatars: avatars, log: logger.With("handler", "question")}
}

type questionDetailResponse struct {
	Question questionView         `json:"question"`
	Answers  pageView[answerView] `json:"answers"`
}

type askFormResponse struct {
	MinTitle   int `json:"minTitle"`
	MaxTitle   int `json:"maxTitle"`
	MinText    int `json:"minText"`
	MaxTags    int `json:"maxTags"`
	MaxTagSize int `json:"maxTagLength"`
}

// Detail handles GET /question/{id}.
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	detail, err := h.svc.Get(r.Context(), id, r.URL.Query().Get("page"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questionDetailResponse{
		Question: toQuestionView(detail.Question, h.avatars),
		Answers: toPageView(detail.Answers, func(c domain.AnswerCard) answerView {
			return toAnswerView(c, h.avatars)
		}),
	})
}

// Answer handles POST /question/{id} and redirects to the page holding the
// new answer.
func (h *QuestionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}

	placement, err := h.svc.AddAnswer(r.Context(), id, question.AnswerInput{Text: r.PostForm.Get("text")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	redirect(w, r, fmt.Sprintf("/question/%d?page=%d#answer%d", id, placement.Page, placement.Answer.ID))
}

// AskForm handles GET /ask.
func (h *QuestionHandler) AskForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, askFormResponse{
		MinTitle:   domain.MinQuestionTitle,
		MaxTitle:   domain.MaxQuestionTitle,
		MinText:    domain.MinQuestionText,
		MaxTags:    domain.MaxTagsPerQuestion,
		MaxTagSize: domain.MaxTagLength,
	})
}

// Ask handles POST /ask and redirects to the new question.
func (h *QuestionHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}

	q, err := h.svc.Ask(r.Context(), question.AskInput{
		Title: r.PostForm.Get("title"),
		Text:  r.PostForm.Get("text"),
		Tags:  r.PostForm.Get("tags"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	redirect(w, r, fmt.Sprintf("/question/%d", q.ID))
}

// Delete handles DELETE /question/{id}.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
