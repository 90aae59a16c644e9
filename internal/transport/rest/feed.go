package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/internal/service/feed"
)

type feedService interface {
	View(ctx context.Context, fq domain.FeedQuery, rawPage string) (*feed.View, error)
}

// FeedHandler serves the question listings.
type FeedHandler struct {
	svc     feedService
	avatars avatarURLs
	log     *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, avatars avatarURLs, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, avatars: avatars, log: logger.With("handler", "feed")}
}

type feedResponse struct {
	Mode        string                 `json:"mode"`
	Tag         string                 `json:"tag,omitempty"`
	Questions   pageView[questionView] `json:"questions"`
	PopularTags []tagView              `json:"popularTags"`
}

// New handles GET /.
func (h *FeedHandler) New(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.FeedQuery{Mode: domain.FeedNew})
}

// Hot handles GET /hot.
func (h *FeedHandler) Hot(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.FeedQuery{Mode: domain.FeedHot})
}

// Tag handles GET /tag/{name}.
func (h *FeedHandler) Tag(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	h.serve(w, r, domain.FeedQuery{Mode: domain.FeedTag, Tag: name})
}

// pathParam returns the decoded value of a route parameter. chi matches
// against r.URL.RawPath when it is set, which leaves non-canonical escapes
// such as %2D or lowercase hex in the value.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}

func (h *FeedHandler) serve(w http.ResponseWriter, r *http.Request, fq domain.FeedQuery) {
	view, err := h.svc.View(r.Context(), fq, r.URL.Query().Get("page"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feedResponse{
		Mode: fq.Mode.String(),
		Tag:  fq.Tag,
		Questions: toPageView(view.Page, func(c domain.QuestionCard) questionView {
			return toQuestionView(c, h.avatars)
		}),
		PopularTags: toTagViews(view.PopularTags),
	})
}
