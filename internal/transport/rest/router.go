// Package rest exposes the forum over HTTP. Pages are served as JSON views;
// form posts answer with 303 redirects like a classic web form flow.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/askme-backend/internal/config"
	"github.com/heartmarshall/askme-backend/internal/transport/middleware"
)

// LoginPath is where anonymous users are sent for routes that need a user.
const LoginPath = "/login"

type tokenValidator interface {
	ValidateAccessToken(token string) (int64, string, error)
}

// Handlers bundles the route handlers.
type Handlers struct {
	Feed     *FeedHandler
	Question *QuestionHandler
	Like     *LikeHandler
	Account  *AccountHandler
	Health   *HealthHandler
}

// RouterConfig holds what the router needs besides the handlers.
type RouterConfig struct {
	Log         *slog.Logger
	Sessions    *scs.SessionManager
	Tokens      tokenValidator
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	RateLimiter *middleware.RateLimiter // nil disables limiting

	// Avatars are served from AvatarDir under AvatarURLPrefix.
	AvatarDir       string
	AvatarURLPrefix string
}

// NewRouter wires every route.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(cfg.Log),
		middleware.CORS(cfg.CORS),
		cfg.Sessions.LoadAndSave,
		middleware.Identity(cfg.Sessions, cfg.Tokens),
		middleware.Logger(cfg.Log),
	))

	var limit middleware.Middleware
	if cfg.RateLimiter != nil && cfg.RateLimit.Enabled {
		limit = cfg.RateLimiter.Limit(cfg.RateLimit.Writes, cfg.RateLimit.Window)
	}
	writes := middleware.Chain(limit)
	requireUser := middleware.RequireUser(LoginPath)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	if cfg.AvatarURLPrefix != "" {
		fs := http.StripPrefix(cfg.AvatarURLPrefix, http.FileServer(http.Dir(cfg.AvatarDir)))
		r.Handle(cfg.AvatarURLPrefix+"*", fs)
	}

	// Feeds and the question page are public.
	r.Get("/", h.Feed.New)
	r.Get("/hot", h.Feed.Hot)
	r.Get("/tag/{name}", h.Feed.Tag)
	r.Get("/question/{id}", h.Question.Detail)

	// Accounts.
	r.Get(LoginPath, h.Account.LoginForm)
	r.With(writes).Post(LoginPath, h.Account.Login)
	r.Get("/signup", h.Account.SignupForm)
	r.With(writes).Post("/signup", h.Account.Signup)
	r.Get("/logout", h.Account.Logout)

	r.Group(func(r chi.Router) {
		r.Use(requireUser)

		r.Get("/ask", h.Question.AskForm)
		r.Get("/profile/edit", h.Account.Profile)

		r.Group(func(r chi.Router) {
			r.Use(writes)

			r.Post("/ask", h.Question.Ask)
			r.Post("/question/{id}", h.Question.Answer)
			r.Delete("/question/{id}", h.Question.Delete)
			r.Post("/question/{id}/like", h.Like.Question)
			r.Post("/answer/{id}/like", h.Like.Answer)
			r.Post("/profile/edit", h.Account.UpdateProfile)
		})
	})

	return r
}
