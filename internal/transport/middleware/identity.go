package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/heartmarshall/askme-backend/pkg/ctxutil"
)

// SessionUserKey is the session entry holding the signed-in user id.
const SessionUserKey = "user_id"

type tokenValidator interface {
	ValidateAccessToken(token string) (int64, string, error)
}

// Identity resolves the current user and stores it in the request context.
// A bearer token takes precedence over the session cookie; an invalid token
// is rejected outright instead of falling back to anonymous. Requests
// without either stay anonymous. Must run inside sessions.LoadAndSave.
func Identity(sessions *scs.SessionManager, tokens tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token := extractBearerToken(r); token != "" {
				userID, _, err := tokens.ValidateAccessToken(token)
				if err != nil {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				ctx = ctxutil.WithUserID(ctx, userID)
			} else if userID := sessions.GetInt64(ctx, SessionUserKey); userID > 0 {
				ctx = ctxutil.WithUserID(ctx, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser sends anonymous requests to loginPath with the original
// location in the "continue" parameter.
func RequireUser(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				http.Redirect(w, r, LoginURL(loginPath, r.URL.RequestURI()), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoginURL builds loginPath?continue=dest.
func LoginURL(loginPath, dest string) string {
	return loginPath + "?" + url.Values{"continue": {dest}}.Encode()
}

// StartSession signs userID in. The session token is renewed to prevent
// fixation.
func StartSession(ctx context.Context, sessions *scs.SessionManager, userID int64) error {
	if err := sessions.RenewToken(ctx); err != nil {
		return fmt.Errorf("renew session token: %w", err)
	}
	sessions.Put(ctx, SessionUserKey, userID)
	return nil
}

// EndSession signs the current user out.
func EndSession(ctx context.Context, sessions *scs.SessionManager) error {
	if err := sessions.Destroy(ctx); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
