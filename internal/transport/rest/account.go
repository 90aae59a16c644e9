package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/internal/service/account"
	"github.com/heartmarshall/askme-backend/internal/transport/middleware"
	"github.com/heartmarshall/askme-backend/pkg/ctxutil"
)

// formOverhead is what a multipart form may carry on top of the avatar.
const formOverhead = 1 << 20

type accountService interface {
	Signup(ctx context.Context, input account.SignupInput) (*account.AuthResult, error)
	Login(ctx context.Context, input account.LoginInput) (*account.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input account.ProfileInput) (*domain.User, error)
}

// AccountHandler serves signup, login, logout and profile editing.
type AccountHandler struct {
	svc            accountService
	sessions       *scs.SessionManager
	avatars        avatarURLs
	maxAvatarBytes int64
	log            *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(
	svc accountService,
	sessions *scs.SessionManager,
	avatars avatarURLs,
	maxAvatarBytes int64,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		svc:            svc,
		sessions:       sessions,
		avatars:        avatars,
		maxAvatarBytes: maxAvatarBytes,
		log:            logger.With("handler", "account"),
	}
}

type formResponse struct {
	Continue string `json:"continue,omitempty"`
}

// LoginForm handles GET /login.
func (h *AccountHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, formResponse{Continue: firstSafe(r.URL.Query().Get("continue"))})
}

// Login handles POST /login. The destination comes from the "continue"
// query or form value and must be a local path.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}

	result, err := h.svc.Login(r.Context(), account.LoginInput{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.signIn(w, r, result, firstSafe(r.URL.Query().Get("continue"), r.PostForm.Get("continue")))
}

// SignupForm handles GET /signup.
func (h *AccountHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, formResponse{})
}

// Signup handles POST /signup (multipart when an avatar is attached).
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedIn(w, r) {
		return
	}
	avatar, done, err := h.parseForm(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	defer done()

	result, err := h.svc.Signup(r.Context(), account.SignupInput{
		Username:  r.PostForm.Get("username"),
		Email:     r.PostForm.Get("email"),
		Password1: r.PostForm.Get("password1"),
		Password2: r.PostForm.Get("password2"),
		Avatar:    avatar,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.signIn(w, r, result, "/")
}

// Logout handles GET /logout. It returns to "next", then the referring page
// of this site, then the front page.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := middleware.EndSession(r.Context(), h.sessions); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	redirect(w, r, firstSafe(r.URL.Query().Get("next"), refererPath(r)))
}

// Profile handles GET /profile/edit.
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserView(user, h.avatars))
}

// UpdateProfile handles POST /profile/edit.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	avatar, done, err := h.parseForm(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	defer done()

	if _, err := h.svc.UpdateProfile(r.Context(), account.ProfileInput{
		Username: r.PostForm.Get("username"),
		Email:    r.PostForm.Get("email"),
		Avatar:   avatar,
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	redirect(w, r, "/profile/edit")
}

func (h *AccountHandler) signIn(w http.ResponseWriter, r *http.Request, result *account.AuthResult, dest string) {
	if err := middleware.StartSession(r.Context(), h.sessions, result.User.ID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("X-Access-Token", result.AccessToken)
	redirect(w, r, dest)
}

func (h *AccountHandler) redirectSignedIn(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		redirect(w, r, "/")
		return true
	}
	return false
}

// parseForm reads a urlencoded or multipart form and returns the optional
// avatar upload. The content type is sniffed from the bytes, not trusted
// from the client. done releases the upload and is never nil.
func (h *AccountHandler) parseForm(w http.ResponseWriter, r *http.Request) (avatar *account.Avatar, done func(), err error) {
	done = func() {}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxAvatarBytes+formOverhead)

	err = r.ParseMultipartForm(formOverhead)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, done, r.ParseForm()
	}
	if err != nil {
		return nil, done, err
	}

	file, header, err := r.FormFile("avatar")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, done, nil
	}
	if err != nil {
		return nil, done, err
	}
	done = func() { _ = file.Close() }

	avatar, err = sniffAvatar(file, header)
	if err != nil {
		done()
		return nil, func() {}, err
	}
	return avatar, done, nil
}

func sniffAvatar(file multipart.File, header *multipart.FileHeader) (*account.Avatar, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	head = head[:n]

	return &account.Avatar{
		ContentType: http.DetectContentType(head),
		Size:        header.Size,
		Body:        io.MultiReader(bytes.NewReader(head), file),
	}, nil
}
