package account

import (
	"fmt"
	"io"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

// MinPasswordLength is counted in characters.
const MinPasswordLength = 8

// Avatar is an uploaded image. ContentType is expected to be sniffed from
// the content, not taken from the client.
type Avatar struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// SignupInput holds the signup form.
type SignupInput struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
	Avatar    *Avatar
}

func (i *SignupInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate checks the format of all fields and collects all errors.
// Uniqueness is checked by the service against storage.
func (i SignupInput) Validate(maxAvatarBytes int64) error {
	var errs []domain.FieldError

	errs = append(errs, validateUsername(i.Username)...)
	errs = append(errs, validateEmail(i.Email)...)

	switch {
	case i.Password1 == "":
		errs = append(errs, domain.FieldError{Field: "password1", Message: "required"})
	case utf8.RuneCountInString(i.Password1) < MinPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password1", Message: "at least 8 characters"})
	case allDigits(i.Password1):
		errs = append(errs, domain.FieldError{Field: "password1", Message: "must not be entirely numeric"})
	}
	if i.Password1 != i.Password2 {
		errs = append(errs, domain.FieldError{Field: "password2", Message: "passwords do not match"})
	}

	errs = append(errs, validateAvatar(i.Avatar, maxAvatarBytes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the login form.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ProfileInput holds the profile edit form. A nil Avatar keeps the current one.
type ProfileInput struct {
	Username string
	Email    string
	Avatar   *Avatar
}

func (i *ProfileInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate checks all fields and collects all errors.
func (i ProfileInput) Validate(maxAvatarBytes int64) error {
	var errs []domain.FieldError

	errs = append(errs, validateUsername(i.Username)...)
	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validateAvatar(i.Avatar, maxAvatarBytes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateUsername(username string) []domain.FieldError {
	switch {
	case username == "":
		return []domain.FieldError{{Field: "username", Message: "required"}}
	case !domain.ValidUsername(username):
		return []domain.FieldError{{Field: "username", Message: "3-30 latin letters, digits or underscores"}}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > 254 {
		return []domain.FieldError{{Field: "email", Message: "max 254 characters"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email format"}}
	}
	return nil
}

func validateAvatar(a *Avatar, maxBytes int64) []domain.FieldError {
	if a == nil {
		return nil
	}
	var errs []domain.FieldError
	if !strings.HasPrefix(a.ContentType, "image/") {
		errs = append(errs, domain.FieldError{Field: "avatar", Message: "must be an image"})
	}
	if a.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "avatar", Message: fmt.Sprintf("max %d bytes", maxBytes)})
	}
	return errs
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
