package domain

import (
	"regexp"
	"time"
)

// User is an account known to the forum. Authentication itself is handled by
// the account service; the rest of the domain only references users by ID.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsSuperuser  bool
	CreatedAt    time.Time
	Profile      Profile
}

// Profile is one-to-one with User and is created together with it.
// Avatar is a reference into the blob store, never the image bytes.
type Profile struct {
	UserID int64
	Avatar *string
}

// Author is the public identity of a content owner as shown next to
// questions and answers.
type Author struct {
	ID       int64
	Username string
	Avatar   *string
}

// Author returns the public view of the user.
func (u *User) Author() Author {
	return Author{ID: u.ID, Username: u.Username, Avatar: u.Profile.Avatar}
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// ValidUsername reports whether s is 3-30 latin letters, digits or underscores.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}
