package account

import "github.com/heartmarshall/askme-backend/internal/domain"

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	User        *domain.User
	AccessToken string
}
