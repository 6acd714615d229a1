package auth

import "github.com/laneline/swimreg-backend/internal/domain"

// AuthResult is returned by LoginWithPassword, Register, and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
