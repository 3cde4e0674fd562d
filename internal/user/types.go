package user

import "time"

// User is a principal allowed to call the API. PasswordHash is a bcrypt hash.
type User struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Roles        []string
}

type LoginInput struct {
	Username string
	Password string
}

// Token is an issued bearer access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

const TokenTypeBearer = "Bearer"
