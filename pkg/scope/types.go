package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the claim set carried by access tokens.
type Payload struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// Username is the token subject.
func (p Payload) Username() string {
	return p.Subject
}
