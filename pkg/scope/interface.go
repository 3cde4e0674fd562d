package scope

import "time"

// Manager issues and verifies signed access tokens.
type Manager interface {
	CreateToken(username string, roles []string) (string, time.Time, error)
	Verify(token string) (Payload, error)
}
