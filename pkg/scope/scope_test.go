package scope

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestManager(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		m := New(testSecret, "anime-catalog", time.Hour)

		token, expiresAt, err := m.CreateToken("albert", []string{"ADMIN", "USER"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expiresAt.Before(time.Now()) {
			t.Errorf("expected expiry in the future, got %v", expiresAt)
		}

		payload, err := m.Verify(token)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}
		if payload.Username() != "albert" {
			t.Errorf("expected subject albert, got %q", payload.Username())
		}
		if len(payload.Roles) != 2 || payload.Roles[0] != "ADMIN" {
			t.Errorf("unexpected roles %v", payload.Roles)
		}
	})

	t.Run("Empty token", func(t *testing.T) {
		m := New(testSecret, "anime-catalog", time.Hour)
		if _, err := m.Verify(""); !errors.Is(err, ErrEmptyToken) {
			t.Errorf("expected ErrEmptyToken, got %v", err)
		}
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, _, _ := New(testSecret, "anime-catalog", time.Hour).CreateToken("albert", nil)
		other := New("ffffffffffffffffffffffffffffffff", "anime-catalog", time.Hour)
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		token, _, _ := New(testSecret, "someone-else", time.Hour).CreateToken("albert", nil)
		if _, err := New(testSecret, "anime-catalog", time.Hour).Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		m := New(testSecret, "anime-catalog", time.Minute).(*implManager)
		m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := m.CreateToken("albert", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m.now = time.Now
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
