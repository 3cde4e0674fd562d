package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"anime-catalog/internal/model"
	"anime-catalog/internal/user"
	"anime-catalog/internal/user/repository"
)

// Authenticate verifies username and password. Unknown users and wrong
// passwords both return ErrInvalidCredentials.
func (uc *implUseCase) Authenticate(ctx context.Context, username, password string) (model.Scope, error) {
	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Username: username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Authenticate GetOneUser: %v", err)
		return model.Scope{}, err
	}

	if u.Username == "" {
		// keep timing close to the known-user path
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(password))
		return model.Scope{}, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.Scope{}, user.ErrInvalidCredentials
	}

	return model.Scope{Username: u.Username, Roles: u.Roles}, nil
}

// Login authenticates and issues a bearer token carrying the user's roles.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.Token, error) {
	sc, err := uc.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return user.Token{}, err
	}

	token, expiresAt, err := uc.tokens.CreateToken(sc.Username, sc.Roles)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login CreateToken: %v", err)
		return user.Token{}, err
	}

	uc.l.Infof(ctx, "uc.Login: issued token for %s", sc.Username)
	return user.Token{
		AccessToken: token,
		TokenType:   user.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify parses a bearer token and resolves its subject against the user
// directory. Roles come from the directory, not from the token.
func (uc *implUseCase) Verify(ctx context.Context, token string) (model.Scope, error) {
	payload, err := uc.tokens.Verify(token)
	if err != nil {
		uc.l.Debugf(ctx, "uc.Verify: %v", err)
		return model.Scope{}, user.ErrInvalidToken
	}

	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Username: payload.Username()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Verify GetOneUser: %v", err)
		return model.Scope{}, err
	}
	if u.Username == "" {
		uc.l.Warnf(ctx, "uc.Verify: token subject %q is not a known user", payload.Username())
		return model.Scope{}, user.ErrInvalidToken
	}

	return model.Scope{Username: u.Username, Roles: u.Roles}, nil
}
