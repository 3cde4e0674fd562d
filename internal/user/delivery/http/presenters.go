package http

import (
	"time"

	"anime-catalog/internal/user"
	pkgErrors "anime-catalog/pkg/errors"
)

var validationMessages = pkgErrors.Messages{
	"username.required": "The username must not be empty",
	"password.required": "The password must not be empty",
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Username: r.Username, Password: r.Password}
}

type tokenResp struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (h *handler) newTokenResp(t user.Token) tokenResp {
	return tokenResp{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		ExpiresAt:   t.ExpiresAt.UTC(),
	}
}
