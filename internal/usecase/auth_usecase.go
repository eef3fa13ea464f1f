package usecase

import (
	"context"
)

// LoginInput is the payload for the login operation.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountInfo is the public view of an account returned after login.
type AccountInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginOutput carries the signed token and the account it belongs to.
type LoginOutput struct {
	Token string      `json:"token"`
	User  AccountInfo `json:"user"`
}

// AuthUsecase authenticates accounts against the stub directory.
type AuthUsecase interface {
	// Login checks the credentials and issues an access token. Wrong email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
