package api

import (
	"context"
	"net/http"

	"nearshop/internal/domain/entity"
	"nearshop/internal/domain/repository"

	"go.uber.org/fx"
)

// authClient implements repository.SessionRepository against the HTTP backend.
type authClient struct {
	client *Client
}

// SessionRepositoryParams holds dependencies for the session repository, injected by Fx.
type SessionRepositoryParams struct {
	fx.In

	Client *Client
}

// NewSessionRepository is the constructor for the HTTP-backed session repository.
func NewSessionRepository(params SessionRepositoryParams) repository.SessionRepository {
	return &authClient{client: params.Client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (a *authClient) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	req, err := a.client.newRequest(ctx, http.MethodPost, "auth/login", "", nil, loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var payload loginResponse
	if err := a.client.request(req, &payload); err != nil {
		return nil, err
	}

	return &entity.Session{
		UserID: payload.User.ID,
		Email:  payload.User.Email,
		Token:  payload.Token,
	}, nil
}
