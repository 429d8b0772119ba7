package api

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-resty/resty/v2"

	"github.com/aldawaly/go-backoffice/internal/permissions"
)

// AuthService covers the /auth endpoints.
type AuthService struct {
	client *Client
}

// LoginResult carries the credentials the session manager persists.
type LoginResult struct {
	Token string            `json:"token"`
	User  *permissions.User `json:"user"`
}

// Login exchanges credentials for a token and user. The call itself is
// unauthenticated; storing the result is the session manager's job.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	errs := validation.Errors{}
	if email == "" {
		errs["email"] = validation.NewError("backoffice.auth.email_required", "email is required")
	}
	if password == "" {
		errs["password"] = validation.NewError("backoffice.auth.password_required", "password is required")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	var result LoginResult
	err := s.client.do(ctx, http.MethodPost, "/auth/login", func(req *resty.Request) {
		req.SetBody(map[string]string{"email": email, "password": password})
	}, &result, false)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
