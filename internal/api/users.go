package api

import (
	"context"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-resty/resty/v2"

	"github.com/aldawaly/go-backoffice/internal/permissions"
)

// UsersService covers the admin-only /users endpoints. User payloads never
// carry files, so every call is plain JSON.
type UsersService struct {
	client *Client
}

// UserInput is the admin-supplied payload for creating or updating an
// account. Password is required on create only.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     permissions.Role
	Grants   permissions.Grants
}

func (in UserInput) validate(requirePassword bool) error {
	errs := validation.Errors{}
	if in.Name == "" {
		errs["name"] = validation.NewError("backoffice.users.name_required", "name is required")
	}
	if in.Email == "" {
		errs["email"] = validation.NewError("backoffice.users.email_required", "email is required")
	}
	if requirePassword && in.Password == "" {
		errs["password"] = validation.NewError("backoffice.users.password_required", "password is required")
	}
	switch in.Role {
	case permissions.RoleUser, permissions.RoleModerator, permissions.RoleAdmin:
	default:
		errs["role"] = validation.NewError("backoffice.users.role_invalid", "role must be user, moderator, or admin")
	}
	for resource := range in.Grants {
		if !resource.Valid() {
			errs["permissions"] = validation.NewError("backoffice.users.resource_invalid", "unknown permission resource")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type userPayload struct {
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Password    string                   `json:"password,omitempty"`
	Role        permissions.Role         `json:"role"`
	Permissions *permissions.Permissions `json:"permissions,omitempty"`
}

func (in UserInput) jsonBody() userPayload {
	payload := userPayload{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
	if in.Grants != nil {
		payload.Permissions = &permissions.Permissions{Resources: in.Grants}
	}
	return payload
}

// List returns every account. Requires a session.
func (s *UsersService) List(ctx context.Context) ([]permissions.User, error) {
	var users []permissions.User
	err := s.client.do(ctx, http.MethodGet, "/users", nil, &users, true)
	return users, err
}

// Create registers a new account.
func (s *UsersService) Create(ctx context.Context, in UserInput) (*permissions.User, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}
	var user permissions.User
	err := s.client.do(ctx, http.MethodPost, "/users", func(req *resty.Request) {
		req.SetBody(in.jsonBody())
	}, &user, true)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces an account's profile and role.
func (s *UsersService) Update(ctx context.Context, id string, in UserInput) (*permissions.User, error) {
	if err := in.validate(false); err != nil {
		return nil, err
	}
	var user permissions.User
	err := s.client.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), func(req *resty.Request) {
		req.SetBody(in.jsonBody())
	}, &user, true)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePermissions replaces an account's per-resource grants through the
// dedicated endpoint.
func (s *UsersService) UpdatePermissions(ctx context.Context, id string, grants permissions.Grants) (*permissions.User, error) {
	for resource := range grants {
		if !resource.Valid() {
			return nil, validation.Errors{
				"permissions": validation.NewError("backoffice.users.resource_invalid", "unknown permission resource"),
			}
		}
	}
	var user permissions.User
	err := s.client.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id)+"/permissions", func(req *resty.Request) {
		req.SetBody(permissions.Permissions{Resources: grants})
	}, &user, true)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes an account.
func (s *UsersService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, true)
}
