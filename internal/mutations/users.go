package mutations

import (
	"context"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/permissions"
)

type createUserMessage struct {
	input  api.UserInput
	result *permissions.User
}

func (m *createUserMessage) Type() string { return "users.create" }

type updateUserMessage struct {
	id     string
	input  api.UserInput
	result *permissions.User
}

func (m *updateUserMessage) Type() string { return "users.update" }

type updateGrantsMessage struct {
	id     string
	grants permissions.Grants
	result *permissions.User
}

func (m *updateGrantsMessage) Type() string { return "users.permissions" }

type deleteUserMessage struct {
	id string
}

func (m *deleteUserMessage) Type() string { return "users.delete" }

// UserMutations manages back-office accounts. The backend enforces the admin
// requirement; a 403 here surfaces the server's own message through the
// error toast.
type UserMutations struct {
	create *Handler[*createUserMessage]
	update *Handler[*updateUserMessage]
	grants *Handler[*updateGrantsMessage]
	remove *Handler[*deleteUserMessage]
}

func newUserMutations(cfg Config) *UserMutations {
	svc := cfg.Client.Users()
	return &UserMutations{
		create: newSuiteHandler(cfg, func(ctx context.Context, msg *createUserMessage) error {
			user, err := svc.Create(ctx, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *user
			return nil
		}, usersPrefix, "users.create", "User created"),
		update: newSuiteHandler(cfg, func(ctx context.Context, msg *updateUserMessage) error {
			user, err := svc.Update(ctx, msg.id, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *user
			return nil
		}, usersPrefix, "users.update", "User updated"),
		grants: newSuiteHandler(cfg, func(ctx context.Context, msg *updateGrantsMessage) error {
			user, err := svc.UpdatePermissions(ctx, msg.id, msg.grants)
			if err != nil {
				return err
			}
			*msg.result = *user
			return nil
		}, usersPrefix, "users.permissions", "Permissions updated"),
		remove: newSuiteHandler(cfg, func(ctx context.Context, msg *deleteUserMessage) error {
			return svc.Delete(ctx, msg.id)
		}, usersPrefix, "users.delete", "User deleted"),
	}
}

// Create registers a new back-office account.
func (m *UserMutations) Create(ctx context.Context, in api.UserInput) (*permissions.User, error) {
	var out permissions.User
	if err := m.create.Execute(ctx, &createUserMessage{input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits an existing account.
func (m *UserMutations) Update(ctx context.Context, id string, in api.UserInput) (*permissions.User, error) {
	var out permissions.User
	if err := m.update.Execute(ctx, &updateUserMessage{id: id, input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePermissions replaces an account's per-resource grants.
func (m *UserMutations) UpdatePermissions(ctx context.Context, id string, grants permissions.Grants) (*permissions.User, error) {
	var out permissions.User
	if err := m.grants.Execute(ctx, &updateGrantsMessage{id: id, grants: grants, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an account.
func (m *UserMutations) Delete(ctx context.Context, id string) error {
	return m.remove.Execute(ctx, &deleteUserMessage{id: id})
}
