package mutations

import (
	"context"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/permissions"
)

type createNewsMessage struct {
	input  api.NewsInput
	result *content.News
}

func (m *createNewsMessage) Type() string    { return "news.create" }
func (m *createNewsMessage) Validate() error { return m.input.Validate() }

type updateNewsMessage struct {
	id     string
	input  api.NewsInput
	result *content.News
}

func (m *updateNewsMessage) Type() string    { return "news.update" }
func (m *updateNewsMessage) Validate() error { return m.input.Validate() }

type deleteNewsMessage struct {
	id string
}

func (m *deleteNewsMessage) Type() string { return "news.delete" }

// NewsMutations writes the /news resource and keeps its cached lists honest.
type NewsMutations struct {
	create *Handler[*createNewsMessage]
	update *Handler[*updateNewsMessage]
	remove *Handler[*deleteNewsMessage]
}

func newNewsMutations(cfg Config) *NewsMutations {
	svc := cfg.Client.News()
	prefix := resourcePrefix(permissions.ResourceNews)
	return &NewsMutations{
		create: newSuiteHandler(cfg, func(ctx context.Context, msg *createNewsMessage) error {
			item, err := svc.Create(ctx, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, prefix, "news.create", "News item created"),
		update: newSuiteHandler(cfg, func(ctx context.Context, msg *updateNewsMessage) error {
			item, err := svc.Update(ctx, msg.id, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, prefix, "news.update", "News item updated"),
		remove: newSuiteHandler(cfg, func(ctx context.Context, msg *deleteNewsMessage) error {
			return svc.Delete(ctx, msg.id)
		}, prefix, "news.delete", "News item deleted"),
	}
}

// Create submits a new item and invalidates the news key space on success.
func (m *NewsMutations) Create(ctx context.Context, in api.NewsInput) (*content.News, error) {
	var out content.News
	if err := m.create.Execute(ctx, &createNewsMessage{input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an existing item.
func (m *NewsMutations) Update(ctx context.Context, id string, in api.NewsInput) (*content.News, error) {
	var out content.News
	if err := m.update.Execute(ctx, &updateNewsMessage{id: id, input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an item.
func (m *NewsMutations) Delete(ctx context.Context, id string) error {
	return m.remove.Execute(ctx, &deleteNewsMessage{id: id})
}
