package mutations

import (
	"context"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/permissions"
)

type createSlideMessage struct {
	input  api.HeroInput
	result *content.HeroSlide
}

func (m *createSlideMessage) Type() string    { return "hero.create" }
func (m *createSlideMessage) Validate() error { return m.input.Validate() }

type updateSlideMessage struct {
	id     string
	input  api.HeroInput
	result *content.HeroSlide
}

func (m *updateSlideMessage) Type() string { return "hero.update" }

type reorderSlideMessage struct {
	id    string
	order int
}

func (m *reorderSlideMessage) Type() string { return "hero.reorder" }

type deleteSlideMessage struct {
	id string
}

func (m *deleteSlideMessage) Type() string { return "hero.delete" }

// HeroMutations writes the /hero resource, including the slide ordering
// endpoint that every public page reads back.
type HeroMutations struct {
	create  *Handler[*createSlideMessage]
	update  *Handler[*updateSlideMessage]
	reorder *Handler[*reorderSlideMessage]
	remove  *Handler[*deleteSlideMessage]
}

func newHeroMutations(cfg Config) *HeroMutations {
	svc := cfg.Client.Hero()
	prefix := resourcePrefix(permissions.ResourceHero)
	return &HeroMutations{
		create: newSuiteHandler(cfg, func(ctx context.Context, msg *createSlideMessage) error {
			item, err := svc.Create(ctx, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, prefix, "hero.create", "Slide created"),
		update: newSuiteHandler(cfg, func(ctx context.Context, msg *updateSlideMessage) error {
			item, err := svc.Update(ctx, msg.id, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, prefix, "hero.update", "Slide updated"),
		reorder: newSuiteHandler(cfg, func(ctx context.Context, msg *reorderSlideMessage) error {
			return svc.Reorder(ctx, msg.id, msg.order)
		}, prefix, "hero.reorder", "Slide order updated"),
		remove: newSuiteHandler(cfg, func(ctx context.Context, msg *deleteSlideMessage) error {
			return svc.Delete(ctx, msg.id)
		}, prefix, "hero.delete", "Slide deleted"),
	}
}

// Create submits a new slide. The image upload is mandatory on create.
func (m *HeroMutations) Create(ctx context.Context, in api.HeroInput) (*content.HeroSlide, error) {
	var out content.HeroSlide
	if err := m.create.Execute(ctx, &createSlideMessage{input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a slide. Omitting the upload keeps the stored image; the
// service validates accordingly.
func (m *HeroMutations) Update(ctx context.Context, id string, in api.HeroInput) (*content.HeroSlide, error) {
	var out content.HeroSlide
	if err := m.update.Execute(ctx, &updateSlideMessage{id: id, input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reorder moves a slide to the given position.
func (m *HeroMutations) Reorder(ctx context.Context, id string, order int) error {
	return m.reorder.Execute(ctx, &reorderSlideMessage{id: id, order: order})
}

// Delete removes a slide.
func (m *HeroMutations) Delete(ctx context.Context, id string) error {
	return m.remove.Execute(ctx, &deleteSlideMessage{id: id})
}
