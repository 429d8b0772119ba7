package mutations

import (
	"context"

	"github.com/aldawaly/go-backoffice/internal/api"
	"github.com/aldawaly/go-backoffice/internal/content"
	"github.com/aldawaly/go-backoffice/internal/permissions"
)

type createRecipeMessage struct {
	input  api.RecipeInput
	result *content.Recipe
}

func (m *createRecipeMessage) Type() string    { return "recipes.create" }
func (m *createRecipeMessage) Validate() error { return m.input.Validate() }

type updateRecipeMessage struct {
	id     string
	input  api.RecipeInput
	result *content.Recipe
}

func (m *updateRecipeMessage) Type() string    { return "recipes.update" }
func (m *updateRecipeMessage) Validate() error { return m.input.Validate() }

type deleteRecipeMessage struct {
	id string
}

func (m *deleteRecipeMessage) Type() string { return "recipes.delete" }

// RecipeMutations writes the /recipes resource.
type RecipeMutations struct {
	create *Handler[*createRecipeMessage]
	update *Handler[*updateRecipeMessage]
	remove *Handler[*deleteRecipeMessage]
}

func newRecipeMutations(cfg Config) *RecipeMutations {
	svc := cfg.Client.Recipes()
	prefix := resourcePrefix(permissions.ResourceRecipes)
	return &RecipeMutations{
		create: newSuiteHandler(cfg, func(ctx context.Context, msg *createRecipeMessage) error {
			item, err := svc.Create(ctx, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, prefix, "recipes.create", "Recipe created"),
		update: newSuiteHandler(cfg, func(ctx context.Context, msg *updateRecipeMessage) error {
			item, err := svc.Update(ctx, msg.id, msg.input)
			if err != nil {
				return err
			}
			*msg.result = *item
			return nil
		}, prefix, "recipes.update", "Recipe updated"),
		remove: newSuiteHandler(cfg, func(ctx context.Context, msg *deleteRecipeMessage) error {
			return svc.Delete(ctx, msg.id)
		}, prefix, "recipes.delete", "Recipe deleted"),
	}
}

// Create submits a new recipe.
func (m *RecipeMutations) Create(ctx context.Context, in api.RecipeInput) (*content.Recipe, error) {
	var out content.Recipe
	if err := m.create.Execute(ctx, &createRecipeMessage{input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an existing recipe.
func (m *RecipeMutations) Update(ctx context.Context, id string, in api.RecipeInput) (*content.Recipe, error) {
	var out content.Recipe
	if err := m.update.Execute(ctx, &updateRecipeMessage{id: id, input: in, result: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a recipe.
func (m *RecipeMutations) Delete(ctx context.Context, id string) error {
	return m.remove.Execute(ctx, &deleteRecipeMessage{id: id})
}
