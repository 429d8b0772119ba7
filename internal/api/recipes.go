package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/aldawaly/go-backoffice/internal/content"
)

// RecipesService covers the /recipes endpoints.
type RecipesService struct {
	client *Client
}

// RecipeInput is the editor-supplied payload for create/update. Ingredient
// and step lists are JSON-encoded as string parts in multipart submissions.
type RecipeInput struct {
	Title       content.Bilingual
	Description content.Bilingual
	Ingredients []content.Bilingual
	Steps       []content.Bilingual
	Slug        string
	Category    string
	Published   bool
	Image       *Upload
}

func (in RecipeInput) entity() content.Recipe {
	return content.Recipe{
		Title:       in.Title,
		Description: in.Description,
		Ingredients: in.Ingredients,
		Steps:       in.Steps,
		Slug:        in.Slug,
		Category:    in.Category,
		Published:   in.Published,
	}
}

func (in RecipeInput) Validate() error {
	return in.entity().Validate()
}

type recipePayload struct {
	Title       content.Bilingual   `json:"title"`
	Description content.Bilingual   `json:"description"`
	Ingredients []content.Bilingual `json:"ingredients"`
	Steps       []content.Bilingual `json:"steps"`
	Slug        string              `json:"slug"`
	Category    string              `json:"category"`
	Published   bool                `json:"published"`
}

func (in RecipeInput) jsonBody() recipePayload {
	return recipePayload{
		Title:       in.Title,
		Description: in.Description,
		Ingredients: in.Ingredients,
		Steps:       in.Steps,
		Slug:        in.Slug,
		Category:    in.Category,
		Published:   in.Published,
	}
}

func (in RecipeInput) multipartFields() map[string]string {
	return map[string]string{
		"title":       jsonField(in.Title),
		"description": jsonField(in.Description),
		"ingredients": jsonField(in.Ingredients),
		"steps":       jsonField(in.Steps),
		"slug":        in.Slug,
		"category":    in.Category,
		"published":   strconv.FormatBool(in.Published),
	}
}

// List returns published recipes for public pages.
func (s *RecipesService) List(ctx context.Context, opts content.ListOptions) ([]content.Recipe, error) {
	var items []content.Recipe
	err := s.client.do(ctx, http.MethodGet, "/recipes", func(req *resty.Request) {
		req.SetQueryParams(opts.Query())
	}, &items, false)
	return items, err
}

// Get resolves a single recipe by its public slug.
func (s *RecipesService) Get(ctx context.Context, slug string) (*content.Recipe, error) {
	var item content.Recipe
	err := s.client.do(ctx, http.MethodGet, "/recipes/"+url.PathEscape(slug), nil, &item, false)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Categories returns the distinct category keys recipes are filed under.
func (s *RecipesService) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.client.do(ctx, http.MethodGet, "/recipes/categories", nil, &categories, false)
	return categories, err
}

// AdminList returns every recipe, published or not. Requires a session.
func (s *RecipesService) AdminList(ctx context.Context) ([]content.Recipe, error) {
	var items []content.Recipe
	err := s.client.do(ctx, http.MethodGet, "/recipes/admin/all", nil, &items, true)
	return items, err
}

// Create submits a new recipe.
func (s *RecipesService) Create(ctx context.Context, in RecipeInput) (*content.Recipe, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.Recipe
	err := s.client.do(ctx, http.MethodPost, "/recipes", func(req *resty.Request) {
		if in.Image != nil {
			applyMultipart(req, in.multipartFields(), in.Image)
			return
		}
		req.SetBody(in.jsonBody())
	}, &item, true)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces an existing recipe.
func (s *RecipesService) Update(ctx context.Context, id string, in RecipeInput) (*content.Recipe, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.Recipe
	err := s.client.do(ctx, http.MethodPut, "/recipes/"+url.PathEscape(id), func(req *resty.Request) {
		if in.Image != nil {
			applyMultipart(req, in.multipartFields(), in.Image)
			return
		}
		req.SetBody(in.jsonBody())
	}, &item, true)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a recipe.
func (s *RecipesService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/recipes/"+url.PathEscape(id), nil, nil, true)
}
