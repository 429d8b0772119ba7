package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/aldawaly/go-backoffice/internal/content"
)

// ProductsService covers the /products endpoints, including the distinct
// category listing the storefront filters by.
type ProductsService struct {
	client *Client
}

// ProductInput is the editor-supplied payload for create/update.
type ProductInput struct {
	Title       content.Bilingual
	Description content.Bilingual
	Slug        string
	Category    string
	Published   bool
	Image       *Upload
}

func (in ProductInput) entity() content.Product {
	return content.Product{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		Category:    in.Category,
		Published:   in.Published,
	}
}

func (in ProductInput) Validate() error {
	return in.entity().Validate()
}

type productPayload struct {
	Title       content.Bilingual `json:"title"`
	Description content.Bilingual `json:"description"`
	Slug        string            `json:"slug"`
	Category    string            `json:"category"`
	Published   bool              `json:"published"`
}

func (in ProductInput) jsonBody() productPayload {
	return productPayload{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		Category:    in.Category,
		Published:   in.Published,
	}
}

func (in ProductInput) multipartFields() map[string]string {
	return map[string]string{
		"title":       jsonField(in.Title),
		"description": jsonField(in.Description),
		"slug":        in.Slug,
		"category":    in.Category,
		"published":   strconv.FormatBool(in.Published),
	}
}

// List returns published products for public pages.
func (s *ProductsService) List(ctx context.Context, opts content.ListOptions) ([]content.Product, error) {
	var items []content.Product
	err := s.client.do(ctx, http.MethodGet, "/products", func(req *resty.Request) {
		req.SetQueryParams(opts.Query())
	}, &items, false)
	return items, err
}

// Get resolves a single product by its public slug.
func (s *ProductsService) Get(ctx context.Context, slug string) (*content.Product, error) {
	var item content.Product
	err := s.client.do(ctx, http.MethodGet, "/products/"+url.PathEscape(slug), nil, &item, false)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Categories returns the distinct category keys products are filed under.
func (s *ProductsService) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.client.do(ctx, http.MethodGet, "/products/categories", nil, &categories, false)
	return categories, err
}

// AdminList returns every product, published or not. Requires a session.
func (s *ProductsService) AdminList(ctx context.Context) ([]content.Product, error) {
	var items []content.Product
	err := s.client.do(ctx, http.MethodGet, "/products/admin/all", nil, &items, true)
	return items, err
}

// Create submits a new product.
func (s *ProductsService) Create(ctx context.Context, in ProductInput) (*content.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.Product
	err := s.client.do(ctx, http.MethodPost, "/products", func(req *resty.Request) {
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

// Update replaces an existing product.
func (s *ProductsService) Update(ctx context.Context, id string, in ProductInput) (*content.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.Product
	err := s.client.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), func(req *resty.Request) {
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

// Delete removes a product.
func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, true)
}
