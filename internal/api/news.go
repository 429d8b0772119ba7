package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/aldawaly/go-backoffice/internal/content"
)

// NewsService covers the /news endpoints.
type NewsService struct {
	client *Client
}

// NewsInput is the editor-supplied payload for create/update. Image, when
// present, switches the submission to multipart with bilingual fields
// JSON-encoded as string parts.
type NewsInput struct {
	Title       content.Bilingual
	Description content.Bilingual
	Slug        string
	Published   bool
	Image       *Upload
}

func (in NewsInput) entity() content.News {
	return content.News{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		Published:   in.Published,
	}
}

// Validate blocks incomplete bilingual payloads before the network.
func (in NewsInput) Validate() error {
	return in.entity().Validate()
}

type newsPayload struct {
	Title       content.Bilingual `json:"title"`
	Description content.Bilingual `json:"description"`
	Slug        string            `json:"slug"`
	Published   bool              `json:"published"`
}

func (in NewsInput) jsonBody() newsPayload {
	return newsPayload{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		Published:   in.Published,
	}
}

func (in NewsInput) multipartFields() map[string]string {
	return map[string]string{
		"title":       jsonField(in.Title),
		"description": jsonField(in.Description),
		"slug":        in.Slug,
		"published":   strconv.FormatBool(in.Published),
	}
}

// List returns published news for public pages.
func (s *NewsService) List(ctx context.Context, opts content.ListOptions) ([]content.News, error) {
	var items []content.News
	err := s.client.do(ctx, http.MethodGet, "/news", func(req *resty.Request) {
		req.SetQueryParams(opts.Query())
	}, &items, false)
	return items, err
}

// Get resolves a single item by its public slug.
func (s *NewsService) Get(ctx context.Context, slug string) (*content.News, error) {
	var item content.News
	err := s.client.do(ctx, http.MethodGet, "/news/"+url.PathEscape(slug), nil, &item, false)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AdminList returns every item, published or not. Requires a session.
func (s *NewsService) AdminList(ctx context.Context) ([]content.News, error) {
	var items []content.News
	err := s.client.do(ctx, http.MethodGet, "/news/admin/all", nil, &items, true)
	return items, err
}

// Create submits a new item.
func (s *NewsService) Create(ctx context.Context, in NewsInput) (*content.News, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.News
	err := s.client.do(ctx, http.MethodPost, "/news", func(req *resty.Request) {
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

// Update replaces an existing item.
func (s *NewsService) Update(ctx context.Context, id string, in NewsInput) (*content.News, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.News
	err := s.client.do(ctx, http.MethodPut, "/news/"+url.PathEscape(id), func(req *resty.Request) {
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

// Delete removes an item. Confirmation is the caller's concern.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/news/"+url.PathEscape(id), nil, nil, true)
}
