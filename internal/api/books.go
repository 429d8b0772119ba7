package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/aldawaly/go-backoffice/internal/content"
)

// BooksService covers the /books endpoints.
type BooksService struct {
	client *Client
}

// BookInput is the editor-supplied payload for create/update. Cover and File
// ride one multipart submission when either is present.
type BookInput struct {
	Title       content.Bilingual
	Description content.Bilingual
	Slug        string
	Published   bool
	Cover       *Upload
	File        *Upload
}

func (in BookInput) entity() content.Book {
	return content.Book{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		Published:   in.Published,
	}
}

func (in BookInput) Validate() error {
	return in.entity().Validate()
}

func (in BookInput) hasUploads() bool {
	return in.Cover != nil || in.File != nil
}

type bookPayload struct {
	Title       content.Bilingual `json:"title"`
	Description content.Bilingual `json:"description"`
	Slug        string            `json:"slug"`
	Published   bool              `json:"published"`
}

func (in BookInput) jsonBody() bookPayload {
	return bookPayload{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		Published:   in.Published,
	}
}

func (in BookInput) multipartFields() map[string]string {
	return map[string]string{
		"title":       jsonField(in.Title),
		"description": jsonField(in.Description),
		"slug":        in.Slug,
		"published":   strconv.FormatBool(in.Published),
	}
}

func (in BookInput) uploads() []*Upload {
	uploads := make([]*Upload, 0, 2)
	if in.Cover != nil {
		if in.Cover.Field == "" {
			in.Cover.Field = "cover"
		}
		uploads = append(uploads, in.Cover)
	}
	if in.File != nil {
		if in.File.Field == "" {
			in.File.Field = "file"
		}
		uploads = append(uploads, in.File)
	}
	return uploads
}

// List returns published books for public pages.
func (s *BooksService) List(ctx context.Context, opts content.ListOptions) ([]content.Book, error) {
	var items []content.Book
	err := s.client.do(ctx, http.MethodGet, "/books", func(req *resty.Request) {
		req.SetQueryParams(opts.Query())
	}, &items, false)
	return items, err
}

// Get resolves a single book by its public slug.
func (s *BooksService) Get(ctx context.Context, slug string) (*content.Book, error) {
	var item content.Book
	err := s.client.do(ctx, http.MethodGet, "/books/"+url.PathEscape(slug), nil, &item, false)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DownloadURL resolves the asset-host URL for a book's file. Public, no
// session required.
func (s *BooksService) DownloadURL(ctx context.Context, id string) (string, error) {
	var payload struct {
		URL string `json:"url"`
	}
	err := s.client.do(ctx, http.MethodGet, "/books/"+url.PathEscape(id)+"/download", nil, &payload, false)
	if err != nil {
		return "", err
	}
	return payload.URL, nil
}

// AdminList returns every book, published or not. Requires a session.
func (s *BooksService) AdminList(ctx context.Context) ([]content.Book, error) {
	var items []content.Book
	err := s.client.do(ctx, http.MethodGet, "/books/admin/all", nil, &items, true)
	return items, err
}

// Create submits a new book.
func (s *BooksService) Create(ctx context.Context, in BookInput) (*content.Book, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.Book
	err := s.client.do(ctx, http.MethodPost, "/books", func(req *resty.Request) {
		if in.hasUploads() {
			applyMultipart(req, in.multipartFields(), in.uploads()...)
			return
		}
		req.SetBody(in.jsonBody())
	}, &item, true)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces an existing book.
func (s *BooksService) Update(ctx context.Context, id string, in BookInput) (*content.Book, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.Book
	err := s.client.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), func(req *resty.Request) {
		if in.hasUploads() {
			applyMultipart(req, in.multipartFields(), in.uploads()...)
			return
		}
		req.SetBody(in.jsonBody())
	}, &item, true)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a book.
func (s *BooksService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, nil, true)
}
