package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/aldawaly/go-backoffice/internal/content"
)

// HeroService covers the /hero endpoints, including the dedicated order
// mutation the carousel editor uses.
type HeroService struct {
	client *Client
}

// HeroInput is the editor-supplied payload for create/update.
type HeroInput struct {
	Title     content.Bilingual
	Subtitle  content.Bilingual
	Link      string
	Published bool
	Image     *Upload
}

func (in HeroInput) entity() content.HeroSlide {
	slide := content.HeroSlide{
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		Link:      in.Link,
		Published: in.Published,
	}
	if in.Image != nil {
		// Presence of a pending upload satisfies the image requirement;
		// the server assigns the stored URL.
		slide.Image = "pending"
	}
	return slide
}

func (in HeroInput) Validate() error {
	return in.entity().Validate()
}

type heroPayload struct {
	Title     content.Bilingual `json:"title"`
	Subtitle  content.Bilingual `json:"subtitle"`
	Link      string            `json:"link"`
	Published bool              `json:"published"`
}

func (in HeroInput) jsonBody() heroPayload {
	return heroPayload{
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		Link:      in.Link,
		Published: in.Published,
	}
}

func (in HeroInput) multipartFields() map[string]string {
	return map[string]string{
		"title":     jsonField(in.Title),
		"subtitle":  jsonField(in.Subtitle),
		"link":      in.Link,
		"published": strconv.FormatBool(in.Published),
	}
}

// List returns published slides in display order for the public home page.
func (s *HeroService) List(ctx context.Context) ([]content.HeroSlide, error) {
	var items []content.HeroSlide
	err := s.client.do(ctx, http.MethodGet, "/hero", nil, &items, false)
	return items, err
}

// AdminList returns every slide, published or not. Requires a session.
func (s *HeroService) AdminList(ctx context.Context) ([]content.HeroSlide, error) {
	var items []content.HeroSlide
	err := s.client.do(ctx, http.MethodGet, "/hero/admin/all", nil, &items, true)
	return items, err
}

// Create submits a new slide. A new slide always carries an image upload.
func (s *HeroService) Create(ctx context.Context, in HeroInput) (*content.HeroSlide, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item content.HeroSlide
	err := s.client.do(ctx, http.MethodPost, "/hero", func(req *resty.Request) {
		applyMultipart(req, in.multipartFields(), in.Image)
	}, &item, true)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces an existing slide; without a new image the call is plain
// JSON and the stored image stays.
func (s *HeroService) Update(ctx context.Context, id string, in HeroInput) (*content.HeroSlide, error) {
	slide := in.entity()
	if in.Image == nil {
		// The stored image remains; only the text payload is re-checked.
		slide.Image = "unchanged"
	}
	if err := slide.Validate(); err != nil {
		return nil, err
	}

	var item content.HeroSlide
	err := s.client.do(ctx, http.MethodPut, "/hero/"+url.PathEscape(id), func(req *resty.Request) {
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

// Reorder moves a slide to a new carousel position.
func (s *HeroService) Reorder(ctx context.Context, id string, order int) error {
	return s.client.do(ctx, http.MethodPut, "/hero/"+url.PathEscape(id)+"/order", func(req *resty.Request) {
		req.SetBody(map[string]int{"order": order})
	}, nil, true)
}

// Delete removes a slide.
func (s *HeroService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/hero/"+url.PathEscape(id), nil, nil, true)
}
