package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Bilingual completeness is enforced client-side before a payload is
// submitted; an incomplete field never reaches the network.

func requireBilingual(errs validation.Errors, field string, value Bilingual) {
	if !value.Complete() {
		errs[field] = validation.NewError(
			"backoffice.content."+field+"_incomplete",
			field+" requires both Arabic and English values",
		)
	}
}

func requireSlug(errs validation.Errors, value string) {
	if value == "" {
		errs["slug"] = validation.NewError("backoffice.content.slug_required", "slug is required")
		return
	}
	if !IsValidSlug(value) {
		errs["slug"] = validation.NewError("backoffice.content.slug_invalid", "slug contains invalid characters")
	}
}

// Validate checks publishable completeness for a news item.
func (n News) Validate() error {
	errs := validation.Errors{}
	requireBilingual(errs, "title", n.Title)
	requireBilingual(errs, "description", n.Description)
	requireSlug(errs, n.Slug)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks publishable completeness for a product.
func (p Product) Validate() error {
	errs := validation.Errors{}
	requireBilingual(errs, "title", p.Title)
	requireBilingual(errs, "description", p.Description)
	requireSlug(errs, p.Slug)
	if p.Category == "" {
		errs["category"] = validation.NewError("backoffice.content.category_required", "category is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks publishable completeness for a recipe, including every
// ingredient and step.
func (r Recipe) Validate() error {
	errs := validation.Errors{}
	requireBilingual(errs, "title", r.Title)
	requireBilingual(errs, "description", r.Description)
	requireSlug(errs, r.Slug)
	for _, ingredient := range r.Ingredients {
		if !ingredient.Complete() {
			errs["ingredients"] = validation.NewError(
				"backoffice.content.ingredients_incomplete",
				"every ingredient requires both Arabic and English values",
			)
			break
		}
	}
	for _, step := range r.Steps {
		if !step.Complete() {
			errs["steps"] = validation.NewError(
				"backoffice.content.steps_incomplete",
				"every step requires both Arabic and English values",
			)
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks publishable completeness for a book.
func (b Book) Validate() error {
	errs := validation.Errors{}
	requireBilingual(errs, "title", b.Title)
	requireBilingual(errs, "description", b.Description)
	requireSlug(errs, b.Slug)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks publishable completeness for a hero slide. Slides are not
// slug-addressed; the image is the one mandatory asset.
func (h HeroSlide) Validate() error {
	errs := validation.Errors{}
	requireBilingual(errs, "title", h.Title)
	if h.Image == "" {
		errs["image"] = validation.NewError("backoffice.content.image_required", "image is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
