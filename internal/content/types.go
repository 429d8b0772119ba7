// Package content defines the entity shapes the corporate site publishes in
// both Arabic and English, plus the list filters shared by the public fetch
// layer and the admin cache.
package content

import "time"

// Bilingual is a user-facing text value carried in both site languages.
// Publishable content requires both sides to be present.
type Bilingual struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// Complete reports whether both languages are populated.
func (b Bilingual) Complete() bool {
	return b.AR != "" && b.EN != ""
}

// In returns the value for the given locale, falling back to Arabic.
func (b Bilingual) In(locale string) string {
	if locale == "en" {
		return b.EN
	}
	return b.AR
}

// News is a published announcement or press item.
type News struct {
	ID          string    `json:"_id"`
	Title       Bilingual `json:"title"`
	Description Bilingual `json:"description"`
	Slug        string    `json:"slug"`
	Image       string    `json:"image,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product belongs to one of the holding's business units (poultry, feed,
// fish, dates); Category carries the unit key used for filtering.
type Product struct {
	ID          string    `json:"_id"`
	Title       Bilingual `json:"title"`
	Description Bilingual `json:"description"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Gallery     []string  `json:"gallery,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Recipe pairs bilingual instructions with a product category.
type Recipe struct {
	ID          string      `json:"_id"`
	Title       Bilingual   `json:"title"`
	Description Bilingual   `json:"description"`
	Ingredients []Bilingual `json:"ingredients,omitempty"`
	Steps       []Bilingual `json:"steps,omitempty"`
	Slug        string      `json:"slug"`
	Category    string      `json:"category"`
	Image       string      `json:"image,omitempty"`
	Published   bool        `json:"published"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Book is a downloadable publication; File is the opaque asset-host
// identifier resolved through the download endpoint.
type Book struct {
	ID          string    `json:"_id"`
	Title       Bilingual `json:"title"`
	Description Bilingual `json:"description"`
	Slug        string    `json:"slug"`
	Cover       string    `json:"cover,omitempty"`
	File        string    `json:"file,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HeroSlide is one entry of the home-page carousel; Order controls its
// position and is mutated through a dedicated endpoint.
type HeroSlide struct {
	ID        string    `json:"_id"`
	Title     Bilingual `json:"title"`
	Subtitle  Bilingual `json:"subtitle"`
	Image     string    `json:"image"`
	Link      string    `json:"link,omitempty"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
