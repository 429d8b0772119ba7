package content

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestBilingualComplete(t *testing.T) {
	if (Bilingual{AR: "خبر"}).Complete() {
		t.Fatal("missing English side must not be complete")
	}
	if (Bilingual{EN: "News"}).Complete() {
		t.Fatal("missing Arabic side must not be complete")
	}
	if !(Bilingual{AR: "خبر", EN: "News"}).Complete() {
		t.Fatal("both sides populated must be complete")
	}
}

func TestBilingualIn(t *testing.T) {
	b := Bilingual{AR: "دجاج", EN: "Poultry"}
	if b.In("en") != "Poultry" {
		t.Fatalf("expected English value, got %q", b.In("en"))
	}
	if b.In("ar") != "دجاج" {
		t.Fatalf("expected Arabic value, got %q", b.In("ar"))
	}
	if b.In("fr") != "دجاج" {
		t.Fatal("unknown locale must fall back to Arabic")
	}
}

func TestNewsValidate(t *testing.T) {
	item := News{
		Title:       Bilingual{AR: "خبر", EN: "News"},
		Description: Bilingual{AR: "وصف", EN: "Description"},
		Slug:        "spring-harvest",
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("complete news must validate: %v", err)
	}

	item.Description.EN = ""
	err := item.Validate()
	if err == nil {
		t.Fatal("incomplete bilingual field must fail validation")
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, ok := errs["description"]; !ok {
		t.Fatalf("expected description error, got %v", errs)
	}
}

func TestRecipeValidateChecksEveryStep(t *testing.T) {
	recipe := Recipe{
		Title:       Bilingual{AR: "وصفة", EN: "Recipe"},
		Description: Bilingual{AR: "وصف", EN: "Description"},
		Slug:        "grilled-chicken",
		Ingredients: []Bilingual{{AR: "دجاج", EN: "Chicken"}},
		Steps:       []Bilingual{{AR: "اشوِ", EN: "Grill"}, {AR: "قدّم"}},
	}
	err := recipe.Validate()
	if err == nil {
		t.Fatal("step missing a language must fail validation")
	}
	if _, ok := err.(validation.Errors)["steps"]; !ok {
		t.Fatalf("expected steps error, got %v", err)
	}
}

func TestHeroSlideValidateRequiresImage(t *testing.T) {
	slide := HeroSlide{Title: Bilingual{AR: "عنوان", EN: "Title"}}
	if err := slide.Validate(); err == nil {
		t.Fatal("slide without image must fail validation")
	}
	slide.Image = "https://assets.example.com/h.jpg"
	if err := slide.Validate(); err != nil {
		t.Fatalf("slide with image must validate: %v", err)
	}
}

func TestListOptionsVariant(t *testing.T) {
	if v := (ListOptions{}).Variant(); v != "" {
		t.Fatalf("zero options must serialize empty, got %q", v)
	}

	a := ListOptions{Search: "dates", Category: "dates", Page: 2, Limit: 10}
	b := ListOptions{Search: "dates", Category: "dates", Page: 2, Limit: 10}
	if a.Variant() != b.Variant() {
		t.Fatal("equal options must serialize identically")
	}
	if a.Variant() == (ListOptions{Search: "dates"}).Variant() {
		t.Fatal("different options must serialize differently")
	}
}

func TestListOptionsQuery(t *testing.T) {
	q := ListOptions{Search: "feed", Page: 3}.Query()
	if q["search"] != "feed" || q["page"] != "3" {
		t.Fatalf("unexpected query: %v", q)
	}
	if _, ok := q["category"]; ok {
		t.Fatal("zero category must be omitted")
	}
}
