package content

import "github.com/goliatone/go-slug"

// NormalizeSlug applies the default slug normalization rules to an
// editor-supplied value, typically the English title.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
