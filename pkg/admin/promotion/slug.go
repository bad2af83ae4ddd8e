package promotion

import (
	"strings"
	"unicode"

	"casino-admin-be/internal/pkg/apperror"
)

const maxSlugLen = 200

// Slugify lowercases s and joins runs of letters and digits with single
// hyphens. Non-ASCII letters are dropped.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	return slug
}

// ResolveSlug uses the explicit slug when given, otherwise derives one from title.
func ResolveSlug(slug, title string) (string, error) {
	field := "slug"
	source := slug
	if strings.TrimSpace(slug) == "" {
		field = "title"
		source = title
	}
	out := Slugify(source)
	if out == "" {
		return "", apperror.Field(field, "must contain letters or digits")
	}
	return out, nil
}
