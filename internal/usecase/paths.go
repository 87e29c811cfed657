package usecase

import (
	"net/url"
	"strings"
)

// itemPath builds "/collection/<escaped id>/suffix...".
func itemPath(collection, id string, suffix ...string) string {
	parts := append([]string{"", collection, url.PathEscape(id)}, suffix...)
	return strings.Join(parts, "/")
}
