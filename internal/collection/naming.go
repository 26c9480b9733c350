package collection

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

// AlbumName normalizes a pack name for use as the album identifier in
// desktop-environment config files: slugified, first letter uppercased,
// hyphens replaced with dots (e.g. "community 1" -> "Community.1").
func AlbumName(packName string) string {
	return strings.ReplaceAll(upperFirst(slug.Make(packName)), "-", ".")
}

// EntryName derives the unique install name for a wallpaper:
// <pack>--<username>--<TitleCamel>, where TitleCamel is the slugified title
// with each segment's first letter uppercased and separators removed.
func EntryName(packName, username, title string) string {
	segments := strings.Split(slug.Make(title), "-")
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(upperFirst(s))
	}
	return packName + "--" + username + "--" + b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
