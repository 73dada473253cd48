package gallery

import (
	"path"
	"strings"
)

const DefaultCategory = "haircuts"

// folderCategories maps bucket folder names onto the site's category
// set. Unknown folders pass through as slugified category names.
var folderCategories = map[string]string{
	"haircuts": "haircuts",
	"beard":    "beard",
	"styling":  "styling",
	"shave":    "shave",
	"creative": "creative",
	"premium":  "premium",
}

// CategoryForKey derives a category from an object key's first path
// segment. Keys without a folder default to haircuts.
func CategoryForKey(key string) string {
	if !strings.Contains(key, "/") {
		return DefaultCategory
	}

	folder := strings.ToLower(strings.SplitN(key, "/", 2)[0])

	if cat, ok := folderCategories[folder]; ok {
		return cat
	}
	if strings.Contains(folder, "service") {
		return "full-service"
	}

	return strings.ReplaceAll(strings.TrimSpace(folder), " ", "-")
}

// TitleForKey turns an object key into a display title: filename minus
// extension, separators replaced with spaces, first letter capitalized.
func TitleForKey(key string) string {
	name := path.Base(key)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "Media"
	}

	return strings.ToUpper(name[:1]) + name[1:]
}

// IsMediaKey reports whether an object key looks like a listable media
// file: not a folder placeholder, has a file extension, and carries an
// image or video content type.
func IsMediaKey(key, contentType string) bool {
	if strings.HasSuffix(key, "/") || !strings.Contains(path.Base(key), ".") {
		return false
	}

	return strings.HasPrefix(contentType, "image/") ||
		strings.HasPrefix(contentType, "video/")
}

// MatchesCategory applies the gallery filter semantics: empty or "all"
// matches everything.
func MatchesCategory(img Image, category string) bool {
	return category == "" || category == "all" || img.Category == category
}
