// Package gallery implements read-only queries over a user's image
// collection: free-text search, tag filtering and tag statistics.
package gallery

import (
	"strings"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

// Search returns the images whose name or any tag contains query, ignoring
// case. A blank query matches everything.
func Search(images []models.Image, query string) []models.Image {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return images
	}

	var out []models.Image
	for _, img := range images {
		if matches(img, q) {
			out = append(out, img)
		}
	}
	return out
}

func matches(img models.Image, q string) bool {
	if strings.Contains(strings.ToLower(img.Name), q) {
		return true
	}
	for _, t := range img.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// FilterByTag returns the images carrying tag exactly.
func FilterByTag(images []models.Image, tag string) []models.Image {
	var out []models.Image
	for _, img := range images {
		if img.HasTag(tag) {
			out = append(out, img)
		}
	}
	return out
}
