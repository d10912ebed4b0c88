// Package models defines the client-side data model of the gallery.
package models

import (
	"strings"
	"time"
)

// Image is the canonical record of one uploaded asset.
type Image struct {
	// Key is the stable identity used for album assignment. It is computed
	// once by NewImage and never changes for the lifetime of the record.
	Key string

	// ID is the backend identifier, when the backend provides one.
	ID string
	// Name is the display title.
	Name string
	// Filename is the storage key of the object.
	Filename string
	// URL is the public location of the object.
	URL string
	// Owner is the user the image belongs to.
	Owner string

	// Tags are free-text labels in the order the user entered them.
	// A nil slice means the image has no tags.
	Tags []string

	Likes     int
	Downloads int
	Size      int64

	UploadedAt time.Time
}

// NewImage fills in Key from the first non-empty of Filename, Name and ID.
func NewImage(img Image) Image {
	img.Key = identity(img)
	return img
}

func identity(img Image) string {
	switch {
	case img.Filename != "":
		return img.Filename
	case img.Name != "":
		return img.Name
	default:
		return img.ID
	}
}

// HasTag reports whether the image carries tag exactly.
func (i Image) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagsFromString splits a comma separated tag list as typed by the user,
// trimming blanks and dropping empty items.
func TagsFromString(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// TagCount is one entry of the popular-tags list.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
