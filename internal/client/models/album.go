package models

// DerivedAlbum groups images that share Tag. It is recomputed whenever the
// image collection changes and is never persisted.
type DerivedAlbum struct {
	Tag    string
	Images []Image
}

// NamedAlbum is a user-created collection persisted by the backend.
type NamedAlbum struct {
	Name   string
	Images []Image
}

// Library is what the backend returns for a user: the flat image list plus
// the named albums.
type Library struct {
	Images []Image
	Albums []NamedAlbum
}
