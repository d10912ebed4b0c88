package album

import (
	"sort"
	"strconv"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

// MinMembers is the smallest number of images that makes an album.
const MinMembers = 2

type candidate struct {
	tag    string
	images []int // indexes into the input slice
}

// Group returns the derived albums of images in processing order.
func Group(images []models.Image) []models.DerivedAlbum {
	candidates := collect(images)

	// stable: equal-size groups keep first-appearance order
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].images) < len(candidates[j].images)
	})

	claimed := make(map[string]struct{}, len(images))
	var albums []models.DerivedAlbum

	for _, c := range candidates {
		var members []int
		for _, idx := range c.images {
			if _, taken := claimed[claimKey(images, idx)]; taken {
				continue
			}
			members = append(members, idx)
		}

		if len(members) < MinMembers {
			continue
		}

		album := models.DerivedAlbum{Tag: c.tag, Images: make([]models.Image, 0, len(members))}
		for _, idx := range members {
			claimed[claimKey(images, idx)] = struct{}{}
			album.Images = append(album.Images, images[idx])
		}
		albums = append(albums, album)
	}

	return albums
}

// collect maps tags to the images carrying them, dropping singletons. The
// result is ordered by first appearance of each tag.
func collect(images []models.Image) []candidate {
	index := make(map[string]int)
	var out []candidate

	for i, img := range images {
		seen := make(map[string]struct{}, len(img.Tags))
		for _, tag := range img.Tags {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}

			pos, ok := index[tag]
			if !ok {
				pos = len(out)
				index[tag] = pos
				out = append(out, candidate{tag: tag})
			}
			out[pos].images = append(out[pos].images, i)
		}
	}

	kept := out[:0]
	for _, c := range out {
		if len(c.images) >= MinMembers {
			kept = append(kept, c)
		}
	}
	return kept
}

// claimKey is the image Key, or its position when the record has none so
// that anonymous images never shadow each other.
func claimKey(images []models.Image, idx int) string {
	if k := images[idx].Key; k != "" {
		return "k:" + k
	}
	return "#" + strconv.Itoa(idx)
}

// ByTag turns Group's result into a tag → members mapping.
func ByTag(albums []models.DerivedAlbum) map[string][]models.Image {
	m := make(map[string][]models.Image, len(albums))
	for _, a := range albums {
		m[a.Tag] = a.Images
	}
	return m
}
