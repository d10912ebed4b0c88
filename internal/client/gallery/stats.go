package gallery

import (
	"math"
	"sort"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

// DefaultTop is how many tags the stats view shows.
const DefaultTop = 8

// Stats summarises tag usage across a collection.
type Stats struct {
	TotalImages     int
	DistinctTags    int
	AvgTagsPerImage float64
	TotalLikes      int
	TotalDownloads  int
	// TopTags is ordered by count, highest first; equal counts by tag.
	TopTags []models.TagCount
}

// ComputeStats counts every tag occurrence and keeps the top most used
// tags. top <= 0 keeps all of them.
func ComputeStats(images []models.Image, top int) Stats {
	counts := make(map[string]int)
	var s Stats
	tagTotal := 0

	for _, img := range images {
		for _, t := range img.Tags {
			counts[t]++
		}
		tagTotal += len(img.Tags)
		s.TotalLikes += img.Likes
		s.TotalDownloads += img.Downloads
	}

	s.TotalImages = len(images)
	s.DistinctTags = len(counts)
	if s.TotalImages > 0 {
		avg := float64(tagTotal) / float64(s.TotalImages)
		s.AvgTagsPerImage = math.Round(avg*100) / 100
	}

	s.TopTags = SortTagCounts(counts)
	if top > 0 && len(s.TopTags) > top {
		s.TopTags = s.TopTags[:top]
	}
	return s
}

// SortTagCounts flattens counts into a slice ordered by count descending,
// then by tag name.
func SortTagCounts(counts map[string]int) []models.TagCount {
	out := make([]models.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, models.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
