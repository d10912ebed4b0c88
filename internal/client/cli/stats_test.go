package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophgallery/internal/client/gallery"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

func TestRenderBars(t *testing.T) {
	got := renderBars([]models.TagCount{
		{Tag: "cat", Count: 10},
		{Tag: "seaside", Count: 5},
		{Tag: "x", Count: 0},
	})

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, barWidth, strings.Count(lines[0], "█"))
	assert.Equal(t, barWidth/2, strings.Count(lines[1], "█"))
	assert.Equal(t, 1, strings.Count(lines[2], "█"), "every tag gets a visible bar")
	assert.True(t, strings.HasPrefix(lines[0], "cat "))
	assert.True(t, strings.HasSuffix(lines[1], " 5"))

	assert.Empty(t, renderBars(nil))
}

func TestStatsCommand(t *testing.T) {
	g := &fakeGallery{stats: gallery.Stats{
		TotalImages:     3,
		DistinctTags:    2,
		AvgTagsPerImage: 1.33,
		TotalLikes:      7,
		TopTags:         []models.TagCount{{Tag: "cat", Count: 2}, {Tag: "pet", Count: 2}},
	}}
	a, out := newTestApp(nil, g, "")

	require.NoError(t, a.Stats(context.Background(), nil))

	assert.Contains(t, out.String(), "Images: 3  Tags: 2  Avg tags/image: 1.33")
	assert.Contains(t, out.String(), "Likes: 7  Downloads: 0")
	assert.Contains(t, out.String(), "Top tags")
	assert.Equal(t, 2*barWidth, strings.Count(out.String(), "█"))
}

func TestTagsCommand(t *testing.T) {
	g := &fakeGallery{}
	a, out := newTestApp(nil, g, "")
	ctx := context.Background()

	require.NoError(t, a.Tags(ctx, nil))
	assert.Contains(t, out.String(), "No tags yet.")

	g.tags = []models.TagCount{{Tag: "sea", Count: 4}}
	out.Reset()
	require.NoError(t, a.Tags(ctx, nil))
	assert.Contains(t, out.String(), "sea")
	assert.Contains(t, out.String(), "4")
}
