package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

func names(imgs []models.Image) []string {
	var out []string
	for _, i := range imgs {
		out = append(out, i.Name)
	}
	return out
}

var sample = []models.Image{
	{Name: "Beach at dusk", Tags: []string{"Sea", "sunset"}},
	{Name: "Tabby", Tags: []string{"cat"}},
	{Name: "Harbour", Tags: []string{"sea", "boats"}},
	{Name: "Untitled"},
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"blank returns all", "  ", []string{"Beach at dusk", "Tabby", "Harbour", "Untitled"}},
		{"name substring any case", "TAB", []string{"Tabby"}},
		{"tag substring any case", "sea", []string{"Beach at dusk", "Harbour"}},
		{"partial tag", "boa", []string{"Harbour"}},
		{"no match", "mountain", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Search(sample, tt.query)))
		})
	}
}

func TestFilterByTag(t *testing.T) {
	assert.Equal(t, []string{"Harbour"}, names(FilterByTag(sample, "sea")))
	assert.Equal(t, []string{"Beach at dusk"}, names(FilterByTag(sample, "Sea")))
	assert.Empty(t, FilterByTag(sample, "se"))
	assert.Empty(t, FilterByTag(nil, "sea"))
}
