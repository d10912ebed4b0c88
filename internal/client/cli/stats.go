package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/gophgallery/internal/client/gallery"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

// barWidth is the length of the longest bar in a chart.
const barWidth = 30

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// renderBars draws one horizontal bar per tag, scaled to the largest count.
func renderBars(counts []models.TagCount) string {
	if len(counts) == 0 {
		return ""
	}

	label, peak := 0, 0
	for _, c := range counts {
		label = max(label, lipgloss.Width(c.Tag))
		peak = max(peak, c.Count)
	}
	labelStyle := lipgloss.NewStyle().Width(label + 2)

	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		n := 0
		if peak > 0 {
			n = max(1, c.Count*barWidth/peak)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(c.Tag),
			barStyle.Render(strings.Repeat("█", n)),
			countStyle.Render(" "+strconv.Itoa(c.Count)),
		))
	}
	return strings.Join(lines, "\n")
}

func renderStats(st gallery.Stats) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Library"))
	fmt.Fprintf(&b, "\nImages: %d  Tags: %d  Avg tags/image: %.2f\n", st.TotalImages, st.DistinctTags, st.AvgTagsPerImage)
	fmt.Fprintf(&b, "Likes: %d  Downloads: %d\n", st.TotalLikes, st.TotalDownloads)

	if len(st.TopTags) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Top tags"))
		b.WriteString("\n")
		b.WriteString(renderBars(st.TopTags))
	}
	return b.String()
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	st, err := a.gallery.Stats(ctx, gallery.DefaultTop)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderStats(st))
	return nil
}

// Tags prints the popular tags as reported by the backend.
func (a *App) Tags(ctx context.Context, _ []string) error {
	tags, err := a.gallery.PopularTags(ctx, gallery.DefaultTop)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "No tags yet.")
		return nil
	}
	fmt.Fprintln(a.out, renderBars(tags))
	return nil
}
