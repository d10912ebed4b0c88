package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func renderImages(images []models.Image) string {
	rows := make([][]string, 0, len(images))
	for _, img := range images {
		rows = append(rows, []string{
			img.Filename,
			img.Name,
			strings.Join(img.Tags, ", "),
			strconv.Itoa(img.Likes),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("FILE", "NAME", "TAGS", "LIKES").
		Rows(rows...).
		String()
}

func (a *App) printImages(images []models.Image, empty string) {
	if len(images) == 0 {
		fmt.Fprintln(a.out, empty)
		return
	}
	fmt.Fprintln(a.out, renderImages(images))
}

func (a *App) List(ctx context.Context, _ []string) error {
	lib, err := a.gallery.Library(ctx)
	if err != nil {
		return err
	}

	a.printImages(lib.Images, "No images yet. Use 'upload <path>' to add one.")

	for _, al := range lib.Albums {
		fmt.Fprintf(a.out, "Album %q: %d image(s)\n", al.Name, len(al.Images))
	}
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	found, err := a.gallery.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printImages(found, "Nothing matches.")
	return nil
}

func (a *App) Tag(ctx context.Context, args []string) error {
	found, err := a.gallery.FilterByTag(ctx, args[0])
	if err != nil {
		return err
	}
	a.printImages(found, "No image carries that tag.")
	return nil
}

// Albums prints the albums derived from shared tags.
func (a *App) Albums(ctx context.Context, _ []string) error {
	albums, err := a.gallery.DerivedAlbums(ctx)
	if err != nil {
		return err
	}
	if len(albums) == 0 {
		fmt.Fprintln(a.out, "No albums yet. Tag at least two images alike to form one.")
		return nil
	}

	for _, al := range albums {
		keys := make([]string, 0, len(al.Images))
		for _, img := range al.Images {
			keys = append(keys, img.Key)
		}
		fmt.Fprintf(a.out, "#%s (%d): %s\n", al.Tag, len(al.Images), strings.Join(keys, ", "))
	}
	return nil
}

// Upload sends a local file: upload <path> [name] [tag1,tag2].
func (a *App) Upload(ctx context.Context, args []string) error {
	var name, tags string
	if len(args) > 1 {
		name = args[1]
	}
	if len(args) > 2 {
		tags = strings.Join(args[2:], ",")
	}

	res, err := a.gallery.Upload(ctx, args[0], name, models.TagsFromString(tags))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %s as %s\n", args[0], res.Filename)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.gallery.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", args[0])
	return nil
}

func (a *App) MkAlbum(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if err := a.gallery.CreateAlbum(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Album %q created\n", name)
	return nil
}

func (a *App) RmAlbum(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if err := a.gallery.DeleteAlbum(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Album %q deleted\n", name)
	return nil
}

func (a *App) Move(ctx context.Context, args []string) error {
	target := strings.Join(args[1:], " ")
	if err := a.gallery.Move(ctx, args[0], target); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Moved %s to %q\n", args[0], target)
	return nil
}

func (a *App) Download(ctx context.Context, args []string) error {
	path, err := a.gallery.Download(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved to", path)
	return nil
}
