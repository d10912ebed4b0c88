package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gophgallery/internal/client/album"
	"github.com/dmitrijs2005/gophgallery/internal/client/client"
	"github.com/dmitrijs2005/gophgallery/internal/client/gallery"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

// ErrDownloadsDisabled is returned by Download when no bucket is configured.
var ErrDownloadsDisabled = errors.New("downloads are not configured")

// GalleryService is what the CLI does with the signed-in user's images.
// Every call resolves the user from the current session and fails with
// common.ErrNoSession when there is none.
type GalleryService interface {
	Library(ctx context.Context) (*models.Library, error)
	DerivedAlbums(ctx context.Context) ([]models.DerivedAlbum, error)
	Search(ctx context.Context, query string) ([]models.Image, error)
	FilterByTag(ctx context.Context, tag string) ([]models.Image, error)
	Stats(ctx context.Context, top int) (gallery.Stats, error)
	PopularTags(ctx context.Context, limit int) ([]models.TagCount, error)

	Upload(ctx context.Context, path, name string, tags []string) (*client.UploadResult, error)
	Delete(ctx context.Context, filename string) error
	CreateAlbum(ctx context.Context, name string) error
	DeleteAlbum(ctx context.Context, name string) error
	Move(ctx context.Context, filename, target string) error
	Download(ctx context.Context, filename string) (string, error)
}

// Downloader fetches one stored object to local disk.
type Downloader interface {
	Download(ctx context.Context, key string) (string, error)
}

type galleryService struct {
	client     client.Client
	tokens     client.TokenSource
	downloader Downloader
	log        logging.Logger
}

// NewGalleryService wires the service. downloader may be nil.
func NewGalleryService(c client.Client, tokens client.TokenSource, downloader Downloader, log logging.Logger) GalleryService {
	return &galleryService{client: c, tokens: tokens, downloader: downloader, log: log}
}

func (s *galleryService) user(ctx context.Context) (string, error) {
	ts, err := s.tokens.Current(ctx)
	if err != nil {
		return "", err
	}
	if ts.Username == "" {
		return "", common.ErrNoSession
	}
	return ts.Username, nil
}

func (s *galleryService) Library(ctx context.Context) (*models.Library, error) {
	user, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	lib, err := s.client.ListImages(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return lib, nil
}

func (s *galleryService) images(ctx context.Context) ([]models.Image, error) {
	lib, err := s.Library(ctx)
	if err != nil {
		return nil, err
	}
	return lib.Images, nil
}

func (s *galleryService) DerivedAlbums(ctx context.Context) ([]models.DerivedAlbum, error) {
	imgs, err := s.images(ctx)
	if err != nil {
		return nil, err
	}
	return album.Group(imgs), nil
}

func (s *galleryService) Search(ctx context.Context, query string) ([]models.Image, error) {
	imgs, err := s.images(ctx)
	if err != nil {
		return nil, err
	}
	return gallery.Search(imgs, query), nil
}

func (s *galleryService) FilterByTag(ctx context.Context, tag string) ([]models.Image, error) {
	imgs, err := s.images(ctx)
	if err != nil {
		return nil, err
	}
	return gallery.FilterByTag(imgs, tag), nil
}

func (s *galleryService) Stats(ctx context.Context, top int) (gallery.Stats, error) {
	imgs, err := s.images(ctx)
	if err != nil {
		return gallery.Stats{}, err
	}
	return gallery.ComputeStats(imgs, top), nil
}

// PopularTags asks the backend and falls back to counting the user's own
// images when that fails for any reason other than authorization.
func (s *galleryService) PopularTags(ctx context.Context, limit int) ([]models.TagCount, error) {
	user, err := s.user(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := s.client.PopularTags(ctx, user)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return nil, err
		}
		s.log.Warn(ctx, "popular tags unavailable, counting locally", "error", err)

		stats, serr := s.Stats(ctx, 0)
		if serr != nil {
			return nil, err
		}
		tags = stats.TopTags
	}

	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

func (s *galleryService) Upload(ctx context.Context, path, name string, tags []string) (*client.UploadResult, error) {
	user, err := s.user(ctx)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	filename := filepath.Base(path)
	if name == "" {
		name = filename
	}

	res, err := s.client.UploadImage(ctx, client.UploadRequest{
		UserID:   user,
		Filename: filename,
		Name:     name,
		Tags:     tags,
		Content:  f,
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}
	s.log.Info(ctx, "image uploaded", "file", res.Filename, "tags", len(res.Tags))
	return res, nil
}

func (s *galleryService) Delete(ctx context.Context, filename string) error {
	user, err := s.user(ctx)
	if err != nil {
		return err
	}
	return s.client.DeleteImage(ctx, user, filename)
}

func (s *galleryService) CreateAlbum(ctx context.Context, name string) error {
	user, err := s.user(ctx)
	if err != nil {
		return err
	}
	return s.client.CreateAlbum(ctx, user, name)
}

func (s *galleryService) DeleteAlbum(ctx context.Context, name string) error {
	user, err := s.user(ctx)
	if err != nil {
		return err
	}
	return s.client.DeleteAlbum(ctx, user, name)
}

func (s *galleryService) Move(ctx context.Context, filename, target string) error {
	user, err := s.user(ctx)
	if err != nil {
		return err
	}
	return s.client.MoveImage(ctx, user, filename, target)
}

// Download saves the image with the given filename, as listed by Library,
// and returns the local path.
func (s *galleryService) Download(ctx context.Context, filename string) (string, error) {
	if s.downloader == nil {
		return "", ErrDownloadsDisabled
	}
	if _, err := s.user(ctx); err != nil {
		return "", err
	}
	return s.downloader.Download(ctx, filename)
}
