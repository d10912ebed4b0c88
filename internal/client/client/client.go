package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

type Client interface {
	Ping(ctx context.Context) error

	ExchangeCode(ctx context.Context, code, redirectURI string) (models.TokenSet, error)
	Register(ctx context.Context, username, password, email string) error
	Confirm(ctx context.Context, username, code string) error
	ResendCode(ctx context.Context, username string) error

	ListImages(ctx context.Context, userID string) (*models.Library, error)
	UploadImage(ctx context.Context, req UploadRequest) (*UploadResult, error)
	DeleteImage(ctx context.Context, owner, filename string) error
	MoveImage(ctx context.Context, userID, filename, album string) error
	CreateAlbum(ctx context.Context, userID, name string) error
	DeleteAlbum(ctx context.Context, userID, name string) error
	PopularTags(ctx context.Context, userID string) ([]models.TagCount, error)
}

// UploadRequest is one multipart upload.
type UploadRequest struct {
	UserID   string    `validate:"required"`
	Filename string    `validate:"required"`
	Name     string    `validate:"max=200"`
	Tags     []string  `validate:"max=20,dive,required,max=50"`
	Content  io.Reader `validate:"required"`
}

// UploadResult is what the backend reports for a stored image.
type UploadResult struct {
	URL      string   `json:"url"`
	Filename string   `json:"filename"`
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
}
