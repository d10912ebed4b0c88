package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/gophgallery/internal/client/callback"
	"github.com/dmitrijs2005/gophgallery/internal/client/client"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	PingErr error

	RegisterErr  error
	ConfirmErr   error
	ResendErr    error
	LastRegister [3]string
	LastConfirm  [2]string
	LastResend   string

	Library    *models.Library
	ListErr    error
	ListCalls  int
	LastListed string

	Tags    []models.TagCount
	TagsErr error

	UploadErr     error
	LastUpload    client.UploadRequest
	UploadedBytes string

	MutationErr  error
	LastMutation []string
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) ExchangeCode(context.Context, string, string) (models.TokenSet, error) {
	return models.TokenSet{}, nil
}

func (f *fakeClient) Register(_ context.Context, username, password, email string) error {
	f.LastRegister = [3]string{username, password, email}
	return f.RegisterErr
}

func (f *fakeClient) Confirm(_ context.Context, username, code string) error {
	f.LastConfirm = [2]string{username, code}
	return f.ConfirmErr
}

func (f *fakeClient) ResendCode(_ context.Context, username string) error {
	f.LastResend = username
	return f.ResendErr
}

func (f *fakeClient) ListImages(_ context.Context, userID string) (*models.Library, error) {
	f.ListCalls++
	f.LastListed = userID
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if f.Library == nil {
		return &models.Library{}, nil
	}
	return f.Library, nil
}

func (f *fakeClient) UploadImage(_ context.Context, req client.UploadRequest) (*client.UploadResult, error) {
	f.LastUpload = req
	b, _ := io.ReadAll(req.Content)
	f.UploadedBytes = string(b)
	if f.UploadErr != nil {
		return nil, f.UploadErr
	}
	return &client.UploadResult{Filename: "stored-" + req.Filename, Name: req.Name, Tags: req.Tags}, nil
}

func (f *fakeClient) DeleteImage(_ context.Context, owner, filename string) error {
	f.LastMutation = []string{"delete", owner, filename}
	return f.MutationErr
}

func (f *fakeClient) MoveImage(_ context.Context, userID, filename, album string) error {
	f.LastMutation = []string{"move", userID, filename, album}
	return f.MutationErr
}

func (f *fakeClient) CreateAlbum(_ context.Context, userID, name string) error {
	f.LastMutation = []string{"mkalbum", userID, name}
	return f.MutationErr
}

func (f *fakeClient) DeleteAlbum(_ context.Context, userID, name string) error {
	f.LastMutation = []string{"rmalbum", userID, name}
	return f.MutationErr
}

func (f *fakeClient) PopularTags(context.Context, string) ([]models.TagCount, error) {
	return f.Tags, f.TagsErr
}

// fakeSession implements SessionManager.
type fakeSession struct {
	Tokens      models.TokenSet
	ExchangeErr error
	PersistErr  error
	RedirectErr error
	IDClaims    models.IDClaims

	Redirects    int
	Exchanged    []string
	Persisted    []models.TokenSet
	LocalLogouts int
	Logouts      int
}

func (f *fakeSession) RedirectToLogin(context.Context) error {
	f.Redirects++
	return f.RedirectErr
}

func (f *fakeSession) ExchangeCodeForTokens(_ context.Context, code string) (models.TokenSet, error) {
	f.Exchanged = append(f.Exchanged, code)
	if f.ExchangeErr != nil {
		return models.TokenSet{}, f.ExchangeErr
	}
	return models.TokenSet{AccessToken: "acc-" + code, IDToken: "id-" + code}, nil
}

func (f *fakeSession) Persist(_ context.Context, t models.TokenSet) error {
	f.Persisted = append(f.Persisted, t)
	if f.PersistErr != nil {
		return f.PersistErr
	}
	f.Tokens = t
	return nil
}

func (f *fakeSession) IsLoggedIn(context.Context) bool { return !f.Tokens.Empty() }

func (f *fakeSession) Current(context.Context) (models.TokenSet, error) {
	if f.Tokens.Empty() {
		return models.TokenSet{}, common.ErrNoSession
	}
	return f.Tokens, nil
}

func (f *fakeSession) Claims(context.Context) models.IDClaims { return f.IDClaims }

func (f *fakeSession) LogoutLocal(context.Context) error {
	f.LocalLogouts++
	f.Tokens = models.TokenSet{}
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) error {
	f.Logouts++
	return f.LogoutLocal(ctx)
}

// fakeListener hands out a preset redirect result.
type fakeListener struct {
	Result   callback.Result
	WaitErr  error
	StartErr error

	Started        bool
	ShutdownCalled bool
}

func (l *fakeListener) Start() error {
	l.Started = true
	return l.StartErr
}

func (l *fakeListener) Wait(ctx context.Context) (callback.Result, error) {
	if l.WaitErr != nil {
		return callback.Result{}, l.WaitErr
	}
	return l.Result, nil
}

func (l *fakeListener) Shutdown(context.Context) error {
	l.ShutdownCalled = true
	return nil
}

type fakeDownloader struct {
	Key string
	Err error
}

func (d *fakeDownloader) Download(_ context.Context, key string) (string, error) {
	d.Key = key
	return "/tmp/" + key, d.Err
}
