package cli

import (
	"bytes"
	"context"
	"strings"

	"github.com/dmitrijs2005/gophgallery/internal/client/client"
	"github.com/dmitrijs2005/gophgallery/internal/client/gallery"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

func newTestApp(auth *fakeAuth, g *fakeGallery, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	if auth == nil {
		auth = &fakeAuth{}
	}
	if g == nil {
		g = &fakeGallery{}
	}
	return NewApp(auth, g, logging.Nop{}, strings.NewReader(input), &out), &out
}

type fakeAuth struct {
	user     string
	loginErr error
	logins   int
	logouts  int
	local    int

	pingErr error
	pings   int

	regArgs    [3]string
	regErr     error
	confirmed  [2]string
	confirmErr error
	resent     *string
	pending    string
}

func (f *fakeAuth) Login(context.Context) (string, error) {
	f.logins++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.user = "alice"
	return f.user, nil
}

func (f *fakeAuth) CompleteLogin(context.Context, string) (string, error) { return f.user, nil }

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	f.user = ""
	return nil
}

func (f *fakeAuth) LogoutLocal(context.Context) error {
	f.local++
	f.user = ""
	return nil
}

func (f *fakeAuth) IsLoggedIn(context.Context) bool  { return f.user != "" }
func (f *fakeAuth) Username(context.Context) string { return f.user }

func (f *fakeAuth) Register(_ context.Context, username, password, email string) error {
	f.regArgs = [3]string{username, password, email}
	if f.regErr == nil {
		f.pending = username
	}
	return f.regErr
}

func (f *fakeAuth) Confirm(_ context.Context, username, code string) error {
	f.confirmed = [2]string{username, code}
	return f.confirmErr
}

func (f *fakeAuth) ResendCode(_ context.Context, username string) error {
	f.resent = &username
	return nil
}

func (f *fakeAuth) PendingConfirmation() (string, bool) { return f.pending, f.pending != "" }

func (f *fakeAuth) Ping(context.Context) error {
	f.pings++
	return f.pingErr
}

type fakeGallery struct {
	lib    models.Library
	albums []models.DerivedAlbum
	stats  gallery.Stats
	tags   []models.TagCount
	err    error

	query    string
	uploaded []string
	upTags   []string
	calls    []string
}

func (f *fakeGallery) record(call ...string) error {
	f.calls = append(f.calls, strings.Join(call, " "))
	return f.err
}

func (f *fakeGallery) Library(context.Context) (*models.Library, error) {
	if err := f.record("library"); err != nil {
		return nil, err
	}
	return &f.lib, nil
}

func (f *fakeGallery) DerivedAlbums(context.Context) ([]models.DerivedAlbum, error) {
	return f.albums, f.record("albums")
}

func (f *fakeGallery) Search(_ context.Context, query string) ([]models.Image, error) {
	f.query = query
	return gallery.Search(f.lib.Images, query), f.record("search")
}

func (f *fakeGallery) FilterByTag(_ context.Context, tag string) ([]models.Image, error) {
	return gallery.FilterByTag(f.lib.Images, tag), f.record("tag", tag)
}

func (f *fakeGallery) Stats(context.Context, int) (gallery.Stats, error) {
	return f.stats, f.record("stats")
}

func (f *fakeGallery) PopularTags(context.Context, int) ([]models.TagCount, error) {
	return f.tags, f.record("tags")
}

func (f *fakeGallery) Upload(_ context.Context, path, name string, tags []string) (*client.UploadResult, error) {
	f.uploaded = []string{path, name}
	f.upTags = tags
	if err := f.record("upload"); err != nil {
		return nil, err
	}
	return &client.UploadResult{Filename: "u-" + name}, nil
}

func (f *fakeGallery) Delete(_ context.Context, filename string) error {
	return f.record("delete", filename)
}

func (f *fakeGallery) CreateAlbum(_ context.Context, name string) error {
	return f.record("mkalbum", name)
}

func (f *fakeGallery) DeleteAlbum(_ context.Context, name string) error {
	return f.record("rmalbum", name)
}

func (f *fakeGallery) Move(_ context.Context, filename, target string) error {
	return f.record("move", filename, target)
}

func (f *fakeGallery) Download(_ context.Context, filename string) (string, error) {
	return "/tmp/" + filename, f.record("download", filename)
}
