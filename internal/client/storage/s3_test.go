package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophgallery/internal/common"
)

type fakeGetter struct {
	body   string
	err    error
	bucket string
	key    string
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

type failingGetter struct{}

func (failingGetter) GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return &s3.GetObjectOutput{Body: io.NopCloser(failingReader{})}, nil
}

func swapSeams(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})
}

func TestNewS3Downloader_AppliesOptions(t *testing.T) {
	swapSeams(t)

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{}, nil
	}

	var s3opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectGetter {
		for _, fn := range optFns {
			fn(&s3opts)
		}
		return &fakeGetter{}
	}

	_, err := NewS3Downloader(context.Background(), Options{
		Bucket:    "gallery",
		Region:    "eu-west-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", lo.Region)
	require.NotNil(t, lo.Credentials)
	creds, err := lo.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "minioadmin", creds.AccessKeyID)

	require.NotNil(t, s3opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *s3opts.BaseEndpoint)
	assert.True(t, s3opts.UsePathStyle)
}

func TestNewS3Downloader_AnonymousWithoutKeys(t *testing.T) {
	swapSeams(t)

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{}, nil
	}
	var s3opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectGetter {
		for _, fn := range optFns {
			fn(&s3opts)
		}
		return &fakeGetter{}
	}

	_, err := NewS3Downloader(context.Background(), Options{Bucket: "b", Region: "us-east-1"})
	require.NoError(t, err)

	assert.IsType(t, aws.AnonymousCredentials{}, lo.Credentials)
	assert.Nil(t, s3opts.BaseEndpoint)
}

func TestNewS3Downloader_ConfigError(t *testing.T) {
	swapSeams(t)
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("bad profile")
	}

	_, err := NewS3Downloader(context.Background(), Options{})

	assert.ErrorContains(t, err, "load aws config")
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://photos.s3.eu-south-1.amazonaws.com/users/alice/a.jpg",
		PublicURL("photos", "eu-south-1", "/users/alice/a.jpg"))

	d := &S3Downloader{opts: Options{Bucket: "b", Region: "us-east-1"}}
	assert.Equal(t, "https://b.s3.us-east-1.amazonaws.com/k.png", d.PublicURL("k.png"))
}

func TestDownload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	g := &fakeGetter{body: "PNGDATA"}
	d := &S3Downloader{opts: Options{Bucket: "photos", Dir: dir}, client: g}

	path, err := d.Download(context.Background(), "users/alice/cat.png")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cat.png"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(data))
	assert.Equal(t, "photos", g.bucket)
	assert.Equal(t, "users/alice/cat.png", g.key)
}

func TestDownload_NotFound(t *testing.T) {
	g := &fakeGetter{err: &types.NoSuchKey{}}
	d := &S3Downloader{opts: Options{Dir: t.TempDir()}, client: g}

	_, err := d.Download(context.Background(), "gone.jpg")

	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDownload_InvalidKey(t *testing.T) {
	d := &S3Downloader{opts: Options{Dir: t.TempDir()}, client: &fakeGetter{}}

	_, err := d.Download(context.Background(), "")

	assert.ErrorContains(t, err, "invalid object key")
}

func TestDownload_PartialWriteLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	d := &S3Downloader{opts: Options{Dir: dir}, client: failingGetter{}}

	_, err := d.Download(context.Background(), "a.jpg")
	require.ErrorContains(t, err, "connection reset")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
