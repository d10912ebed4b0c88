package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/gophgallery/internal/client/cache"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

// DefaultTimeout bounds every backend call.
const DefaultTimeout = 30 * time.Second

type HTTPClient struct {
	baseURL  string
	http     *http.Client
	cache    cache.Cache
	cacheTTL time.Duration
	log      logging.Logger
	validate *validator.Validate
}

type Option func(*HTTPClient)

// WithCache caches listings in c for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(h *HTTPClient) {
		h.cache = c
		h.cacheTTL = ttl
	}
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.http.Timeout = d }
}

// WithTransport replaces the underlying round tripper. The auth transport
// still wraps it.
func WithTransport(rt http.RoundTripper) Option {
	return func(h *HTTPClient) {
		h.http.Transport.(*authTransport).base = rt
	}
}

// NewHTTPClient talks to baseURL, authorizing requests with tokens when it
// is non-nil.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	h := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: newAuthTransport(nil, tokens),
		},
		log:      logging.Nop{},
		validate: validator.New(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *HTTPClient) ExchangeCode(ctx context.Context, code, redirectURI string) (models.TokenSet, error) {
	var out tokenDTO
	body := map[string]string{"code": code, "redirect_uri": redirectURI}
	if err := c.do(ctx, http.MethodPost, "/auth/exchange-code", body, &out); err != nil {
		return models.TokenSet{}, err
	}
	return models.TokenSet{
		AccessToken:  out.AccessToken,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, password, email string) error {
	body := map[string]string{"username": username, "password": password, "email": email}
	return c.do(ctx, http.MethodPost, "/auth/signup", body, nil)
}

func (c *HTTPClient) Confirm(ctx context.Context, username, code string) error {
	body := map[string]string{"username": username, "confirmation_code": code}
	return c.do(ctx, http.MethodPost, "/auth/confirm", body, nil)
}

func (c *HTTPClient) ResendCode(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodPost, "/auth/resend-code", map[string]string{"username": username}, nil)
}

func (c *HTTPClient) ListImages(ctx context.Context, userID string) (*models.Library, error) {
	var dto libraryDTO
	if err := c.cachedGet(ctx, imagesKey(userID), "/api/images/"+url.PathEscape(userID), &dto); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}

func (c *HTTPClient) PopularTags(ctx context.Context, userID string) ([]models.TagCount, error) {
	var dto tagsDTO
	if err := c.cachedGet(ctx, tagsKey(userID), "/api/tags/"+url.PathEscape(userID), &dto); err != nil {
		return nil, err
	}
	return dto.Tags, nil
}

func (c *HTTPClient) UploadImage(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid upload: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", req.Filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, req.Content); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	fields := [][2]string{
		{"name", req.Name},
		{"tags", strings.Join(req.Tags, ",")},
		{"userId", req.UserID},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/upload", &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var out UploadResult
	if err := c.send(httpReq, &out); err != nil {
		return nil, err
	}
	c.invalidate(ctx, req.UserID)
	return &out, nil
}

func (c *HTTPClient) DeleteImage(ctx context.Context, owner, filename string) error {
	path := "/api/images/" + url.PathEscape(owner) + "/" + url.PathEscape(filename)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.invalidate(ctx, owner)
	return nil
}

func (c *HTTPClient) MoveImage(ctx context.Context, userID, filename, album string) error {
	body := map[string]string{"userId": userID, "filename": filename, "targetAlbum": album}
	if err := c.do(ctx, http.MethodPost, "/api/images/move", body, nil); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

func (c *HTTPClient) CreateAlbum(ctx context.Context, userID, name string) error {
	body := map[string]string{"albumName": name, "userId": userID}
	if err := c.do(ctx, http.MethodPost, "/api/albums", body, nil); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

func (c *HTTPClient) DeleteAlbum(ctx context.Context, userID, name string) error {
	path := "/api/albums/" + url.PathEscape(userID) + "/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

func imagesKey(user string) string { return "images:" + user }
func tagsKey(user string) string   { return "tags:" + user }

// cachedGet serves path from the cache when possible and stores fresh
// 2xx bodies. Cache failures only cost a round trip.
func (c *HTTPClient) cachedGet(ctx context.Context, key, path string, out any) error {
	if c.cache != nil {
		raw, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.log.Warn(ctx, "cache read failed", "key", key, "error", err)
		}
		if ok && json.Unmarshal(raw, out) == nil {
			c.log.Debug(ctx, "cache hit", "key", key)
			return nil
		}
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	var raw json.RawMessage
	if err := c.send(req, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, raw, c.cacheTTL); err != nil {
			c.log.Warn(ctx, "cache write failed", "key", key, "error", err)
		}
	}
	return nil
}

func (c *HTTPClient) invalidate(ctx context.Context, user string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, imagesKey(user), tagsKey(user)); err != nil {
		c.log.Warn(ctx, "cache invalidation failed", "user", user, "error", err)
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *HTTPClient) send(req *http.Request, out any) error {
	ctx := req.Context()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		c.log.Warn(ctx, "backend unreachable", "method", req.Method, "path", req.URL.Path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "backend call",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if err := mapStatus(resp); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var e errorDTO
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&e)
	msg := e.text()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
}
