package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/gophgallery/internal/client/cache"
	"github.com/dmitrijs2005/gophgallery/internal/client/callback"
	"github.com/dmitrijs2005/gophgallery/internal/client/client"
	"github.com/dmitrijs2005/gophgallery/internal/client/config"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/client/services"
	"github.com/dmitrijs2005/gophgallery/internal/client/session"
	"github.com/dmitrijs2005/gophgallery/internal/client/storage"
	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/filex"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

// lazyTokens lets the API client read the session before the session
// manager, which needs the client for code exchange, exists.
type lazyTokens struct {
	src client.TokenSource
}

func (l *lazyTokens) Current(ctx context.Context) (models.TokenSet, error) {
	if l.src == nil {
		return models.TokenSet{}, common.ErrNoSession
	}
	return l.src.Current(ctx)
}

// Build wires the application from cfg. The returned cleanup closes the
// database and cache connections; call it when the App is done.
func Build(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	store, err := openStore(ctx, cfg, &closers)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	respCache, err := openCache(ctx, cfg, &closers)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	tokens := &lazyTokens{}
	clientOpts := []client.Option{client.WithLogger(log)}
	sessionOpts := []session.Option{session.WithLogger(log)}
	if respCache != nil {
		clientOpts = append(clientOpts, client.WithCache(respCache, cfg.Cache.TTL))
		sessionOpts = append(sessionOpts, session.WithCache(respCache))
	}
	api := client.NewHTTPClient(cfg.APIURL, tokens, clientOpts...)

	nav := RouteNavigator{Next: session.BrowserNavigator{Out: out}, Out: out}
	mgr := session.NewManager(session.Config{
		Domain:      cfg.Auth.Domain,
		ClientID:    cfg.Auth.ClientID,
		RedirectURI: cfg.Auth.RedirectURI,
		Scope:       cfg.Auth.Scope,
		LogoutURI:   cfg.Auth.LogoutURI,
	}, store, api, nav, sessionOpts...)
	tokens.src = mgr

	listeners := func() (services.CallbackListener, error) {
		s, err := callback.New(cfg.Auth.RedirectURI, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	auth := services.NewAuthService(api, mgr, listeners, cfg.LoginTimeout, log)

	var downloader services.Downloader
	if cfg.Storage.Bucket != "" {
		d, err := storage.NewS3Downloader(ctx, storage.Options{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Dir:       cfg.Storage.DownloadDir,
		})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		downloader = d
	}
	gallery := services.NewGalleryService(api, mgr, downloader, log)

	return NewApp(auth, gallery, log, in, out), cleanup, nil
}

func openStore(ctx context.Context, cfg *config.Config, closers *[]func() error) (session.Store, error) {
	if cfg.Ephemeral {
		return session.NewMemoryStore(), nil
	}

	path, err := filex.Resolve(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	*closers = append(*closers, db.Close)

	return session.NewSQLiteStore(db), nil
}

// startJanitor is a seam for tests. MemoryCache.StartJanitor runs its own
// goroutine, so callers invoke it directly.
var startJanitor = (*cache.MemoryCache).StartJanitor

// openCache returns nil when caching is off.
func openCache(ctx context.Context, cfg *config.Config, closers *[]func() error) (cache.Cache, error) {
	switch cfg.Cache.Kind {
	case config.CacheRedis:
		c, rdb, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			Prefix:   cfg.Cache.RedisPrefix,
			TTL:      cfg.Cache.TTL,
		})
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, rdb.Close)
		return c, nil

	case config.CacheMemory:
		c := cache.NewMemoryCache(cfg.Cache.TTL)
		if cfg.Cache.TTL > 0 {
			startJanitor(c, ctx, cfg.Cache.TTL)
		}
		return c, nil

	default:
		return nil, nil
	}
}
