package cli

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/client/services"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single liveness check.
const pingTimeout = 3 * time.Second

type App struct {
	auth    services.AuthService
	gallery services.GalleryService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp builds the CLI around the two application services. Commands read
// from in and write to out.
func NewApp(auth services.AuthService, gallery services.GalleryService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		auth:    auth,
		gallery: gallery,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.IsLoggedIn(ctx)
}

// dropSession forgets a session the backend no longer accepts.
func (a *App) dropSession(ctx context.Context) {
	if err := a.auth.LogoutLocal(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear rejected session", "error", err)
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.auth.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the backend once and then every interval
// until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
