// Package callback receives the identity provider's redirect on a loopback
// HTTP listener so the CLI can complete the authorization-code flow.
package callback

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

// ProviderError is the error the provider reported on the redirect.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return e.Code + ": " + e.Description
}

// Result is the outcome of the first redirect that carried a code or an
// error. Exactly one of Code and Err is set.
type Result struct {
	Code string
	Err  error
}

type Server struct {
	addr   string
	path   string
	log    logging.Logger
	result chan Result
	once   sync.Once

	srv *http.Server
	ln  net.Listener
}

// New prepares a server for redirectURI, which must be an http URL with an
// explicit port, e.g. http://localhost:5173/callback.
func New(redirectURI string, log logging.Logger) (*Server, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return nil, fmt.Errorf("redirect uri: %w", err)
	}
	if u.Scheme != "http" || u.Port() == "" {
		return nil, fmt.Errorf("redirect uri %q: need http://host:port", redirectURI)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	s := &Server{
		addr:   u.Host,
		path:   path,
		log:    log,
		result: make(chan Result, 1),
	}
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler routes the redirect path. Anything else is 404.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(s.path, s.handleRedirect)
	return r
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res := Result{Code: q.Get("code")}
	if e := q.Get("error"); e != "" {
		res = Result{Err: &ProviderError{Code: e, Description: q.Get("error_description")}}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// A hit with neither field leaves the latch for the real redirect.
	if res.Code == "" && res.Err == nil {
		s.log.Debug(r.Context(), "redirect without code or error ignored")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, page("Sign-in incomplete", "No authorization code was received. Waiting for the sign-in redirect."))
		return
	}

	delivered := false
	s.once.Do(func() {
		s.result <- res
		delivered = true
	})

	switch {
	case !delivered:
		s.log.Debug(r.Context(), "duplicate redirect ignored")
		fmt.Fprint(w, page("Already processed", "This sign-in was already handled. You can close this tab."))
	case res.Err != nil:
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, page("Sign-in failed", res.Err.Error()))
	default:
		fmt.Fprint(w, page("Signed in", "You can close this tab and return to the terminal."))
	}
}

func page(title, body string) string {
	return "<!doctype html><title>" + html.EscapeString(title) + "</title><h3>" +
		html.EscapeString(title) + "</h3><p>" + html.EscapeString(body) + "</p>"
}

// Start listens on the redirect URI's host and port.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.ln = ln

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error(context.Background(), "callback server stopped", "error", err)
		}
	}()
	return nil
}

// Addr is the bound address once started.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Wait blocks until the first redirect arrives or ctx is done.
func (s *Server) Wait(ctx context.Context) (Result, error) {
	select {
	case res := <-s.result:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
