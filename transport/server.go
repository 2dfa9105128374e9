package transport

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/sync/errgroup"

	"github.com/ksyq12/sitemux/config"
	"github.com/ksyq12/sitemux/internal/logger"
	"github.com/ksyq12/sitemux/router"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Server binds a Router to net/http.
type Server struct {
	router   *router.Router
	settings config.Settings
}

// NewServer returns a server dispatching every request to rt.
func NewServer(rt *router.Router, settings config.Settings) *Server {
	return &Server{router: rt, settings: settings}
}

// ServeHTTP dispatches one request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := newResponse(w, r)
	s.router.Dispatch(NewRequest(r), res)
	res.finish()
}

// Handler returns the server's handler, gzip-compressed when enabled.
func (s *Server) Handler() http.Handler {
	if s.settings.Gzip {
		return gziphandler.GzipHandler(s)
	}
	return s
}

// Run listens on the configured address until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.settings.Listen)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  s.settings.IdleTimeout,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
