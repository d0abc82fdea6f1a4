package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	// enable http profiling
	_ "net/http/pprof"

	"github.com/sirupsen/logrus"
)

// writeTimeoutMargin is added to handler timeout, so a handler finishing at its deadline can still write the response.
const writeTimeoutMargin = 30 * time.Second

// Server handles app's http requests.
type Server struct {
	addr           string
	profileAddr    string
	handler        http.Handler
	handlerTimeout time.Duration
	l              logrus.FieldLogger
}

// NewServer creates new Server instance.
// handlerTimeout is the timeout used by mux handlers.
func NewServer(
	addr string,
	profileAddr string,
	handler http.Handler,
	handlerTimeout time.Duration,
	l logrus.FieldLogger,
) *Server {
	return &Server{
		addr:           addr,
		profileAddr:    profileAddr,
		handler:        NewLoggingMiddleware(l)(handler),
		handlerTimeout: handlerTimeout,
		l:              l,
	}
}

// Run runs the server until ctx is done, then gracefully shutdowns.
// Blocks until shutdown is complete.
func (s *Server) Run(ctx context.Context) error {
	srv := s.httpServer()

	if s.profileAddr != "" {
		profilingServer := http.Server{
			Addr:              s.profileAddr,
			Handler:           nil,
			ReadHeaderTimeout: time.Second,
		}
		go func() {
			if err := profilingServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.l.Errorf("profiling server returned error: %v", err)
			}
		}()
		defer profilingServer.Close()
	}

	errc := make(chan error, 1)
	go func() {
		s.l.Infof("http server listening on %s", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Addr: s.addr,

		// For timeouts explanation see: https://blog.cloudflare.com/the-complete-guide-to-golang-net-http-timeouts/
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      s.handlerTimeout + writeTimeoutMargin,
		IdleTimeout:       10 * time.Second,

		Handler: s.handler,
	}
}
