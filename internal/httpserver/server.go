package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"memo/internal/logs"
)

// Start binds the listener and serves in the background. Bind errors are
// returned immediately.
func (srv *Server) Start() error {
	if srv.srv != nil {
		return errors.New("server already started")
	}

	ln, err := net.Listen("tcp", srv.address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.address(), err)
	}

	srv.ln = ln
	srv.srv = &http.Server{Handler: srv.gin}

	go func() {
		if err := srv.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logs.Logger.Errorw("http server stopped", "error", err)
		}
	}()

	logs.Logger.Infow("http server listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (srv *Server) Addr() string {
	if srv.ln != nil {
		return srv.ln.Addr().String()
	}
	return srv.address()
}

// Port returns the bound port, which differs from the configured one when
// the configuration asked for port 0.
func (srv *Server) Port() int {
	if srv.ln != nil {
		if tcp, ok := srv.ln.Addr().(*net.TCPAddr); ok {
			return tcp.Port
		}
	}
	return srv.port
}

// Shutdown closes the listener and waits for in-flight requests until ctx
// expires. Requests still blocked on the remote fetch are then dropped.
func (srv *Server) Shutdown(ctx context.Context) error {
	if srv.srv == nil {
		return nil
	}

	err := srv.srv.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		logs.Logger.Warnw("http shutdown timed out, closing connections")
		err = srv.srv.Close()
	}

	logs.Logger.Infow("http server stopped")
	return err
}
