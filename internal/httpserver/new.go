package httpserver

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"memo/internal/memos/service"
	"memo/internal/status"
)

// Server serves the root page on a single listener.
type Server struct {
	gin     *gin.Engine
	srv     *http.Server
	ln      net.Listener
	host    string
	port    int
	memos   service.MemoService
	fetcher status.Fetcher
}

// Config is the dependency bag passed to New().
type Config struct {
	Host    string
	Port    int
	Mode    string
	Memos   service.MemoService
	Fetcher status.Fetcher
}

// New creates a Server with its routes registered. Nothing is bound until Start.
func New(cfg Config) (*Server, error) {
	switch cfg.Mode {
	case "":
		cfg.Mode = gin.ReleaseMode
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("unknown gin mode %q", cfg.Mode)
	}
	gin.SetMode(cfg.Mode)

	srv := &Server{
		gin:     gin.New(),
		host:    cfg.Host,
		port:    cfg.Port,
		memos:   cfg.Memos,
		fetcher: cfg.Fetcher,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// Only the two root paths exist; "/index.html/" is a 404, not a redirect.
	srv.gin.RedirectTrailingSlash = false

	srv.mapHandlers()
	return srv, nil
}

func (srv *Server) validate() error {
	if srv.memos == nil {
		return errors.New("memo service is required")
	}
	if srv.fetcher == nil {
		return errors.New("status fetcher is required")
	}
	if srv.port < 0 || srv.port > 65535 {
		return errors.New("port must be between 0 and 65535")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *Server) Handler() http.Handler {
	return srv.gin
}

func (srv *Server) address() string {
	return net.JoinHostPort(srv.host, strconv.Itoa(srv.port))
}
