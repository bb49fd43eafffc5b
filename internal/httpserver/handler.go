package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memo/internal/logs"
	"memo/internal/page"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	notFoundMessage = "Page not found."
	requestIDHeader = "X-Request-ID"
)

func (srv *Server) mapHandlers() {
	srv.registerMiddlewares()

	// The root page answers every HTTP method.
	srv.gin.Any("/", srv.index)
	srv.gin.Any("/index.html", srv.index)
	srv.gin.NoRoute(srv.notFound)
}

func (srv *Server) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(requestLogger())
}

// requestLogger tags each request with an id and logs it once it completes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		c.Next()

		logs.Logger.Infow("http request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// index renders the memo list together with the remote status. The response
// is held until the fetch finishes.
func (srv *Server) index(c *gin.Context) {
	entries, err := srv.memos.Entries()
	if err != nil {
		logs.Logger.Errorw("failed to load memos", "error", err)
		c.String(http.StatusInternalServerError, "Failed to load memos.")
		return
	}

	remote := page.Remote{URL: srv.fetcher.URL()}
	remote.Body, remote.Err = srv.fetcher.Fetch(c.Request.Context())

	html, err := page.Render(entries, remote)
	if err != nil {
		logs.Logger.Errorw("failed to render page", "error", err)
		c.String(http.StatusInternalServerError, "Failed to render page.")
		return
	}

	c.Data(http.StatusOK, htmlContentType, []byte(html))
}

func (srv *Server) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, notFoundMessage)
}
