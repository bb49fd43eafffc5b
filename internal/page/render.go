package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"memo/internal/memos/service"
)

// FallbackLabel names the remote section when the fetched page has no title.
const FallbackLabel = "Remote server data"

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Remote is the outcome of fetching the remote status page.
type Remote struct {
	URL  string
	Body string
	Err  error
}

type view struct {
	Entries []service.Entry
	Remote  Remote
	Label   string
}

// Render builds the root page from the memos and the remote fetch outcome.
// Every interpolated value is HTML-escaped.
func Render(entries []service.Entry, remote Remote) (string, error) {
	v := view{
		Entries: entries,
		Remote:  remote,
	}
	if remote.Err == nil {
		v.Label = StatusLabel(remote.Body)
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

// StatusLabel pulls the text of the first <title> element out of body. An
// unterminated title runs to the end of the body.
func StatusLabel(body string) string {
	_, after, found := strings.Cut(body, "<title>")
	if !found {
		return FallbackLabel
	}
	label, _, _ := strings.Cut(after, "</title>")
	return label
}
