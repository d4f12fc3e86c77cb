package webui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/yosssi/gohtml"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is the dashboard HTML, rendered once from the layout.
type Page struct {
	body []byte
}

// NewPage renders layout into the page template. When pretty is set the
// HTML is re-indented for reading.
func NewPage(layout Layout, pretty bool) (*Page, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, layout); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	body := buf.Bytes()
	if pretty {
		body = gohtml.FormatBytes(body)
	}
	return &Page{body: body}, nil
}

// Bytes returns a copy of the rendered HTML.
func (p *Page) Bytes() []byte {
	return append([]byte(nil), p.body...)
}

func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(p.body)
}

// StaticFS holds the client script and stylesheet.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded above, so Sub cannot fail.
		panic(err)
	}
	return http.FS(sub)
}
