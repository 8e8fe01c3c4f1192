package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/model"
	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"scale": func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) },
	"bytes": func(n int) string { return humanize.Bytes(uint64(max(n, 0))) },
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"date":  func(t time.Time) string { return t.UTC().Format("January 2, 2006") },
	"iso":   func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
}

// ErrorPage is the data of the page shown when the release list is unavailable
type ErrorPage struct {
	Metadata    model.PageMetadata
	Title       string
	ReferenceID string
}

// Renderer turns composed pages into HTML
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

type sectionView struct {
	Kind     string
	Class    string
	Releases []releaseView
}

type pageView struct {
	Metadata model.PageMetadata
	Sections []sectionView
}

// Render writes the page as a complete HTML document. Nothing is written to w
// unless rendering succeeds.
func (r *Renderer) Render(w io.Writer, page *model.Page) error {
	data := pageView{
		Metadata: page.Metadata,
		Sections: make([]sectionView, 0, len(page.Sections)),
	}

	for _, s := range page.Sections {
		sv := sectionView{Kind: string(s.Kind), Class: s.Class}
		if s.Kind == model.SectionReleases && s.Releases != nil {
			releases, err := toReleaseViews(s.Releases)
			if err != nil {
				return err
			}
			sv.Releases = releases
		}
		data.Sections = append(data.Sections, sv)
	}

	return r.execute(w, "page", data)
}

// RenderError writes the error page
func (r *Renderer) RenderError(w io.Writer, page ErrorPage) error {
	return r.execute(w, "error", page)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return goerr.Wrap(err, "failed to execute template", goerr.V("template", name))
	}
	if _, err := buf.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write rendered page", goerr.V("template", name))
	}
	return nil
}

// StaticHandler serves the embedded stylesheet under /static/
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
