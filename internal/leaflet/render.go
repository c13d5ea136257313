package leaflet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"regexp"

	"github.com/woozymasta/maskmap/assets"
	"github.com/woozymasta/maskmap/internal/apperr"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var page = template.Must(template.New("map").Parse(assets.MapTemplate))

// RenderOptions controls document output.
type RenderOptions struct {
	Title  string
	Minify bool
}

type pageData struct {
	Title  string
	Canvas template.JS
	CSS    template.CSS
	JS     template.JS
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFuncRegexp(regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`), js.Minify)
	return m
}

// Render writes the canvas as a standalone HTML document. Leaflet and the
// marker plugin are loaded from CDN, the page style, script and map data are inline.
func Render(w io.Writer, c *Canvas, opts RenderOptions) error {
	// json.Marshal escapes <, > and &, so the data cannot close its script element.
	canvas, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode map data: %w", err)
	}

	data := pageData{
		Canvas: template.JS(canvas),
		Title:  opts.Title,
		CSS:    template.CSS(assets.Style),
		JS:     template.JS(assets.Script),
	}

	var m *minify.M
	if opts.Minify {
		m = newMinifier()

		cssMin, err := m.String("text/css", assets.Style)
		if err != nil {
			return fmt.Errorf("minify css: %w", err)
		}
		jsMin, err := m.String("text/javascript", assets.Script)
		if err != nil {
			return fmt.Errorf("minify js: %w", err)
		}
		data.CSS = template.CSS(cssMin)
		data.JS = template.JS(jsMin)
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	if m == nil {
		_, err := buf.WriteTo(w)
		return err
	}

	if err := m.Minify("text/html", w, &buf); err != nil {
		return fmt.Errorf("minify html: %w", err)
	}

	return nil
}

// Save renders the canvas in memory and writes it to path. The file is only
// created once rendering succeeded, so a failed run leaves no partial output.
func Save(path string, c *Canvas, opts RenderOptions) error {
	var buf bytes.Buffer
	if err := Render(&buf, c, opts); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrWrite, err)
	}

	log.Debug().
		Str("path", path).
		Int("bytes", buf.Len()).
		Msg("Map document written")

	return nil
}
