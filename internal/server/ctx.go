package server

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/woozymasta/maskmap/internal/leaflet"

	"github.com/rs/zerolog/log"
)

// ServerContext holds the rendered map shared by request handlers. It is
// built once and never modified afterwards.
type ServerContext struct {
	Canvas    *leaflet.Canvas
	IndexHTML []byte
	etag      string
}

// NewServerContext renders the canvas into the document served at "/".
func NewServerContext(c *leaflet.Canvas, opts leaflet.RenderOptions) (*ServerContext, error) {
	var buf bytes.Buffer
	if err := leaflet.Render(&buf, c, opts); err != nil {
		return nil, err
	}

	doc := buf.Bytes()
	etag := fmt.Sprintf(`"%x-%x"`, len(doc), crc32.ChecksumIEEE(doc))

	log.Info().
		Int("layers", len(c.Layers)).
		Int("markers", c.Count(leaflet.KindMarker)).
		Int("bytes", len(doc)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Canvas:    c,
		IndexHTML: doc,
		etag:      etag,
	}, nil
}
