// Package kit reads the shape entries of a tangram shape kit. A kit is
// either a JSON document whose shape objects carry an "id" and a "path",
// or an SVG document whose <path> and <polygon> elements are the shapes.
package kit

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Shape is one entry of a kit: an identifier and its outline as path data.
type Shape struct {
	ID   string
	Path string
}

// Read reads the shapes of a kit. The format follows the extension of name
// (.json, .svg, .xml); any other name is sniffed from the first non-space
// byte of r.
func Read(name string, r io.Reader) ([]Shape, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return ReadJSON(r)
	case ".svg", ".xml":
		return ReadSVG(r)
	}

	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read kit")
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return nil, errors.Wrap(err, "read kit")
		}
		if c == '<' {
			return ReadSVG(br)
		}
		return ReadJSON(br)
	}
}
