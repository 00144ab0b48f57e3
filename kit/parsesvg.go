package kit

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2/strconv"

	"tangramkit/pathdata"
)

type svgPath struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

type svgPolygon struct {
	ID     string `xml:"id,attr"`
	Points string `xml:"points,attr"`
}

// ReadSVG returns the <path> and <polygon> elements of an SVG document as
// shapes, in document order. A polygon's points become an M/L path. An
// element without an id attribute is named after its position, "path-3".
func ReadSVG(r io.Reader) ([]Shape, error) {
	dec := xml.NewDecoder(r)
	var shapes []Shape

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode token")
		}

		t, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch t.Name.Local {
		case "path":
			var raw svgPath
			if err := dec.DecodeElement(&raw, &t); err != nil {
				return nil, errors.Wrap(err, "decode <path>")
			}
			d := strings.TrimSpace(raw.D)
			if d == "" {
				continue
			}
			shapes = append(shapes, Shape{ID: shapeID(raw.ID, len(shapes)), Path: d})

		case "polygon":
			var raw svgPolygon
			if err := dec.DecodeElement(&raw, &t); err != nil {
				return nil, errors.Wrap(err, "decode <polygon>")
			}
			d, err := polygonPath(raw.Points)
			if err != nil {
				return nil, errors.Wrapf(err, "parse polygon %q points", raw.ID)
			}
			if d == "" {
				continue
			}
			shapes = append(shapes, Shape{ID: shapeID(raw.ID, len(shapes)), Path: d})
		}
	}

	return shapes, nil
}

func shapeID(id string, n int) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return fmt.Sprintf("path-%d", n)
}

// polygonPath turns an SVG points list ("0,0 10,0 10,10") into path data
// ("M 0 0 L 10 0 L 10 10"). Coordinates already in path number form keep
// their text; other SVG numbers (".5", "+4", "1e1") are rewritten as plain
// decimals so that every point stays a vertex.
func polygonPath(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return "", errors.New("odd number of coordinates in points list")
	}

	var b strings.Builder
	for i := 0; i < len(fields); i += 2 {
		x, okX := pathNumber(fields[i])
		y, okY := pathNumber(fields[i+1])
		if !okX || !okY {
			return "", errors.Errorf("invalid coordinate pair %q,%q", fields[i], fields[i+1])
		}
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(x)
		b.WriteByte(' ')
		b.WriteString(y)
	}
	return b.String(), nil
}

func pathNumber(s string) (string, bool) {
	if pathdata.IsNumber(s) {
		return s, true
	}
	v, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return "", false
	}
	return pathdata.FormatNumber(v), true
}
