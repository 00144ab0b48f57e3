package shapegraph

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Format selects how graphs are written.
type Format string

const (
	// FormatFragments writes paste-ready object literals, each followed by
	// a comma, grouped under banner lines.
	FormatFragments Format = "fragments"
	// FormatJSON writes a single JSON document.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned when an output format is not recognized.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimSpace(strings.ToLower(s))); f {
	case FormatFragments, FormatJSON:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q (must be fragments or json)", s)
}

// Write writes graphs to w in format f.
func (f Format) Write(w io.Writer, graphs []*Graph) error {
	switch f {
	case FormatFragments:
		return WriteFragments(w, graphs)
	case FormatJSON:
		return WriteJSON(w, graphs)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
}

// WriteJSON writes {"shapes": [...]} with two-space indentation.
func WriteJSON(w io.Writer, graphs []*Graph) error {
	if graphs == nil {
		graphs = []*Graph{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(struct {
		Shapes []*Graph `json:"shapes"`
	}{graphs}), "write json")
}

// WriteFragments writes, for each graph, the id lists to paste into the
// shape entry, then every vertex and every segment as an object literal
// followed by a comma.
func WriteFragments(w io.Writer, graphs []*Graph) error {
	bw := bufio.NewWriter(w)
	for _, g := range graphs {
		segIDs, err := json.Marshal(g.SegmentIDs)
		if err != nil {
			return errors.Wrap(err, "write fragments")
		}
		ptIDs, err := json.Marshal(g.PointIDs)
		if err != nil {
			return errors.Wrap(err, "write fragments")
		}
		bw.WriteString("---- shape ----\n")
		bw.WriteString(`"segmentIds": ` + string(segIDs) + ",\n")
		bw.WriteString(`"pointIds": ` + string(ptIDs) + ",\n\n")

		bw.WriteString("---- points ----\n")
		for _, v := range g.Vertices {
			if err := writeFragment(bw, v); err != nil {
				return err
			}
		}
		bw.WriteString("---- segments ----\n")
		for _, s := range g.Segments {
			if err := writeFragment(bw, s); err != nil {
				return err
			}
		}
	}
	return errors.Wrap(bw.Flush(), "write fragments")
}

func writeFragment(bw *bufio.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "write fragments")
	}
	bw.Write(b)
	bw.WriteString(",\n")
	return nil
}
