package pathdata

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the order in which offset and scale are applied.
// The two orders give different results for any offset other than zero.
type Mode int

const (
	// OffsetThenScale maps v to (v - offset) / scale.
	OffsetThenScale Mode = iota
	// ScaleThenOffset maps v to v / scale - offset.
	ScaleThenOffset
)

var modeNames = map[Mode]string{
	OffsetThenScale: "offset-then-scale",
	ScaleThenOffset: "scale-then-offset",
}

// ErrUnknownMode is returned when a mode name is not recognized.
var ErrUnknownMode = errors.New("unknown transform mode")

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for m, name := range modeNames {
		if s == name {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q (must be offset-then-scale or scale-then-offset)", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Set implements the pflag.Value interface.
func (m *Mode) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

// Type implements the pflag.Value interface.
func (m *Mode) Type() string {
	return "mode"
}

// Transform is an offset and a uniform scale applied to path coordinates.
type Transform struct {
	OffsetX, OffsetY float64
	Scale            float64
	Mode             Mode
}

// X transforms an x coordinate.
func (t Transform) X(v float64) float64 {
	return t.apply(v, t.OffsetX)
}

// Y transforms a y coordinate.
func (t Transform) Y(v float64) float64 {
	return t.apply(v, t.OffsetY)
}

// Length scales a length such as an arc radius. No offset is applied.
func (t Transform) Length(v float64) float64 {
	return v / t.Scale
}

func (t Transform) apply(v, offset float64) float64 {
	if t.Mode == ScaleThenOffset {
		return v/t.Scale - offset
	}
	return (v - offset) / t.Scale
}

// Command returns a transformed copy of c. The arc rotation and flag
// arguments keep their source text.
func (t Transform) Command(c Command) Command {
	out := c.Clone()
	a := out.Args
	switch c.Letter {
	case MoveTo, LineTo:
		a[0] = NewNumber(t.X(a[0].Value))
		a[1] = NewNumber(t.Y(a[1].Value))
	case HorizontalLineTo:
		a[0] = NewNumber(t.X(a[0].Value))
	case VerticalLineTo:
		a[0] = NewNumber(t.Y(a[0].Value))
	case ArcTo:
		a[0] = NewNumber(t.Length(a[0].Value))
		a[1] = NewNumber(t.Length(a[1].Value))
		a[5] = NewNumber(t.X(a[5].Value))
		a[6] = NewNumber(t.Y(a[6].Value))
	}
	return out
}

// Apply returns a copy of d with every command transformed. Text tokens
// are shared with d.
func (t Transform) Apply(d Data) Data {
	out := make(Data, len(d))
	for i, tok := range d {
		if tok.Cmd == nil {
			out[i] = tok
			continue
		}
		c := t.Command(*tok.Cmd)
		out[i] = Token{Cmd: &c}
	}
	return out
}

// ApplyText parses text as a document, transforms it and prints it back.
// Text without any recognized command is returned unchanged.
func (t Transform) ApplyText(text string) string {
	return t.Apply(Parse(text)).String()
}
