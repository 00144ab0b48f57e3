// Package pathdata reads, transforms and re-serializes the SVG path
// mini-language used by shape kits: absolute M, L, H, V and A commands.
//
// A document is split into verbatim text and recognized commands. Only the
// numeric arguments of a command are ever rewritten, so a document that is
// parsed and printed again comes back byte for byte.
package pathdata

import "strings"

// Command letters understood by the scanner.
const (
	MoveTo           = 'M'
	LineTo           = 'L'
	HorizontalLineTo = 'H'
	VerticalLineTo   = 'V'
	ArcTo            = 'A'
)

// arity returns the number of arguments taken by the command letter c,
// or 0 if c is not a recognized command.
func arity(c byte) int {
	switch c {
	case MoveTo, LineTo:
		return 2
	case HorizontalLineTo, VerticalLineTo:
		return 1
	case ArcTo:
		return 7
	default:
		return 0
	}
}

// IsCommand reports whether c is one of the recognized command letters.
func IsCommand(c byte) bool {
	return arity(c) > 0
}

// Command is a single path command with its arguments.
// Seps[i] holds the separator text read before Args[i].
type Command struct {
	Letter byte
	Seps   []string
	Args   []Number
}

// IsPoint reports whether the command moves the cursor to a polygon vertex,
// that is whether it is one of M, L, H or V.
func (c Command) IsPoint() bool {
	switch c.Letter {
	case MoveTo, LineTo, HorizontalLineTo, VerticalLineTo:
		return true
	}
	return false
}

// Clone returns a copy of c that shares no slices with it.
func (c Command) Clone() Command {
	return Command{
		Letter: c.Letter,
		Seps:   append([]string(nil), c.Seps...),
		Args:   append([]Number(nil), c.Args...),
	}
}

func (c Command) String() string {
	var b strings.Builder
	c.writeTo(&b)
	return b.String()
}

func (c Command) writeTo(b *strings.Builder) {
	b.WriteByte(c.Letter)
	for i, a := range c.Args {
		if i < len(c.Seps) {
			b.WriteString(c.Seps[i])
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(a.Raw)
	}
}
