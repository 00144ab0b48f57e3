package pathdata

import (
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Token is either verbatim text or a recognized command. Exactly one of
// Text and Cmd is set.
type Token struct {
	Text string
	Cmd  *Command
}

// Data is a tokenized document.
type Data []Token

// Parse tokenizes a whole document (JSON, SVG or bare path data). A command
// letter is only recognized at the start of text or right after a delimiter:
// a quote, a space, a tab or a line break. Everything that does not form a
// complete command with well-formed arguments is kept as text.
func Parse(text string) Data {
	return scan(text, true)
}

// ParsePath tokenizes bare path data, where command letters need no
// preceding delimiter ("M 0 0L 10 0").
func ParsePath(d string) Data {
	return scan(d, false)
}

func scan(text string, delimited bool) Data {
	var data Data
	start := 0
	for i := 0; i < len(text); i++ {
		if !IsCommand(text[i]) {
			continue
		}
		if delimited && i > 0 && !isDelimiter(text[i-1]) {
			continue
		}
		cmd, n, ok := scanCommand(text[i:])
		if !ok {
			continue
		}
		if start < i {
			data = append(data, Token{Text: text[start:i]})
		}
		data = append(data, Token{Cmd: &cmd})
		i += n - 1
		start = i + 1
	}
	if start < len(text) {
		data = append(data, Token{Text: text[start:]})
	}
	return data
}

// scanCommand reads one command starting at s[0]. It returns the command,
// the number of bytes it spans and whether all its arguments were present.
func scanCommand(s string) (Command, int, bool) {
	n := arity(s[0])
	cmd := Command{
		Letter: s[0],
		Seps:   make([]string, 0, n),
		Args:   make([]Number, 0, n),
	}
	i := 1
	for j := 0; j < n; j++ {
		sep := skipSeparator(s[i:])
		if sep == 0 {
			return Command{}, 0, false
		}
		num := scanNumber(s[i+sep:])
		if num == 0 {
			return Command{}, 0, false
		}
		raw := s[i+sep : i+sep+num]
		v, m := strconv.ParseFloat([]byte(raw))
		if m == 0 {
			return Command{}, 0, false
		}
		cmd.Seps = append(cmd.Seps, s[i:i+sep])
		cmd.Args = append(cmd.Args, Number{Value: v, Raw: raw})
		i += sep + num
	}
	return cmd, i, true
}

// skipSeparator returns the length of the whitespace run, holding at most
// one comma, at the start of s.
func skipSeparator(s string) int {
	i := 0
	comma := false
	for i < len(s) {
		switch c := s[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		case c == ',' && !comma:
			comma = true
		default:
			return i
		}
		i++
	}
	return i
}

// scanNumber returns the length of the number matching -?[0-9]+(\.[0-9]*)?
// at the start of s, or 0.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digits {
		return 0
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i
}

func isDelimiter(c byte) bool {
	switch c {
	case '"', '\'', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Commands returns the commands of d in order.
func (d Data) Commands() []Command {
	var cmds []Command
	for _, t := range d {
		if t.Cmd != nil {
			cmds = append(cmds, *t.Cmd)
		}
	}
	return cmds
}

func (d Data) String() string {
	var b strings.Builder
	for _, t := range d {
		if t.Cmd != nil {
			t.Cmd.writeTo(&b)
			continue
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
