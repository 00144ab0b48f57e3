package pathdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters(cmds []Command) string {
	b := make([]byte, len(cmds))
	for i, c := range cmds {
		b[i] = c.Letter
	}
	return string(b)
}

func TestParseRoundTrip(t *testing.T) {
	docs := []string{
		"M 0 0 L 10 0 L 10 10 L 0 10",
		`{"id": "a", "path": "M 10.5 -3 H 4 V 7.25 A 2 2 0 0 1 8 9"}`,
		"M 1,2 L\t3 ,4\nH 5",
		"<path d=\"M 0 0 L 10. 0 Z\"/>",
		"no commands here",
		"",
		"M 1 2 3",
	}
	for _, doc := range docs {
		assert.Equal(t, doc, Parse(doc).String(), "doc %q", doc)
	}
}

func TestParseCommands(t *testing.T) {
	d := Parse(`"path": "M 0 0 L 10 0 H 20 V 5 A 1 2 0 1 0 3 4 Z"`)
	cmds := d.Commands()
	require.Len(t, cmds, 5)
	assert.Equal(t, "MLHVA", letters(cmds))

	assert.Equal(t, []string{" ", " "}, cmds[0].Seps)
	assert.Equal(t, 10.0, cmds[1].Args[0].Value)
	assert.Equal(t, "10", cmds[1].Args[0].Raw)
	assert.Len(t, cmds[4].Args, 7)
	assert.Equal(t, 4.0, cmds[4].Args[6].Value)
}

func TestParseDelimiters(t *testing.T) {
	// A letter inside a word is not a command.
	assert.Empty(t, Parse("XM 1 2").Commands())
	assert.Empty(t, Parse("aL 1 2").Commands())

	for _, doc := range []string{"M 1 2", "\"M 1 2", "'M 1 2", " M 1 2", "\nM 1 2", "\tM 1 2"} {
		assert.Len(t, Parse(doc).Commands(), 1, "doc %q", doc)
	}

	// Bare path data accepts letters glued to the previous number.
	assert.Len(t, Parse("M 0 0L 10 0").Commands(), 1)
	assert.Len(t, ParsePath("M 0 0L 10 0").Commands(), 2)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"M 1", ""},
		{"M a b", ""},
		{"M 1 x L 2 3", "L"},
		{"H .5", ""},
		{"V +3", ""},
		{"M 1e5 2", ""},
		{"A 1 2 3 4 5 6", ""},
		{"M 1 2 L 3 4", "ML"},
		{"M1 2", ""},
	}
	for _, tt := range tests {
		d := Parse(tt.doc)
		assert.Equal(t, tt.want, letters(d.Commands()), "doc %q", tt.doc)
		assert.Equal(t, tt.doc, d.String())
	}
}

func TestParseGreedyNumber(t *testing.T) {
	d := Parse("M 1 2.5.5")
	cmds := d.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "2.5", cmds[0].Args[1].Raw)
	assert.Equal(t, "M 1 2.5.5", d.String())
}

func TestSkipSeparator(t *testing.T) {
	assert.Equal(t, 0, skipSeparator("1"))
	assert.Equal(t, 1, skipSeparator(" 1"))
	assert.Equal(t, 3, skipSeparator(" , 1"))
	assert.Equal(t, 1, skipSeparator(",,1"))
	assert.Equal(t, 2, skipSeparator("\r\n"))
}

func TestScanNumber(t *testing.T) {
	assert.Equal(t, 2, scanNumber("10 "))
	assert.Equal(t, 3, scanNumber("-10"))
	assert.Equal(t, 3, scanNumber("10."))
	assert.Equal(t, 5, scanNumber("10.25x"))
	assert.Equal(t, 0, scanNumber("-"))
	assert.Equal(t, 0, scanNumber(".5"))
}

func TestNumberMarshalJSON(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Number{Value: 10, Raw: "10"}, "10"},
		{Number{Value: -2.5, Raw: "-2.5"}, "-2.5"},
		{Number{Value: 10, Raw: "10."}, "10"},
		{Number{Value: 7, Raw: "007"}, "7"},
		{Number{Value: 0.25}, "0.25"},
	}
	for _, tt := range tests {
		b, err := tt.n.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(b))
	}
}

func TestIsNumber(t *testing.T) {
	for _, s := range []string{"0", "-3", "10.", "10.25"} {
		assert.True(t, IsNumber(s), s)
	}
	for _, s := range []string{"", "-", ".5", "+4", "1e1", "1 2", "2.5.5"} {
		assert.False(t, IsNumber(s), s)
	}
}
