package pathdata

import "strconv"

// Number is a numeric path argument. Raw is the text it was read from, or
// the formatted value for numbers produced by a transform.
type Number struct {
	Value float64
	Raw   string
}

// NewNumber returns a Number for v, formatted with the shortest decimal
// representation that reads back as v. No rounding is applied.
func NewNumber(v float64) Number {
	return Number{Value: v, Raw: FormatNumber(v)}
}

// FormatNumber formats v as a plain decimal without exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (n Number) String() string {
	return n.Raw
}

// MarshalJSON writes the source text of n so that values pasted into a
// kit keep the form they had in the path. Source text that is not a valid
// JSON number ("10.", "007") falls back to the formatted value.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.Raw == "" {
		return []byte(FormatNumber(n.Value)), nil
	}
	if isJSONNumber(n.Raw) {
		return []byte(n.Raw), nil
	}
	return []byte(FormatNumber(n.Value)), nil
}

// isJSONNumber checks s, which matches -?[0-9]+(\.[0-9]*)?, against the
// stricter JSON number grammar.
func isJSONNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) || !isDigit(s[i]) {
		return false
	}
	if s[i] == '0' && i+1 < len(s) && isDigit(s[i+1]) {
		return false
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' || i+1 == len(s) {
		return false
	}
	for i++; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsNumber reports whether s is a whole number the scanner accepts as a
// command argument: -?[0-9]+(\.[0-9]*)?
func IsNumber(s string) bool {
	return s != "" && scanNumber(s) == len(s)
}
