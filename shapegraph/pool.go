package shapegraph

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrPoolExhausted is matched by every *ExhaustedError.
var ErrPoolExhausted = errors.New("id pool exhausted")

// ExhaustedError reports a shape that needed more ids than the pool had left.
type ExhaustedError struct {
	ShapeID   string
	Needed    int
	Available int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("shape %q needs %d ids, %d available: %v", e.ShapeID, e.Needed, e.Available, ErrPoolExhausted)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrPoolExhausted
}

// IDPool is a finite stack of unused identifiers. Ids are drawn from the end
// of the list and never handed out twice.
type IDPool struct {
	ids []string
}

// NewIDPool returns a pool holding a copy of ids.
func NewIDPool(ids []string) *IDPool {
	return &IDPool{ids: append([]string(nil), ids...)}
}

// Len returns the number of ids left.
func (p *IDPool) Len() int {
	return len(p.ids)
}

// Remaining returns a copy of the ids left, in stack order (last is next).
func (p *IDPool) Remaining() []string {
	return append([]string(nil), p.ids...)
}

// Pop draws the last id.
func (p *IDPool) Pop() (string, error) {
	if len(p.ids) == 0 {
		return "", ErrPoolExhausted
	}
	n := len(p.ids) - 1
	id := p.ids[n]
	p.ids = p.ids[:n]
	return id, nil
}

// Take draws n ids, one Pop at a time, and returns them in draw order.
// Nothing is drawn when fewer than n ids are left.
func (p *IDPool) Take(n int) ([]string, error) {
	if n > len(p.ids) {
		return nil, errors.Wrapf(ErrPoolExhausted, "need %d ids, %d available", n, len(p.ids))
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i], _ = p.Pop()
	}
	return ids, nil
}

// ReadIDPool reads a pool from a JSON array of strings, or from plain text
// with one id per line. Blank lines and surrounding quotes and commas are
// ignored in the text form so that a pasted list still reads.
func ReadIDPool(r io.Reader) (*IDPool, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read id pool")
	}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var ids []string
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return nil, errors.Wrap(err, "decode id pool")
		}
		return NewIDPool(ids), nil
	}

	var ids []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		id := strings.Trim(strings.TrimSpace(sc.Text()), `",`)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan id pool")
	}
	return NewIDPool(ids), nil
}
