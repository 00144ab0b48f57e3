package kit

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ReadJSON returns, in document order, every object of the JSON document
// that has a string "id" and a string "path". Objects are searched at any
// depth; an object comes before the shapes nested inside it.
func ReadJSON(r io.Reader) ([]Shape, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode kit")
	}
	shapes, err := walkJSON(dec, tok)
	if err != nil {
		return nil, errors.Wrap(err, "decode kit")
	}
	return shapes, nil
}

// walkJSON consumes the value that starts with tok.
func walkJSON(dec *json.Decoder, tok json.Token) ([]Shape, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, nil
	}

	var shapes []Shape
	switch delim {
	case '[':
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			nested, err := walkJSON(dec, tok)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, nested...)
		}

	case '{':
		var own Shape
		var hasID, hasPath bool
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			if s, ok := tok.(string); ok {
				switch key {
				case "id":
					own.ID, hasID = s, true
				case "path":
					own.Path, hasPath = s, true
				}
				continue
			}
			nested, err := walkJSON(dec, tok)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, nested...)
		}
		if hasID && hasPath {
			shapes = append([]Shape{own}, shapes...)
		}

	default:
		return nil, errors.Errorf("unexpected %v", delim)
	}

	// closing delimiter
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return shapes, nil
}
