package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Entry is the payload accepted by StoreEntry. The database assigns the ID.
type Entry struct {
	Title   string  `json:"title" bson:"title"`
	Content Content `json:"content" bson:"content"`
}

// Document is a stored entry as returned by FetchEntries. The "_id" key
// always holds a string.
type Document map[string]interface{}

// IDField is the key carrying the database-assigned identifier.
const IDField = "_id"

// Content is an arbitrary JSON object. Integral numbers decode to int64 so
// they round-trip through the store as integers rather than doubles.
type Content map[string]interface{}

func (c *Content) UnmarshalJSON(b []byte) error {
	raw, err := DecodeObject(b)
	if err != nil {
		return err
	}
	*c = Content(raw)
	return nil
}

// DecodeObject decodes a JSON object with integral numbers kept as int64.
// A JSON null yields a nil map.
func DecodeObject(b []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	out, err := normalizeNumbers(raw)
	if err != nil {
		return nil, err
	}
	return out.(map[string]interface{}), nil
}

// normalizeNumbers rejects integer literals outside int64.
func normalizeNumbers(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		if !strings.ContainsAny(t.String(), ".eE") {
			return nil, fmt.Errorf("%w: %s", ErrIntegerOverflow, t.String())
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case map[string]interface{}:
		for k, inner := range t {
			n, err := normalizeNumbers(inner)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case []interface{}:
		for i, inner := range t {
			n, err := normalizeNumbers(inner)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}
