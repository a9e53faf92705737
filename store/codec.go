package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

var errNotObject = errors.New("record is not a JSON object")

// Entity is a value carrying a 64-bit id unique within one store.
// WithID returns a copy of the entity with the id replaced.
type Entity[T any] interface {
	ID() int64
	WithID(id int64) T
}

// Predicate selects records. A nil Predicate selects every record.
type Predicate[T any] func(item T) bool

func (p Predicate[T]) match(item T) bool {
	return p == nil || p(item)
}

// encode serializes an entity into one line without terminator. json v2
// escapes control characters inside strings so the output never contains a
// raw line break. Lines longer than maxLineSize are refused, readers could
// not load them back.
func encode[T any](item T) ([]byte, error) {
	data, err := json.Marshal(item, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("json encode record: %w", err)
	}
	if len(data) > maxLineSize {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrRecordTooLarge, len(data), maxLineSize)
	}
	return data, nil
}

// decode parses one line. Empty and malformed lines fail, and so do valid
// JSON values that are not objects (null, numbers, arrays...).
func decode[T any](line []byte) (T, error) {
	var item T
	if jsontext.Value(bytes.TrimSpace(line)).Kind() != '{' {
		return item, errNotObject
	}
	err := json.Unmarshal(line, &item, json.MatchCaseInsensitiveNames(true))
	return item, err
}
