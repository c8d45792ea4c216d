package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Set is an insertion-ordered mapping from token name to CSS value. Overwriting an
// existing name keeps its original position. The zero value is an empty set.
type Set struct {
	names  []string
	values map[string]string
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{values: make(map[string]string)}
}

// SetOf builds a Set from alternating name/value arguments. It panics on an odd count.
func SetOf(pairs ...string) *Set {
	if len(pairs)%2 != 0 {
		panic("tokens.SetOf: odd number of arguments")
	}
	s := NewSet()
	for i := 0; i < len(pairs); i += 2 {
		s.Put(pairs[i], pairs[i+1])
	}
	return s
}

// Put stores value under name.
func (s *Set) Put(name, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Get returns the value stored under name.
func (s *Set) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[name]
	return v, ok
}

// Value returns the value stored under name, or "" when absent.
func (s *Set) Value(name string) string {
	v, _ := s.Get(name)
	return v
}

// Len reports the number of tokens.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns token names in insertion order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Each calls fn for every token in insertion order.
func (s *Set) Each(fn func(name, value string)) {
	if s == nil {
		return
	}
	for _, n := range s.names {
		fn(n, s.values[n])
	}
}

// Merge copies every token of other into s; values from other win.
func (s *Set) Merge(other *Set) {
	other.Each(s.Put)
}

// Equal reports whether both sets hold the same tokens in the same order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	on := other.Names()
	for i, n := range s.Names() {
		if on[i] != n || s.Value(n) != other.Value(n) {
			return false
		}
	}
	return true
}

// Style renders the set as a CSS declaration list: "name: value;" pairs separated by spaces.
func (s *Set) Style() string {
	parts := make([]string, 0, s.Len())
	s.Each(func(name, value string) {
		parts = append(parts, name+": "+value+";")
	})
	return strings.Join(parts, " ")
}

// MarshalJSON encodes the set as a flat JSON object, preserving order.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	i := 0
	s.Each(func(name, value string) {
		if err != nil {
			return
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		var k, v []byte
		if k, err = json.Marshal(name); err != nil {
			return
		}
		if v, err = json.Marshal(value); err != nil {
			return
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of strings, preserving key order.
func (s *Set) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeSet(data)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

var errNotFlatObject = errors.New("token document must be a flat JSON object of strings")

// DecodeSet parses a flat JSON object whose values are all strings. Key order is kept;
// a repeated key keeps its first position and its last value.
func DecodeSet(data []byte) (*Set, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotFlatObject
	}

	out := NewSet()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errNotFlatObject
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		value, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a string", errNotFlatObject, key)
		}
		out.Put(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after token document")
	}

	return out, nil
}
