// Package structtext reads and writes the brace/semicolon delimited
// description language used for automaton files:
//
//	Life = { Name = "glider"; Terrain = { Xrange = 0..10; Yrange = 0..10; }; };
//
// Parse turns one struct body into identifier/value pairs. Values that are
// themselves structs are returned as raw text and parsed again by the
// caller, which is how nested documents are read.
package structtext

import (
	"strings"

	"lifeca/internal/core"
)

// Values maps identifiers to their raw value text.
type Values map[string]string

// Parse splits a struct body into identifier/value pairs. One layer of
// enclosing braces is removed if present. Quoted spans are opaque: braces,
// assignments and semicolons inside them are not delimiters. One layer of
// surrounding quotes is removed from each value.
func Parse(text string) (Values, error) {
	text = stripBraces(strings.TrimSpace(text))
	if err := checkBalance(text); err != nil {
		return nil, err
	}
	values := make(Values)
	rest := text
	for {
		eq := indexUnquoted(rest, '=')
		if eq < 0 {
			break
		}
		end := valueEnd(rest, eq+1)
		if end < 0 {
			return nil, core.Errorf(core.ErrMalformedDocument, "malformed document: assignment to %q is not terminated", strings.TrimSpace(rest[:eq]))
		}
		id := strings.TrimSpace(rest[:eq])
		values[id] = unquote(strings.TrimSpace(rest[eq+1 : end]))
		rest = rest[end+1:]
	}
	return values, nil
}

// Value returns the value assigned to id. It fails with ErrMissingIdentifier
// when id is absent and, when requireNonEmpty is set, with ErrEmptyValue when
// the value is blank.
func (v Values) Value(id string, requireNonEmpty bool) (string, error) {
	value, ok := v[id]
	if !ok {
		return "", core.Errorf(core.ErrMissingIdentifier, "missing identifier: %s", id)
	}
	if requireNonEmpty && strings.TrimSpace(value) == "" {
		return "", core.Errorf(core.ErrEmptyValue, "identifier is not assigned a value: %s", id)
	}
	return value, nil
}

// Lookup returns the value assigned to id and whether it was present.
func (v Values) Lookup(id string) (string, bool) {
	value, ok := v[id]
	return value, ok
}

// Has reports whether id was assigned a non-blank value.
func (v Values) Has(id string) bool {
	return strings.TrimSpace(v[id]) != ""
}

func stripBraces(s string) string {
	if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
		return s[1 : len(s)-1]
	}
	return s
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// checkBalance verifies that every { has a matching } and every = has a
// matching ; outside quoted spans, and that no quote is left open.
func checkBalance(s string) error {
	braces, assigns := 0, 0
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			quoted = !quoted
			continue
		}
		if quoted {
			continue
		}
		switch c {
		case '{':
			braces++
		case '}':
			braces--
		case '=':
			assigns++
		case ';':
			assigns--
		}
		if braces < 0 {
			return core.Errorf(core.ErrMalformedDocument, "malformed document: unexpected '}' at offset %d", i)
		}
		if assigns < 0 {
			return core.Errorf(core.ErrMalformedDocument, "malformed document: unexpected ';' at offset %d", i)
		}
	}
	switch {
	case quoted:
		return core.Errorf(core.ErrMalformedDocument, "malformed document: unterminated quote")
	case braces != 0:
		return core.Errorf(core.ErrMalformedDocument, "malformed document: %d unclosed '{'", braces)
	case assigns != 0:
		return core.Errorf(core.ErrMalformedDocument, "malformed document: %d unterminated assignments", assigns)
	}
	return nil
}

// indexUnquoted returns the index of the first c in s outside quotes, or -1.
func indexUnquoted(s string, c byte) int {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			quoted = !quoted
		case !quoted && s[i] == c:
			return i
		}
	}
	return -1
}

// valueEnd returns the index of the ; terminating the value that starts at
// from. Semicolons inside quotes or nested braces do not count.
func valueEnd(s string, from int) int {
	depth := 0
	quoted := false
	for i := from; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			quoted = !quoted
			continue
		}
		if quoted {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		case ';':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
