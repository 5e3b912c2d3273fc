package annotator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FieldName derives a tag name from a field identifier.
func FieldName(ident string) string {
	name := lowerFirst(strings.TrimSpace(ident))
	if len(name) == 2 {
		name = strings.ToLower(name)
	}

	return name
}

// Fragment renders a single key:"name" pair.
func Fragment(key, name string) string {
	return key + `:"` + name + `"`
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
