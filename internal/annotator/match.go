package annotator

import (
	"regexp"
)

var fieldLine = regexp.MustCompile("^(\\s+\\w+)(\\s+.+?)(\\s+`.+?`)?$")

// Groups is what a field line consists of.
type Groups struct {
	// Ident is the leading whitespace with the field identifier.
	Ident string
	// Middle is everything between the identifier and the tag block: type, value, comment.
	Middle string
	// Tag is the trailing tag block including leading whitespace and both backticks.
	// Empty when the line has no tag block.
	Tag string
	// Source is the whole matched line.
	Source string
}

// HasTag reports whether the line ends with a tag block.
func (g Groups) HasTag() bool {
	return g.Tag != ""
}

// Match splits a line into groups. It returns false for lines which don't look
// like a field declaration.
func Match(line string) (Groups, bool) {
	m := fieldLine.FindStringSubmatch(line)
	if m == nil {
		return Groups{}, false
	}

	return Groups{
		Ident:  m[1],
		Middle: m[2],
		Tag:    m[3],
		Source: m[0],
	}, true
}
