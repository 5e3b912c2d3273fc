// Package annotator adds serialization tags to struct field lines of Go source.
//
// It is a line-oriented heuristic, not a parser. Every line is tried against
// a single shape:
//
//	<indent><Ident><space><content>[<space>`<existing tags>`]
//
// Lines of a different shape are left as they are. Matching lines get a
// `json:"<name>"` fragment, where the name is the identifier with the first
// letter lowercased. Two letter identifiers are lowercased completely, so
// ID becomes id, while URL becomes uRL.
//
// When the line already ends with a tag block the fragment is appended into
// it:
//
//	Count int `xml:"count"`  →  Count int `xml:"count" json:"count"`
//
// Otherwise a new block is created and a trailing line comment, if any, is
// moved after it:
//
//	Count int // total items  →  Count int `json:"count"` // total items
//
// Applying the annotator twice appends the fragment twice.
package annotator
