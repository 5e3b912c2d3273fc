package annotator

import (
	"strings"
)

// DefaultKey is the tag key used when none is set.
const DefaultKey = "json"

const trailingSpace = " \t\n\r\x00\x0b"

// Annotator rewrites field lines.
type Annotator struct {
	key    string
	guards *guards
}

// Option sets up an Annotator.
type Option func(*options)

type options struct {
	key    string
	guards []string
}

// WithKey sets the tag key. Empty key keeps the default.
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithGuards adds guard words on top of the predefined "return".
func WithGuards(guards ...string) Option {
	return func(o *options) {
		o.guards = append(o.guards, guards...)
	}
}

// New creates an Annotator.
func New(opts ...Option) *Annotator {
	o := options{key: DefaultKey}
	for _, opt := range opts {
		opt(&o)
	}

	return &Annotator{
		key:    o.key,
		guards: newGuards(o.guards),
	}
}

// Key returns the tag key in use.
func (a *Annotator) Key() string {
	return a.key
}

// Guards returns guard words in use, sorted.
func (a *Annotator) Guards() []string {
	return a.guards.list()
}

// Line rewrites a single line.
func (a *Annotator) Line(line string) (string, Outcome) {
	g, ok := Match(line)
	if !ok {
		return line, OutcomeUnmatched
	}

	return a.Rewrite(g)
}

// Rewrite builds a line from matched groups.
func (a *Annotator) Rewrite(g Groups) (string, Outcome) {
	if a.guards.hit(g.Ident) {
		return g.Source, OutcomeGuarded
	}

	fragment := Fragment(a.key, FieldName(g.Ident))

	if g.HasTag() {
		return g.Ident + g.Middle + g.Tag[:len(g.Tag)-1] + " " + fragment + "`", OutcomeExtended
	}

	middle := g.Middle
	var comment string
	if pos := strings.Index(middle, "//"); pos >= 0 {
		comment = " " + middle[pos:]
		middle = strings.TrimRight(middle[:pos], trailingSpace)
	}

	res := g.Ident + middle + " `" + fragment + "`" + comment
	return strings.TrimRight(res, trailingSpace), OutcomeCreated
}

// Result is the outcome of a document rewrite.
type Result struct {
	// Text is the rewritten document, every line is terminated by a newline.
	Text string

	// Outcomes has an item per source line.
	Outcomes []Outcome
}

// Document rewrites every line of text.
func (a *Annotator) Document(text string) Result {
	lines := strings.Split(text, "\n")

	res := Result{
		Outcomes: make([]Outcome, 0, len(lines)),
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		l, o := a.Line(line)
		out = append(out, l)
		res.Outcomes = append(res.Outcomes, o)
	}

	res.Text = strings.Join(out, "\n") + "\n"

	return res
}
