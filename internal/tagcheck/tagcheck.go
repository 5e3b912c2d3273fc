// Package tagcheck provides an analyzer reporting exported struct fields without a
// serialization tag. Every diagnostic carries a fix adding the tag with the same name
// the line annotator would produce, except for fields where the tag cannot be edited
// safely: several names sharing one declaration or tags in an interpreted string.
package tagcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/jsontag/internal/annotator"
)

const doc = `jsontag reports exported struct fields lacking a serialization tag

Field names are derived the same way the jsontag command does it: the first
letter is lowercased and two letter names are lowercased completely.`

// Analyzer checks for the json key.
var Analyzer = NewAnalyzer(annotator.DefaultKey)

// NewAnalyzer creates an analyzer checking for the given tag key. The key can be
// overridden with the -key flag.
func NewAnalyzer(key string) *analysis.Analyzer {
	c := &checker{key: key}

	a := &analysis.Analyzer{
		Name:     "jsontag",
		Doc:      doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      c.run,
	}
	a.Flags.StringVar(&c.key, "key", key, "tag key to look for")

	return a
}

type checker struct {
	key string
}

func (c *checker) run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.StructType)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		st := node.(*ast.StructType)
		if st.Fields == nil {
			return
		}

		for _, field := range st.Fields.List {
			c.checkField(pass, field)
		}
	})

	return nil, nil
}

func (c *checker) checkField(pass *analysis.Pass, field *ast.Field) {
	if len(field.Names) == 0 {
		// Embedded.
		return
	}

	var tag string
	if field.Tag != nil {
		v, err := strconv.Unquote(field.Tag.Value)
		if err != nil {
			return
		}
		tag = v
	}
	if _, ok := reflect.StructTag(tag).Lookup(c.key); ok {
		return
	}

	for _, name := range field.Names {
		if !name.IsExported() {
			continue
		}

		diag := analysis.Diagnostic{
			Pos:     name.Pos(),
			End:     name.End(),
			Message: fmt.Sprintf("field %s has no %s tag", name.Name, c.key),
		}
		if len(field.Names) == 1 {
			if fix, ok := c.fix(field, name.Name); ok {
				diag.SuggestedFixes = []analysis.SuggestedFix{fix}
			}
		}

		pass.Report(diag)
	}
}

func (c *checker) fix(field *ast.Field, name string) (analysis.SuggestedFix, bool) {
	fragment := annotator.Fragment(c.key, annotator.FieldName(name))

	var (
		pos  token.Pos
		text string
	)
	switch {
	case field.Tag == nil:
		pos = field.Type.End()
		text = " `" + fragment + "`"
	case strings.HasPrefix(field.Tag.Value, "`"):
		pos = field.Tag.End() - 1
		text = fragment
		if field.Tag.Value != "``" {
			text = " " + text
		}
	default:
		return analysis.SuggestedFix{}, false
	}

	return analysis.SuggestedFix{
		Message: fmt.Sprintf("Add %s", fragment),
		TextEdits: []analysis.TextEdit{
			{
				Pos:     pos,
				End:     pos,
				NewText: []byte(text),
			},
		},
	}, true
}
