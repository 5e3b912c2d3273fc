package annotator

import (
	"maps"
	"slices"
	"strings"
)

// Statements like "    return x, nil" look exactly like a field with a type,
// so identifiers containing these are never rewritten.
var predefinedGuards = []string{
	"return",
}

type guards struct {
	known map[string]struct{}
}

func newGuards(custom []string) *guards {
	known := make(map[string]struct{}, len(predefinedGuards)+len(custom))
	for _, g := range custom {
		if g == "" {
			continue
		}
		known[g] = struct{}{}
	}
	for _, g := range predefinedGuards {
		known[g] = struct{}{}
	}

	return &guards{known: known}
}

// hit checks if the identifier contains any guard as a substring.
func (g *guards) hit(ident string) bool {
	ident = strings.TrimSpace(ident)
	for guard := range g.known {
		if strings.Contains(ident, guard) {
			return true
		}
	}

	return false
}

func (g *guards) list() []string {
	return slices.Sorted(maps.Keys(g.known))
}
