// Command jsontaglint reports exported struct fields without a json tag and can fix them with -fix.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/jsontag/internal/tagcheck"
)

func main() {
	singlechecker.Main(tagcheck.Analyzer)
}
