package tagcheck

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.RunWithSuggestedFixes(t, analysistest.TestData(), Analyzer, "a")
}

func TestAnalyzerCustomKey(t *testing.T) {
	a := NewAnalyzer("yaml")
	if got := a.Flags.Lookup("key").Value.String(); got != "yaml" {
		t.Fatalf("unexpected default key %q", got)
	}

	analysistest.Run(t, analysistest.TestData(), a, "b")
}
