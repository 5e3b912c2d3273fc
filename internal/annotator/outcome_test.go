package annotator

import (
	"testing"
)

func TestOutcomeText(t *testing.T) {
	for o := range outcomeValueMap {
		text, err := o.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %s", o, err)
		}

		var got Outcome
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %s", text, err)
		}
		if got != o {
			t.Errorf("got %s, want %s", got, o)
		}
	}

	var o Outcome
	if err := o.UnmarshalText([]byte("rewritten")); err == nil {
		t.Error("expected error for unknown outcome")
	}
	if _, err := OutcomeInvalid.MarshalText(); err == nil {
		t.Error("expected error for invalid outcome")
	}
	if got := OutcomeInvalid.String(); got != "invalid(0)" {
		t.Errorf("unexpected invalid outcome string %q", got)
	}
}

func TestOutcomeChanged(t *testing.T) {
	tests := map[Outcome]bool{
		OutcomeUnmatched: false,
		OutcomeGuarded:   false,
		OutcomeExtended:  true,
		OutcomeCreated:   true,
	}

	for o, want := range tests {
		if got := o.Changed(); got != want {
			t.Errorf("%s.Changed() = %v, want %v", o, got, want)
		}
	}
}
