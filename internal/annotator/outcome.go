package annotator

import (
	"fmt"
)

// Outcome describes what was done with a line.
type Outcome int

const (
	OutcomeInvalid Outcome = iota

	// OutcomeUnmatched means the line does not look like a field and was kept as is.
	OutcomeUnmatched

	// OutcomeGuarded means the line looks like a field but its identifier contains a guard word.
	OutcomeGuarded

	// OutcomeExtended means the fragment was appended into an existing tag block.
	OutcomeExtended

	// OutcomeCreated means a new tag block was added.
	OutcomeCreated
)

var outcomeValueMap = map[Outcome]string{
	OutcomeUnmatched: "unmatched",
	OutcomeGuarded:   "guarded",
	OutcomeExtended:  "extended",
	OutcomeCreated:   "created",
}

func (o Outcome) String() string {
	v, ok := outcomeValueMap[o]
	if !ok {
		return fmt.Sprintf("invalid(%d)", o)
	}

	return v
}

// Changed reports whether a line with this outcome differs from the source.
func (o Outcome) Changed() bool {
	return o == OutcomeExtended || o == OutcomeCreated
}

func (o Outcome) MarshalText() ([]byte, error) {
	v, ok := outcomeValueMap[o]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Outcome(%d)", o)
	}

	return []byte(v), nil
}

func (o *Outcome) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range outcomeValueMap {
		if v == text {
			*o = k
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}
