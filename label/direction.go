package label

import "golang.org/x/text/unicode/bidi"

// Direction is the base direction of a label run.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// BaseDirection resolves the base direction of text from its first
// strong directional character, Unicode rule P2. Text with no strong
// character (digits, punctuation, empty) resolves to DirectionLTR.
func BaseDirection(text string) Direction {
	for i := 0; i < len(text); {
		props, sz := bidi.LookupString(text[i:])
		if sz == 0 {
			break
		}
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
		i += sz
	}
	return DirectionLTR
}
