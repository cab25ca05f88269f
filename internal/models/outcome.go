package models

// Outcome is the result category of a resolved round
type Outcome string

const (
	// OutcomeLow indicates a sum of 3 to 10 without a triple
	OutcomeLow Outcome = "low"

	// OutcomeHigh indicates a sum of 11 to 18 without a triple
	OutcomeHigh Outcome = "high"

	// OutcomeTriple indicates all three dice show the same face (Bão).
	// The house wins on a triple whatever side was chosen.
	OutcomeTriple Outcome = "triple"
)

// Matches reports whether a bet on side wins against this outcome.
// A triple matches no side.
func (o Outcome) Matches(side Side) bool {
	switch o {
	case OutcomeLow:
		return side == SideLow
	case OutcomeHigh:
		return side == SideHigh
	default:
		return false
	}
}

// Badge returns the single letter used in history strips
func (o Outcome) Badge() string {
	switch o {
	case OutcomeLow:
		return "X"
	case OutcomeHigh:
		return "T"
	case OutcomeTriple:
		return "B"
	default:
		return "?"
	}
}

// Label returns the table name of the outcome
func (o Outcome) Label() string {
	switch o {
	case OutcomeLow:
		return "XỈU"
	case OutcomeHigh:
		return "TÀI"
	case OutcomeTriple:
		return "BÃO"
	default:
		return ""
	}
}
