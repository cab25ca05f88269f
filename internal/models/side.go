package models

// Side is the band a player bets on
type Side string

const (
	// SideNone means no side is selected
	SideNone Side = ""

	// SideLow is Xỉu, a dice sum of 3 to 10
	SideLow Side = "low"

	// SideHigh is Tài, a dice sum of 11 to 18
	SideHigh Side = "high"
)

// Valid reports whether the side is one a player can bet on
func (s Side) Valid() bool {
	return s == SideLow || s == SideHigh
}

// IsNone reports whether no side is selected
func (s Side) IsNone() bool {
	return s == SideNone
}

// Label returns the table name of the side
func (s Side) Label() string {
	switch s {
	case SideLow:
		return "XỈU"
	case SideHigh:
		return "TÀI"
	default:
		return ""
	}
}

// ParseSide maps user input onto a side. Both the English and the
// Vietnamese names are accepted.
func ParseSide(value string) (Side, bool) {
	switch value {
	case "low", "LOW", "xiu", "XIU", "xỉu", "XỈU":
		return SideLow, true
	case "high", "HIGH", "tai", "TAI", "tài", "TÀI":
		return SideHigh, true
	default:
		return SideNone, false
	}
}
