package models

// DieFace is the value shown by a single six-sided die
type DieFace int

const (
	// MinFace is the lowest value on a die
	MinFace DieFace = 1

	// MaxFace is the highest value on a die
	MaxFace DieFace = 6
)

// Valid reports whether the face is in [1,6]
func (f DieFace) Valid() bool {
	return f >= MinFace && f <= MaxFace
}

// Dice is the set of three dice thrown each round
type Dice [3]DieFace

// Sum returns the arithmetic sum of the three faces
func (d Dice) Sum() int {
	return int(d[0]) + int(d[1]) + int(d[2])
}

// IsTriple reports whether all three faces are identical
func (d Dice) IsTriple() bool {
	return d[0] == d[1] && d[1] == d[2]
}

// Valid reports whether every face is in [1,6]
func (d Dice) Valid() bool {
	return d[0].Valid() && d[1].Valid() && d[2].Valid()
}

// Outcome classifies the dice. A triple wins over the sum bands.
func (d Dice) Outcome() Outcome {
	if d.IsTriple() {
		return OutcomeTriple
	}
	if d.Sum() <= 10 {
		return OutcomeLow
	}
	return OutcomeHigh
}

// Round is one resolved throw. Rounds are never modified after they are
// added to a session's history.
type Round struct {
	// ID is a creation-time token, strictly increasing within a session
	ID int64

	// Dice are the final faces of the throw
	Dice Dice

	// Sum is always Dice.Sum()
	Sum int

	// Outcome is always Dice.Outcome()
	Outcome Outcome
}

// NewRound builds a round from the final dice
func NewRound(id int64, dice Dice) Round {
	return Round{
		ID:      id,
		Dice:    dice,
		Sum:     dice.Sum(),
		Outcome: dice.Outcome(),
	}
}
