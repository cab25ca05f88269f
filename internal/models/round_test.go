package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDiceOutcome(t *testing.T) {
	testCases := []struct {
		name    string
		dice    Dice
		sum     int
		outcome Outcome
	}{
		{name: "minimum sum is a triple", dice: Dice{1, 1, 1}, sum: 3, outcome: OutcomeTriple},
		{name: "low band", dice: Dice{2, 3, 1}, sum: 6, outcome: OutcomeLow},
		{name: "top of low band", dice: Dice{4, 4, 2}, sum: 10, outcome: OutcomeLow},
		{name: "bottom of high band", dice: Dice{5, 4, 2}, sum: 11, outcome: OutcomeHigh},
		{name: "triple in high band", dice: Dice{5, 5, 5}, sum: 15, outcome: OutcomeTriple},
		{name: "maximum sum is a triple", dice: Dice{6, 6, 6}, sum: 18, outcome: OutcomeTriple},
		{name: "high band", dice: Dice{6, 6, 5}, sum: 17, outcome: OutcomeHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.sum, tc.dice.Sum())
			assert.Equal(t, tc.outcome, tc.dice.Outcome())

			round := NewRound(42, tc.dice)
			assert.Equal(t, int64(42), round.ID)
			assert.Equal(t, tc.sum, round.Sum)
			assert.Equal(t, tc.outcome, round.Outcome)
		})
	}
}

func TestDiceOutcomeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dice := Dice{
			DieFace(rapid.IntRange(1, 6).Draw(t, "d0")),
			DieFace(rapid.IntRange(1, 6).Draw(t, "d1")),
			DieFace(rapid.IntRange(1, 6).Draw(t, "d2")),
		}

		sum := dice.Sum()
		if sum < 3 || sum > 18 {
			t.Fatalf("sum %d out of range for %v", sum, dice)
		}

		triple := dice[0] == dice[1] && dice[1] == dice[2]
		switch {
		case triple && dice.Outcome() != OutcomeTriple:
			t.Fatalf("expected triple for %v, got %s", dice, dice.Outcome())
		case !triple && sum <= 10 && dice.Outcome() != OutcomeLow:
			t.Fatalf("expected low for %v, got %s", dice, dice.Outcome())
		case !triple && sum >= 11 && dice.Outcome() != OutcomeHigh:
			t.Fatalf("expected high for %v, got %s", dice, dice.Outcome())
		}
	})
}

func TestOutcomeMatches(t *testing.T) {
	assert.True(t, OutcomeLow.Matches(SideLow))
	assert.False(t, OutcomeLow.Matches(SideHigh))
	assert.True(t, OutcomeHigh.Matches(SideHigh))
	assert.False(t, OutcomeHigh.Matches(SideLow))
	assert.False(t, OutcomeTriple.Matches(SideLow))
	assert.False(t, OutcomeTriple.Matches(SideHigh))
	assert.False(t, OutcomeLow.Matches(SideNone))
}

func TestParseSide(t *testing.T) {
	side, ok := ParseSide("tai")
	assert.True(t, ok)
	assert.Equal(t, SideHigh, side)

	side, ok = ParseSide("XỈU")
	assert.True(t, ok)
	assert.Equal(t, SideLow, side)

	_, ok = ParseSide("bao")
	assert.False(t, ok)
}

func TestSessionCloneIsDeep(t *testing.T) {
	session := &Session{
		ID:      "s1",
		Balance: 100,
		History: []Round{NewRound(1, Dice{1, 2, 3})},
	}

	clone := session.Clone()
	clone.History[0] = NewRound(2, Dice{6, 6, 6})
	clone.Balance = 0

	assert.Equal(t, int64(1), session.History[0].ID)
	assert.Equal(t, 100, session.Balance)
	assert.True(t, clone.LoanEligible())
	assert.False(t, session.LoanEligible())
}
