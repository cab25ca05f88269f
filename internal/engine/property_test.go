package engine

import (
	"testing"
	"time"

	"github.com/KirkDiggler/taixiu/internal/common/clock"
	"github.com/KirkDiggler/taixiu/internal/dice"
	"github.com/KirkDiggler/taixiu/internal/models"
	"pgregory.net/rapid"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var _ clock.Clock = fixedClock{}

func newPropertyEngine(t *rapid.T, session *models.Session) *Engine {
	e, err := New(&Config{
		Roller:   dice.New(&dice.Config{Seed: 1}),
		Clock:    fixedClock{now: time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)},
		Messages: categoryPicker{},
		Session:  session,
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func drawDice(t *rapid.T, label string) models.Dice {
	return models.Dice{
		models.DieFace(rapid.IntRange(1, 6).Draw(t, label+"0")),
		models.DieFace(rapid.IntRange(1, 6).Draw(t, label+"1")),
		models.DieFace(rapid.IntRange(1, 6).Draw(t, label+"2")),
	}
}

func TestPayoutProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.IntRange(0, 100000).Draw(t, "balance")
		bet := rapid.IntRange(0, balance).Draw(t, "bet")
		side := rapid.SampledFrom([]models.Side{models.SideLow, models.SideHigh}).Draw(t, "side")
		final := drawDice(t, "die")

		e := newPropertyEngine(t, &models.Session{Balance: balance, BetAmount: bet})
		if err := e.SelectSide(side); err != nil {
			t.Fatalf("select side: %v", err)
		}

		started, err := e.StartRoll()
		if err != nil {
			t.Fatalf("start roll: %v", err)
		}
		afterDebit := balance - bet
		if started.Balance != afterDebit {
			t.Fatalf("expected %d after debit, got %d", afterDebit, started.Balance)
		}

		result, err := e.ResolveRoll(final)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}

		expectWin := !final.IsTriple() && final.Outcome().Matches(side)
		if result.Won != expectWin {
			t.Fatalf("won=%v for %v on %s", result.Won, final, side)
		}

		expected := afterDebit
		if expectWin {
			expected += 2 * bet
		}
		session := e.Snapshot()
		if session.Balance != expected {
			t.Fatalf("expected balance %d, got %d", expected, session.Balance)
		}
		if !session.SelectedSide.IsNone() {
			t.Fatalf("side not cleared")
		}
		if session.History[0].Sum != final.Sum() {
			t.Fatalf("sum mismatch")
		}
	})
}

func TestInsufficientFundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.IntRange(0, 100000).Draw(t, "balance")
		bet := rapid.IntRange(balance+1, balance+100000).Draw(t, "bet")

		e := newPropertyEngine(t, &models.Session{Balance: balance, BetAmount: bet, SelectedSide: models.SideHigh})

		_, err := e.StartRoll()
		if err == nil {
			t.Fatalf("expected rejection")
		}

		session := e.Snapshot()
		if session.Balance != balance || session.IsRolling || len(session.History) != 0 {
			t.Fatalf("state mutated: %+v", session)
		}
	})
}

func TestQuickSetBetProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.IntRange(0, 100000).Draw(t, "balance")
		amount := rapid.IntRange(0, 200000).Draw(t, "amount")

		e := newPropertyEngine(t, &models.Session{Balance: balance, BetAmount: 7})
		err := e.QuickSetBet(amount)

		if amount <= balance {
			if err != nil {
				t.Fatalf("amount %d <= balance %d rejected", amount, balance)
			}
			if e.Snapshot().BetAmount != amount {
				t.Fatalf("bet not set")
			}
			return
		}

		if err == nil {
			t.Fatalf("amount %d > balance %d accepted", amount, balance)
		}
		if e.Snapshot().BetAmount != 7 {
			t.Fatalf("bet mutated on rejection")
		}
	})
}

func TestHistoryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rounds := rapid.IntRange(1, 30).Draw(t, "rounds")
		e := newPropertyEngine(t, &models.Session{Balance: 1000000, BetAmount: 1})

		var all []models.Dice
		for i := 0; i < rounds; i++ {
			final := drawDice(t, "round")
			all = append(all, final)

			if err := e.SelectSide(models.SideLow); err != nil {
				t.Fatalf("select: %v", err)
			}
			if _, err := e.StartRoll(); err != nil {
				t.Fatalf("start: %v", err)
			}
			if _, err := e.ResolveRoll(final); err != nil {
				t.Fatalf("resolve: %v", err)
			}

			history := e.Snapshot().History
			if len(history) > HistoryCap {
				t.Fatalf("history has %d entries", len(history))
			}
			if history[0].Dice != final {
				t.Fatalf("newest round not first")
			}
		}

		history := e.Snapshot().History
		for i, round := range history {
			if round.Dice != all[len(all)-1-i] {
				t.Fatalf("history out of order at %d", i)
			}
		}
	})
}
