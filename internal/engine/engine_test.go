package engine

import (
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/taixiu/internal/common/clock/mocks"
	diceMocks "github.com/KirkDiggler/taixiu/internal/dice/mocks"
	"github.com/KirkDiggler/taixiu/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// categoryPicker answers with the category name so tests can tell which
// table was used
type categoryPicker struct{}

func (categoryPicker) Pick(category models.MessageCategory) string {
	return string(category)
}

type EngineTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	mockClock  *clockMocks.MockClock
	engine     *Engine
	testTime   time.Time
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	engine, err := New(&Config{
		Roller:    s.mockRoller,
		Clock:     s.mockClock,
		Messages:  categoryPicker{},
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// roll plays a full round on side with the given final dice
func (s *EngineTestSuite) roll(side models.Side, final models.Dice) *RoundResult {
	s.Require().NoError(s.engine.SelectSide(side))
	_, err := s.engine.StartRoll()
	s.Require().NoError(err)

	result, err := s.engine.ResolveRoll(final)
	s.Require().NoError(err)
	return result
}

func (s *EngineTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, Messages: categoryPicker{}})
	s.ErrorIs(err, ErrNilRoller)

	_, err = New(&Config{Roller: s.mockRoller, Messages: categoryPicker{}})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Roller: s.mockRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilMessages)
}

func (s *EngineTestSuite) TestFreshSession() {
	session := s.engine.Snapshot()

	s.Equal("test-session-id", session.ID)
	s.Equal(5000, session.Balance)
	s.Equal(1000, session.BetAmount)
	s.Equal(models.Dice{1, 1, 1}, session.Dice)
	s.Equal(models.SideNone, session.SelectedSide)
	s.False(session.IsRolling)
	s.Empty(session.History)
	s.Equal(string(models.MessageGreeting), session.Notification)
	s.Equal(s.testTime, session.CreatedAt)
}

func (s *EngineTestSuite) TestResumeSession() {
	existing := &models.Session{ID: "resumed", Balance: 42, BetAmount: 7}

	engine, err := New(&Config{
		Roller:   s.mockRoller,
		Clock:    s.mockClock,
		Messages: categoryPicker{},
		Session:  existing,
	})
	s.Require().NoError(err)

	s.Equal(42, engine.Snapshot().Balance)
	s.Equal("resumed", engine.Snapshot().ID)
}

func (s *EngineTestSuite) TestSnapshotIsACopy() {
	snapshot := s.engine.Snapshot()
	snapshot.Balance = 1

	s.Equal(5000, s.engine.Snapshot().Balance)
}

func (s *EngineTestSuite) TestSelectSide() {
	s.Require().NoError(s.engine.SelectSide(models.SideHigh))
	s.Equal(models.SideHigh, s.engine.Snapshot().SelectedSide)

	s.Require().NoError(s.engine.SelectSide(models.SideLow))
	s.Equal(models.SideLow, s.engine.Snapshot().SelectedSide)

	s.ErrorIs(s.engine.SelectSide(models.Side("middle")), ErrInvalidSide)
	s.ErrorIs(s.engine.SelectSide(models.SideNone), ErrInvalidSide)
	s.Equal(models.SideLow, s.engine.Snapshot().SelectedSide)
}

func (s *EngineTestSuite) TestSetBetAmountClampsNegative() {
	s.Require().NoError(s.engine.SetBetAmount(-50))
	s.Equal(0, s.engine.Snapshot().BetAmount)

	// Not checked against the balance until the roll starts
	s.Require().NoError(s.engine.SetBetAmount(999999))
	s.Equal(999999, s.engine.Snapshot().BetAmount)
}

func (s *EngineTestSuite) TestSetBetAmountText() {
	testCases := []struct {
		input    string
		expected int
	}{
		{input: "250", expected: 250},
		{input: "  75", expected: 75},
		{input: "12abc", expected: 12},
		{input: "abc", expected: 0},
		{input: "", expected: 0},
		{input: "-300", expected: 0},
		{input: "+40", expected: 40},
	}

	for _, tc := range testCases {
		s.Require().NoError(s.engine.SetBetAmountText(tc.input))
		s.Equal(tc.expected, s.engine.Snapshot().BetAmount, "input %q", tc.input)
	}
}

func (s *EngineTestSuite) TestStartRollInsufficientFunds() {
	s.Require().NoError(s.engine.SelectSide(models.SideLow))
	s.Require().NoError(s.engine.SetBetAmount(6000))

	started, err := s.engine.StartRoll()
	s.Nil(started)
	s.ErrorIs(err, ErrInsufficientFunds)

	var rejection *Rejection
	s.Require().True(errors.As(err, &rejection))
	s.Equal(string(models.MessageInsufficientFunds), rejection.Message)

	session := s.engine.Snapshot()
	s.Equal(5000, session.Balance)
	s.False(session.IsRolling)
	s.Empty(session.History)
	s.Equal(string(models.MessageInsufficientFunds), session.Notification)
}

func (s *EngineTestSuite) TestStartRollChecksFundsBeforeSide() {
	s.Require().NoError(s.engine.SetBetAmount(6000))

	_, err := s.engine.StartRoll()
	s.ErrorIs(err, ErrInsufficientFunds)
}

func (s *EngineTestSuite) TestStartRollNoSideSelected() {
	_, err := s.engine.StartRoll()
	s.ErrorIs(err, ErrNoSideSelected)

	session := s.engine.Snapshot()
	s.Equal(5000, session.Balance)
	s.False(session.IsRolling)
	s.Empty(session.History)
	s.Equal(string(models.MessageNoSideSelected), session.Notification)
}

func (s *EngineTestSuite) TestStartRollDebitsStake() {
	s.Require().NoError(s.engine.SelectSide(models.SideHigh))

	started, err := s.engine.StartRoll()
	s.Require().NoError(err)
	s.Equal(models.SideHigh, started.Side)
	s.Equal(1000, started.Stake)
	s.Equal(4000, started.Balance)
	s.Equal(string(models.MessageRolling), started.Message)

	session := s.engine.Snapshot()
	s.Equal(4000, session.Balance)
	s.True(session.IsRolling)
}

func (s *EngineTestSuite) TestRollingRejectsIntents() {
	s.Require().NoError(s.engine.SelectSide(models.SideHigh))
	_, err := s.engine.StartRoll()
	s.Require().NoError(err)

	s.ErrorIs(s.engine.SelectSide(models.SideLow), ErrRollInProgress)
	s.ErrorIs(s.engine.SetBetAmount(1), ErrRollInProgress)
	s.ErrorIs(s.engine.QuickSetBet(100), ErrRollInProgress)
	s.ErrorIs(s.engine.AllIn(), ErrRollInProgress)
	_, err = s.engine.StartRoll()
	s.ErrorIs(err, ErrRollInProgress)
	_, err = s.engine.RequestLoan()
	s.ErrorIs(err, ErrRollInProgress)

	// Only the stake has moved
	session := s.engine.Snapshot()
	s.Equal(4000, session.Balance)
	s.Equal(1000, session.BetAmount)
	s.Equal(models.SideHigh, session.SelectedSide)
}

func (s *EngineTestSuite) TestShake() {
	_, err := s.engine.Shake()
	s.ErrorIs(err, ErrNotRolling)

	s.Require().NoError(s.engine.SelectSide(models.SideHigh))
	_, err = s.engine.StartRoll()
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(6).Return(4),
		s.mockRoller.EXPECT().Roll(6).Return(5),
		s.mockRoller.EXPECT().Roll(6).Return(6),
	)

	shown, err := s.engine.Shake()
	s.Require().NoError(err)
	s.Equal(models.Dice{4, 5, 6}, shown)

	session := s.engine.Snapshot()
	s.Equal(models.Dice{4, 5, 6}, session.Dice)
	s.Equal(4000, session.Balance)
	s.Empty(session.History)
	s.True(session.IsRolling)
}

func (s *EngineTestSuite) TestResolveRollRequiresRolling() {
	_, err := s.engine.ResolveRoll(models.Dice{1, 2, 3})
	s.ErrorIs(err, ErrNotRolling)
}

func (s *EngineTestSuite) TestResolveRollRejectsBadDice() {
	s.Require().NoError(s.engine.SelectSide(models.SideHigh))
	_, err := s.engine.StartRoll()
	s.Require().NoError(err)

	_, err = s.engine.ResolveRoll(models.Dice{0, 3, 7})
	s.ErrorIs(err, ErrInvalidDie)
	s.True(s.engine.Snapshot().IsRolling)
}

func (s *EngineTestSuite) TestWinOnLow() {
	result := s.roll(models.SideLow, models.Dice{2, 3, 1})

	s.True(result.Won)
	s.Equal(2000, result.Payout)
	s.Equal(6000, result.Balance)
	s.Equal(models.SideLow, result.Side)
	s.Equal(string(models.MessageWin), result.Message)

	session := s.engine.Snapshot()
	s.Equal(6000, session.Balance)
	s.Require().Len(session.History, 1)
	s.Equal(models.Dice{2, 3, 1}, session.History[0].Dice)
	s.Equal(6, session.History[0].Sum)
	s.Equal(models.OutcomeLow, session.History[0].Outcome)
	s.Equal(s.testTime.UnixMilli(), session.History[0].ID)
	s.Equal(models.Dice{2, 3, 1}, session.Dice)
	s.Equal(models.SideNone, session.SelectedSide)
	s.False(session.IsRolling)
}

func (s *EngineTestSuite) TestTripleAlwaysLoses() {
	result := s.roll(models.SideHigh, models.Dice{5, 5, 5})

	s.False(result.Won)
	s.Equal(0, result.Payout)
	s.Equal(4000, result.Balance)
	s.Equal(string(models.MessageTriple), result.Message)

	session := s.engine.Snapshot()
	s.Equal(4000, session.Balance)
	s.Equal(models.OutcomeTriple, session.History[0].Outcome)
	s.Equal(models.SideNone, session.SelectedSide)
}

func (s *EngineTestSuite) TestLoseOnWrongSide() {
	result := s.roll(models.SideHigh, models.Dice{1, 2, 4})

	s.False(result.Won)
	s.Equal(4000, result.Balance)
	s.Equal(string(models.MessageLose), result.Message)
	s.Equal(models.SideNone, s.engine.Snapshot().SelectedSide)
}

func (s *EngineTestSuite) TestSideMustBeChosenAgain() {
	s.roll(models.SideHigh, models.Dice{6, 5, 4})

	_, err := s.engine.StartRoll()
	s.ErrorIs(err, ErrNoSideSelected)
}

func (s *EngineTestSuite) TestHistoryCappedNewestFirst() {
	for i := 0; i < 12; i++ {
		s.roll(models.SideHigh, models.Dice{6, 5, 4})
	}

	history := s.engine.Snapshot().History
	s.Require().Len(history, HistoryCap)

	// The clock is frozen so ids come from the monotonic bump
	for i := 0; i < len(history)-1; i++ {
		s.Greater(history[i].ID, history[i+1].ID)
	}
	s.Equal(s.testTime.UnixMilli()+11, history[0].ID)
	s.Equal(s.testTime.UnixMilli()+2, history[HistoryCap-1].ID)
}

func (s *EngineTestSuite) TestQuickSetBet() {
	s.Require().NoError(s.engine.SetBetAmount(0))
	_, err := s.engine.RequestLoan()
	s.ErrorIs(err, ErrLoanNotEligible)

	// Drain the balance to 300
	s.Require().NoError(s.engine.SetBetAmount(4700))
	s.roll(models.SideHigh, models.Dice{1, 1, 2})
	s.Require().Equal(300, s.engine.Snapshot().Balance)
	s.Require().NoError(s.engine.SetBetAmount(123))

	err = s.engine.QuickSetBet(500)
	s.ErrorIs(err, ErrQuickBetRejected)
	s.Equal(123, s.engine.Snapshot().BetAmount)
	s.Equal(string(models.MessageQuickBetRejected), s.engine.Snapshot().Notification)

	s.Require().NoError(s.engine.QuickSetBet(300))
	s.Equal(300, s.engine.Snapshot().BetAmount)

	s.Require().NoError(s.engine.QuickSetBet(100))
	s.Equal(100, s.engine.Snapshot().BetAmount)
}

func (s *EngineTestSuite) TestAllIn() {
	s.Require().NoError(s.engine.AllIn())
	s.Equal(5000, s.engine.Snapshot().BetAmount)
}

func (s *EngineTestSuite) TestLoan() {
	s.Require().NoError(s.engine.AllIn())
	s.roll(models.SideLow, models.Dice{6, 6, 1})
	s.Require().Equal(0, s.engine.Snapshot().Balance)
	s.True(s.engine.LoanEligible())

	granted, err := s.engine.RequestLoan()
	s.Require().NoError(err)
	s.Equal(500, granted.Amount)
	s.Equal(500, granted.Balance)
	s.Equal(string(models.MessagePoor), granted.Message)

	s.Equal(500, s.engine.Snapshot().Balance)
	s.False(s.engine.LoanEligible())

	_, err = s.engine.RequestLoan()
	s.ErrorIs(err, ErrLoanNotEligible)
}

func (s *EngineTestSuite) TestDrawDice() {
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(6).Return(3),
		s.mockRoller.EXPECT().Roll(6).Return(3),
		s.mockRoller.EXPECT().Roll(6).Return(3),
	)

	s.Equal(models.Dice{3, 3, 3}, s.engine.DrawDice())
}

func (s *EngineTestSuite) TestRejectionCategories() {
	s.Equal(models.MessageInsufficientFunds, ErrInsufficientFunds.Category())
	s.Equal(models.MessageNoSideSelected, ErrNoSideSelected.Category())
	s.Equal(models.MessageQuickBetRejected, ErrQuickBetRejected.Category())
	s.Equal(models.MessageCategory(""), ErrRollInProgress.Category())
}
