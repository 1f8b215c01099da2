package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/shuoer86/rollups-node/consensus/epochs/mocks"
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/consensus/epochs/validator"
	"github.com/shuoer86/rollups-node/ingest"
	"github.com/shuoer86/rollups-node/model/rollups"
	"github.com/shuoer86/rollups-node/utils/unittest"
)

const (
	inputDuration   = 10 * time.Second
	challengePeriod = 100 * time.Second
)

func TestEpochController(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

type ControllerSuite struct {
	suite.Suite

	clock      *clock.Mock
	inputs     *mocks.InputLedger
	outputs    *mocks.OutputLedger
	validators *mocks.ValidatorRegistry
	arbiter    *mocks.DisputeArbiter
	notifier   *mocks.Consumer

	config Config
	ctrl   *EpochController
}

func (s *ControllerSuite) SetupTest() {
	s.clock = clock.NewMock()
	s.clock.Set(time.Unix(1_000_000, 0))

	s.inputs = mocks.NewInputLedger(s.T())
	s.outputs = mocks.NewOutputLedger(s.T())
	s.validators = mocks.NewValidatorRegistry(s.T())
	s.arbiter = mocks.NewDisputeArbiter(s.T())
	s.notifier = mocks.NewConsumer(s.T())

	s.config = Config{
		InputDuration:    inputDuration,
		ChallengePeriod:  challengePeriod,
		InputLedgerID:    unittest.IdentifierFixture(),
		DisputeArbiterID: unittest.IdentifierFixture(),
	}

	s.notifier.On("OnControllerCreated", inputDuration, challengePeriod).Return().Once()

	var err error
	s.ctrl, err = New(
		zerolog.Nop(),
		s.clock,
		s.config,
		s.inputs,
		s.outputs,
		s.validators,
		s.arbiter,
		s.notifier,
	)
	require.NoError(s.T(), err)
}

// assertSealingSentinelInvariant checks that the sealing timestamp is the
// sentinel exactly while the controller accumulates inputs.
func (s *ControllerSuite) assertSealingSentinelInvariant() {
	if s.ctrl.Phase() == model.PhaseInputAccumulation {
		s.Assert().True(s.ctrl.SealingEpochTimestamp().Equal(model.TimestampNever),
			"sealing timestamp must be the sentinel during input accumulation")
	} else {
		s.Assert().False(s.ctrl.SealingEpochTimestamp().Equal(model.TimestampNever),
			"sealing timestamp must be set outside input accumulation")
	}
}

// enterAwaitingConsensus advances the clock past the accumulation window and
// submits a first claim that the registry reports as NoConflict.
func (s *ControllerSuite) enterAwaitingConsensus(claimer rollups.Identifier, claim rollups.Claim) {
	s.clock.Add(inputDuration + time.Second)
	s.inputs.On("OnEpochBoundary").Return().Once()
	s.validators.On("RecordClaim", claimer, claim).Return(model.NoConflict{}, nil).Once()
	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	s.notifier.On("OnPhaseChanged", model.PhaseAwaitingConsensus).Return().Once()
	s.notifier.On("OnClaimSubmitted", uint64(0), claimer, claim).Return().Once()

	err := s.ctrl.SubmitClaim(claimer, claim)
	require.NoError(s.T(), err)
	require.Equal(s.T(), model.PhaseAwaitingConsensus, s.ctrl.Phase())
}

func (s *ControllerSuite) TestInitialState() {
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
	s.assertSealingSentinelInvariant()

	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	epoch, err := s.ctrl.CurrentEpoch()
	s.Require().NoError(err)
	s.Assert().Equal(uint64(0), epoch)
}

// The accumulation boundary is strict: a claim submitted at exactly
// inputAccumulationStart+inputDuration must still see InputAccumulation.
func (s *ControllerSuite) TestSubmitClaimAtExactWindowEnd() {
	s.clock.Add(inputDuration)

	err := s.ctrl.SubmitClaim(unittest.IdentifierFixture(), unittest.ClaimFixture())
	s.Require().Error(err)
	s.Assert().True(model.IsWrongPhaseError(err))
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
	s.assertSealingSentinelInvariant()
}

func (s *ControllerSuite) TestSubmitClaimTriggersLazyTransition() {
	claimer := unittest.IdentifierFixture()
	claim := unittest.ClaimFixture()

	s.enterAwaitingConsensus(claimer, claim)

	s.Assert().Equal(s.clock.Now(), s.ctrl.SealingEpochTimestamp())
	s.assertSealingSentinelInvariant()
}

func (s *ControllerSuite) TestSubmitClaimDuringDisputeFails() {
	s.enterAwaitingDispute()

	err := s.ctrl.SubmitClaim(unittest.IdentifierFixture(), unittest.ClaimFixture())
	s.Require().Error(err)
	s.Assert().True(model.IsWrongPhaseError(err))
	s.Assert().Equal(model.PhaseAwaitingDispute, s.ctrl.Phase())
}

// Two validators agreeing on the same hash finalizes the epoch: the count
// increments by one and the agreed claim is recorded.
func (s *ControllerSuite) TestConsensusFinalizesEpoch() {
	claimerA := unittest.IdentifierFixture()
	claimerB := unittest.IdentifierFixture()
	claim := unittest.ClaimFixture()

	s.enterAwaitingConsensus(claimerA, claim)

	s.validators.On("RecordClaim", claimerB, claim).Return(model.Consensus{}, nil).Once()
	// the emitted count reflects state before finalization
	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	s.validators.On("CurrentClaim").Return(claim).Once()
	s.validators.On("ResetForNewEpoch").Return(claim).Once()
	s.outputs.On("RecordFinalizedClaim", claim).Return(uint64(1), nil).Once()
	s.inputs.On("OnEpochReset").Return().Once()
	s.notifier.On("OnClaimSubmitted", uint64(0), claimerB, claim).Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseInputAccumulation).Return().Once()
	s.notifier.On("OnEpochFinalized", uint64(0), claim).Return().Once()

	err := s.ctrl.SubmitClaim(claimerB, claim)
	s.Require().NoError(err)
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
	s.Assert().Equal(s.clock.Now(), s.ctrl.InputAccumulationStart())
	s.assertSealingSentinelInvariant()
}

// A conflicting claim escalates to the dispute arbiter with exactly the two
// claims and claimants reported by the registry.
func (s *ControllerSuite) TestConflictEscalatesToArbiter() {
	claimerA := unittest.IdentifierFixture()
	claimerB := unittest.IdentifierFixture()
	claimA := unittest.ClaimFixture()
	claimB := unittest.ClaimFixture()

	s.enterAwaitingConsensus(claimerA, claimA)

	conflict := model.Conflict{
		Claims:    [2]rollups.Claim{claimA, claimB},
		Claimants: [2]rollups.Identifier{claimerA, claimerB},
	}
	s.validators.On("RecordClaim", claimerB, claimB).Return(conflict, nil).Once()
	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	s.arbiter.On("BeginDispute", conflict).Return(nil).Once()
	s.notifier.On("OnClaimSubmitted", uint64(0), claimerB, claimB).Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseAwaitingDispute).Return().Once()

	err := s.ctrl.SubmitClaim(claimerB, claimB)
	s.Require().NoError(err)
	s.Assert().Equal(model.PhaseAwaitingDispute, s.ctrl.Phase())
	s.assertSealingSentinelInvariant()
}

// enterAwaitingDispute drives the controller into a pending dispute.
func (s *ControllerSuite) enterAwaitingDispute() (claimerA, claimerB rollups.Identifier, claimA, claimB rollups.Claim) {
	claimerA = unittest.IdentifierFixture()
	claimerB = unittest.IdentifierFixture()
	claimA = unittest.ClaimFixture()
	claimB = unittest.ClaimFixture()

	s.enterAwaitingConsensus(claimerA, claimA)

	conflict := model.Conflict{
		Claims:    [2]rollups.Claim{claimA, claimB},
		Claimants: [2]rollups.Identifier{claimerA, claimerB},
	}
	s.validators.On("RecordClaim", claimerB, claimB).Return(conflict, nil).Once()
	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	s.arbiter.On("BeginDispute", conflict).Return(nil).Once()
	s.notifier.On("OnClaimSubmitted", uint64(0), claimerB, claimB).Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseAwaitingDispute).Return().Once()

	err := s.ctrl.SubmitClaim(claimerB, claimB)
	require.NoError(s.T(), err)
	require.Equal(s.T(), model.PhaseAwaitingDispute, s.ctrl.Phase())
	return
}

func (s *ControllerSuite) TestResolveDisputeUnauthorized() {
	s.enterAwaitingDispute()

	err := s.ctrl.ResolveDispute(
		unittest.IdentifierFixture(),
		unittest.IdentifierFixture(),
		unittest.IdentifierFixture(),
		unittest.ClaimFixture(),
	)
	s.Require().Error(err)
	s.Assert().True(model.IsUnauthorizedError(err))
	s.Assert().Equal(model.PhaseAwaitingDispute, s.ctrl.Phase())
}

// A dispute resolving to NoConflict reopens the claim window and restarts
// the challenge clock.
func (s *ControllerSuite) TestResolveDisputeNoConflict() {
	claimerA, claimerB, claimA, _ := s.enterAwaitingDispute()

	s.clock.Add(time.Minute)
	s.validators.On("RecordDisputeOutcome", claimerA, claimerB, claimA).
		Return(model.NoConflict{}, nil).Once()
	s.notifier.On("OnDisputeResolved", claimerA, claimerB, claimA).Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseAwaitingConsensus).Return().Once()

	err := s.ctrl.ResolveDispute(s.config.DisputeArbiterID, claimerA, claimerB, claimA)
	s.Require().NoError(err)
	s.Assert().Equal(model.PhaseAwaitingConsensus, s.ctrl.Phase())
	s.Assert().Equal(s.clock.Now(), s.ctrl.SealingEpochTimestamp())
	s.assertSealingSentinelInvariant()
}

// A dispute resolving to Consensus finalizes the epoch directly.
func (s *ControllerSuite) TestResolveDisputeConsensus() {
	claimerA, claimerB, claimA, _ := s.enterAwaitingDispute()

	s.validators.On("RecordDisputeOutcome", claimerA, claimerB, claimA).
		Return(model.Consensus{}, nil).Once()
	s.validators.On("CurrentClaim").Return(claimA).Once()
	s.validators.On("ResetForNewEpoch").Return(claimA).Once()
	s.outputs.On("RecordFinalizedClaim", claimA).Return(uint64(1), nil).Once()
	s.inputs.On("OnEpochReset").Return().Once()
	s.notifier.On("OnDisputeResolved", claimerA, claimerB, claimA).Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseInputAccumulation).Return().Once()
	s.notifier.On("OnEpochFinalized", uint64(0), claimA).Return().Once()

	err := s.ctrl.ResolveDispute(s.config.DisputeArbiterID, claimerA, claimerB, claimA)
	s.Require().NoError(err)
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
	s.assertSealingSentinelInvariant()
}

func (s *ControllerSuite) TestFinalizeEpochWrongPhase() {
	err := s.ctrl.FinalizeEpoch(unittest.IdentifierFixture())
	s.Require().Error(err)
	s.Assert().True(model.IsWrongPhaseError(err))
}

// The challenge boundary is strict: finalization at exactly
// sealingEpochTimestamp+challengePeriod fails, one tick later it succeeds.
func (s *ControllerSuite) TestFinalizeEpochChallengeBoundary() {
	claimer := unittest.IdentifierFixture()
	claim := unittest.ClaimFixture()
	s.enterAwaitingConsensus(claimer, claim)

	s.clock.Add(challengePeriod)
	err := s.ctrl.FinalizeEpoch(unittest.IdentifierFixture())
	s.Require().Error(err)
	s.Assert().True(model.IsChallengePeriodActiveError(err))
	s.Assert().Equal(model.PhaseAwaitingConsensus, s.ctrl.Phase())

	s.clock.Add(time.Nanosecond)
	// once for the pending-claim check, once for the recorded claim
	s.validators.On("CurrentClaim").Return(claim).Twice()
	s.validators.On("ResetForNewEpoch").Return(claim).Once()
	s.outputs.On("RecordFinalizedClaim", claim).Return(uint64(1), nil).Once()
	s.inputs.On("OnEpochReset").Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseInputAccumulation).Return().Once()
	s.notifier.On("OnEpochFinalized", uint64(0), claim).Return().Once()

	err = s.ctrl.FinalizeEpoch(unittest.IdentifierFixture())
	s.Require().NoError(err)
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
	s.assertSealingSentinelInvariant()
}

func (s *ControllerSuite) TestFinalizeEpochWithoutClaim() {
	claimer := unittest.IdentifierFixture()
	claim := unittest.ClaimFixture()
	s.enterAwaitingConsensus(claimer, claim)

	s.clock.Add(challengePeriod + time.Second)
	s.validators.On("CurrentClaim").Return(rollups.EmptyClaim).Once()

	err := s.ctrl.FinalizeEpoch(unittest.IdentifierFixture())
	s.Require().Error(err)
	s.Assert().ErrorIs(err, model.ErrNoClaimToFinalize)
	s.Assert().Equal(model.PhaseAwaitingConsensus, s.ctrl.Phase())
}

func (s *ControllerSuite) TestNotifyNewInputUnauthorized() {
	_, err := s.ctrl.NotifyNewInput(unittest.IdentifierFixture())
	s.Require().Error(err)
	s.Assert().True(model.IsUnauthorizedError(err))
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
}

// Repeated input notifications before the window elapses never change phase
// and always report no transition.
func (s *ControllerSuite) TestNotifyNewInputIdempotentBeforeWindow() {
	for i := 0; i < 5; i++ {
		s.clock.Add(time.Second)
		transitioned, err := s.ctrl.NotifyNewInput(s.config.InputLedgerID)
		s.Require().NoError(err)
		s.Assert().False(transitioned)
		s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
		s.assertSealingSentinelInvariant()
	}
}

func (s *ControllerSuite) TestNotifyNewInputTriggersTransition() {
	s.clock.Add(inputDuration + time.Second)
	s.inputs.On("OnEpochBoundary").Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseAwaitingConsensus).Return().Once()

	transitioned, err := s.ctrl.NotifyNewInput(s.config.InputLedgerID)
	s.Require().NoError(err)
	s.Assert().True(transitioned)
	s.Assert().Equal(model.PhaseAwaitingConsensus, s.ctrl.Phase())

	// a second notification is a no-op and reports no transition
	transitioned, err = s.ctrl.NotifyNewInput(s.config.InputLedgerID)
	s.Require().NoError(err)
	s.Assert().False(transitioned)
}

// A failing claim aborts the whole operation: the lazy phase transition is
// rolled back, the input ledger is never told to seal its box and no
// notification is emitted.
func (s *ControllerSuite) TestSubmitClaimRollsBackOnRegistryError() {
	claimer := unittest.IdentifierFixture()
	claim := unittest.ClaimFixture()

	s.clock.Add(inputDuration + time.Second)
	s.validators.On("RecordClaim", claimer, claim).
		Return(nil, model.NewUnauthorizedErrorf(claimer, "active validator")).Once()

	err := s.ctrl.SubmitClaim(claimer, claim)
	s.Require().Error(err)
	s.Assert().True(model.IsUnauthorizedError(err))
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
	s.assertSealingSentinelInvariant()
	s.inputs.AssertNotCalled(s.T(), "OnEpochBoundary")
	s.notifier.AssertNotCalled(s.T(), "OnPhaseChanged", mock.Anything)
	s.notifier.AssertNotCalled(s.T(), "OnClaimSubmitted", mock.Anything, mock.Anything, mock.Anything)
}

// A failing output ledger write aborts finalization entirely: the registry
// is not reset and the sealed inputs are not drained.
func (s *ControllerSuite) TestFinalizeRollsBackOnStorageError() {
	claimer := unittest.IdentifierFixture()
	claim := unittest.ClaimFixture()
	s.enterAwaitingConsensus(claimer, claim)
	sealedAt := s.ctrl.SealingEpochTimestamp()

	s.clock.Add(challengePeriod + time.Second)
	s.validators.On("CurrentClaim").Return(claim).Twice()
	s.outputs.On("RecordFinalizedClaim", claim).
		Return(uint64(0), errors.New("disk full")).Once()

	err := s.ctrl.FinalizeEpoch(unittest.IdentifierFixture())
	s.Require().Error(err)
	s.Assert().Equal(model.PhaseAwaitingConsensus, s.ctrl.Phase())
	s.Assert().Equal(sealedAt, s.ctrl.SealingEpochTimestamp())
	s.assertSealingSentinelInvariant()
	s.validators.AssertNotCalled(s.T(), "ResetForNewEpoch")
	s.inputs.AssertNotCalled(s.T(), "OnEpochReset")
	s.notifier.AssertNotCalled(s.T(), "OnEpochFinalized", mock.Anything, mock.Anything)
}

// A claim that fails after triggering the lazy transition must leave a real
// input ledger untouched: the sealed box stays empty and the accumulated
// inputs survive until a later successful boundary crossing seals them.
func (s *ControllerSuite) TestFailedClaimPreservesAccumulatedInputs() {
	ledger := ingest.NewLedger(zerolog.Nop(), s.clock, s.config.InputLedgerID)
	s.notifier = mocks.NewConsumer(s.T())
	s.notifier.On("OnControllerCreated", inputDuration, challengePeriod).Return().Once()
	var err error
	s.ctrl, err = New(
		zerolog.Nop(),
		s.clock,
		s.config,
		ledger,
		s.outputs,
		s.validators,
		s.arbiter,
		s.notifier,
	)
	require.NoError(s.T(), err)
	ledger.Bind(s.ctrl)

	_, err = ledger.AddInput(unittest.IdentifierFixture(), []byte("first epoch input"))
	s.Require().NoError(err)

	s.clock.Add(inputDuration + time.Second)
	claimer := unittest.IdentifierFixture()
	claim := unittest.ClaimFixture()
	s.validators.On("RecordClaim", claimer, claim).
		Return(nil, model.NewUnauthorizedErrorf(claimer, "active validator")).Once()

	err = s.ctrl.SubmitClaim(claimer, claim)
	s.Require().Error(err)
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
	s.Assert().Empty(ledger.SealedInputs())
	s.Assert().Equal(uint64(1), ledger.EpochInputCount())

	// the next valid claim crosses the boundary and seals exactly the
	// accumulated input
	s.validators.On("RecordClaim", claimer, claim).Return(model.NoConflict{}, nil).Once()
	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	s.notifier.On("OnPhaseChanged", model.PhaseAwaitingConsensus).Return().Once()
	s.notifier.On("OnClaimSubmitted", uint64(0), claimer, claim).Return().Once()
	s.Require().NoError(s.ctrl.SubmitClaim(claimer, claim))

	sealed := ledger.SealedInputs()
	s.Require().Len(sealed, 1)
	s.Assert().Equal([]byte("first epoch input"), sealed[0].Payload)
}

// A failed storage write must leave a real registry's sealed claim in place,
// so finalization succeeds on retry without any validator re-claiming.
func (s *ControllerSuite) TestFailedFinalizationKeepsClaimRetriable() {
	validators := unittest.IdentifierListFixture(2)
	registry, err := validator.NewRegistry(zerolog.Nop(), validators)
	require.NoError(s.T(), err)
	s.notifier = mocks.NewConsumer(s.T())
	s.notifier.On("OnControllerCreated", inputDuration, challengePeriod).Return().Once()
	s.ctrl, err = New(
		zerolog.Nop(),
		s.clock,
		s.config,
		s.inputs,
		s.outputs,
		registry,
		s.arbiter,
		s.notifier,
	)
	require.NoError(s.T(), err)

	claim := unittest.ClaimFixture()
	s.clock.Add(inputDuration + time.Second)
	s.inputs.On("OnEpochBoundary").Return().Once()
	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	s.notifier.On("OnPhaseChanged", model.PhaseAwaitingConsensus).Return().Once()
	s.notifier.On("OnClaimSubmitted", uint64(0), validators[0], claim).Return().Once()
	s.Require().NoError(s.ctrl.SubmitClaim(validators[0], claim))

	s.clock.Add(challengePeriod + time.Second)
	s.outputs.On("RecordFinalizedClaim", claim).
		Return(uint64(0), errors.New("disk full")).Once()

	err = s.ctrl.FinalizeEpoch(unittest.IdentifierFixture())
	s.Require().Error(err)
	s.Assert().Equal(model.PhaseAwaitingConsensus, s.ctrl.Phase())
	s.Assert().Equal(claim, registry.CurrentClaim())

	// the retry runs against the unchanged pre-state and succeeds
	s.outputs.On("RecordFinalizedClaim", claim).Return(uint64(1), nil).Once()
	s.inputs.On("OnEpochReset").Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseInputAccumulation).Return().Once()
	s.notifier.On("OnEpochFinalized", uint64(0), claim).Return().Once()
	s.Require().NoError(s.ctrl.FinalizeEpoch(unittest.IdentifierFixture()))
	s.Assert().Equal(model.PhaseInputAccumulation, s.ctrl.Phase())
	s.Assert().True(registry.CurrentClaim().IsEmpty())
}

// CurrentEpoch is the finalized count during accumulation and one more while
// a claim is pending; it never decreases across successful operations.
func (s *ControllerSuite) TestCurrentEpochDerivation() {
	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	epoch, err := s.ctrl.CurrentEpoch()
	s.Require().NoError(err)
	s.Assert().Equal(uint64(0), epoch)

	claimer := unittest.IdentifierFixture()
	claim := unittest.ClaimFixture()
	s.enterAwaitingConsensus(claimer, claim)

	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	epoch, err = s.ctrl.CurrentEpoch()
	s.Require().NoError(err)
	s.Assert().Equal(uint64(1), epoch)

	claimerB := unittest.IdentifierFixture()
	s.validators.On("RecordClaim", claimerB, claim).Return(model.Consensus{}, nil).Once()
	s.outputs.On("FinalizedEpochCount").Return(uint64(0), nil).Once()
	s.validators.On("CurrentClaim").Return(claim).Once()
	s.validators.On("ResetForNewEpoch").Return(claim).Once()
	s.outputs.On("RecordFinalizedClaim", claim).Return(uint64(1), nil).Once()
	s.inputs.On("OnEpochReset").Return().Once()
	s.notifier.On("OnClaimSubmitted", uint64(0), claimerB, claim).Return().Once()
	s.notifier.On("OnPhaseChanged", model.PhaseInputAccumulation).Return().Once()
	s.notifier.On("OnEpochFinalized", uint64(0), claim).Return().Once()
	s.Require().NoError(s.ctrl.SubmitClaim(claimerB, claim))

	s.outputs.On("FinalizedEpochCount").Return(uint64(1), nil).Once()
	epoch, err = s.ctrl.CurrentEpoch()
	s.Require().NoError(err)
	s.Assert().Equal(uint64(1), epoch)
}

func TestConfigValidation(t *testing.T) {
	clk := clock.NewMock()
	notifier := mocks.NewConsumer(t)

	_, err := New(zerolog.Nop(), clk, Config{
		InputDuration:   0,
		ChallengePeriod: challengePeriod,
	}, nil, nil, nil, nil, notifier)
	require.Error(t, err)
	require.True(t, model.IsConfigurationError(err))

	_, err = New(zerolog.Nop(), clk, Config{
		InputDuration:   inputDuration,
		ChallengePeriod: -time.Second,
	}, nil, nil, nil, nil, notifier)
	require.Error(t, err)
	require.True(t, model.IsConfigurationError(err))
}
