// Package controller implements the epoch consensus controller: the phase
// state machine that aggregates validator claims, detects agreement or
// conflict, arbitrates disagreement through the dispute arbiter and gates
// epoch advancement behind the input accumulation and challenge windows.
package controller

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

// Config holds the immutable parameters of the epoch controller.
type Config struct {
	// InputDuration is how long input accumulation lasts before a claim can
	// be made.
	InputDuration time.Duration
	// ChallengePeriod is how long a sealed claim may be challenged before it
	// can be finalized.
	ChallengePeriod time.Duration
	// InputLedgerID is the identity token of the designated input ledger;
	// NotifyNewInput is restricted to it.
	InputLedgerID rollups.Identifier
	// DisputeArbiterID is the identity token of the designated dispute
	// arbiter; ResolveDispute is restricted to it.
	DisputeArbiterID rollups.Identifier
}

// EpochController implements epochs.EpochController. It exposes API to
// handle one operation at a time synchronously; the caller is responsible
// for serializing invocations.
//
// All-or-nothing semantics: every mutating operation snapshots the
// controller's own mutable state on entry and restores it if any nested
// collaborator call fails. Consumer notifications and the infallible input
// ledger callbacks are buffered during the operation and flushed only on
// success, so an aborted operation is observable neither through the
// notifier nor through the ledger.
type EpochController struct {
	log    zerolog.Logger
	clock  clock.Clock
	config Config

	inputs     epochs.InputLedger
	outputs    epochs.OutputLedger
	validators epochs.ValidatorRegistry
	arbiter    epochs.DisputeArbiter
	notifier   epochs.Consumer

	phase                  model.Phase
	inputAccumulationStart time.Time
	sealingEpochTimestamp  time.Time

	pending []func()
}

var _ epochs.EpochController = (*EpochController)(nil)

// New creates an EpochController in InputAccumulation, with the
// accumulation window starting now and no claim pending. It emits the
// OnControllerCreated notification.
func New(
	log zerolog.Logger,
	clk clock.Clock,
	config Config,
	inputs epochs.InputLedger,
	outputs epochs.OutputLedger,
	validators epochs.ValidatorRegistry,
	arbiter epochs.DisputeArbiter,
	notifier epochs.Consumer,
) (*EpochController, error) {
	if config.InputDuration <= 0 {
		return nil, model.NewConfigurationErrorf("input duration must be positive, got %s", config.InputDuration)
	}
	if config.ChallengePeriod <= 0 {
		return nil, model.NewConfigurationErrorf("challenge period must be positive, got %s", config.ChallengePeriod)
	}
	c := &EpochController{
		log:                    log.With().Str("component", "epoch_controller").Logger(),
		clock:                  clk,
		config:                 config,
		inputs:                 inputs,
		outputs:                outputs,
		validators:             validators,
		arbiter:                arbiter,
		notifier:               notifier,
		phase:                  model.PhaseInputAccumulation,
		inputAccumulationStart: clk.Now(),
		sealingEpochTimestamp:  model.TimestampNever,
	}
	notifier.OnControllerCreated(config.InputDuration, config.ChallengePeriod)
	return c, nil
}

// SubmitClaim implements epochs.EpochController.
func (c *EpochController) SubmitClaim(caller rollups.Identifier, epochHash rollups.Claim) error {
	snap := c.takeSnapshot()
	err := c.submitClaim(caller, epochHash)
	if err != nil {
		c.abort(snap)
		return err
	}
	c.commit()
	return nil
}

func (c *EpochController) submitClaim(caller rollups.Identifier, epochHash rollups.Claim) error {
	c.checkEpochBoundary()
	if c.phase != model.PhaseAwaitingConsensus {
		return model.WrongPhaseError{Required: model.PhaseAwaitingConsensus, Actual: c.phase}
	}

	result, err := c.validators.RecordClaim(caller, epochHash)
	if err != nil {
		return fmt.Errorf("could not record claim: %w", err)
	}

	// the emitted count must reflect state before any finalization this
	// claim may trigger
	finalized, err := c.outputs.FinalizedEpochCount()
	if err != nil {
		return fmt.Errorf("could not read finalized epoch count: %w", err)
	}
	c.enqueue(func() {
		c.notifier.OnClaimSubmitted(finalized, caller, epochHash)
	})

	c.log.Debug().
		Hex("claimer", caller[:]).
		Hex("claim", epochHash[:]).
		Uint64("finalized_epochs", finalized).
		Msg("claim recorded")

	return c.resolveConsensusResult(result)
}

// FinalizeEpoch implements epochs.EpochController.
func (c *EpochController) FinalizeEpoch(caller rollups.Identifier) error {
	snap := c.takeSnapshot()
	err := c.finalizeEpoch(caller)
	if err != nil {
		c.abort(snap)
		return err
	}
	c.commit()
	return nil
}

func (c *EpochController) finalizeEpoch(caller rollups.Identifier) error {
	if c.phase != model.PhaseAwaitingConsensus {
		return model.WrongPhaseError{Required: model.PhaseAwaitingConsensus, Actual: c.phase}
	}
	if !c.clock.Now().After(c.sealingEpochTimestamp.Add(c.config.ChallengePeriod)) {
		return model.ChallengePeriodActiveError{
			SealedAt:        c.sealingEpochTimestamp,
			ChallengePeriod: c.config.ChallengePeriod,
		}
	}
	if c.validators.CurrentClaim().IsEmpty() {
		return model.ErrNoClaimToFinalize
	}

	c.log.Debug().
		Hex("caller", caller[:]).
		Msg("finalizing epoch after challenge period")

	c.setPhase(model.PhaseInputAccumulation)
	return c.startNewEpoch()
}

// NotifyNewInput implements epochs.EpochController.
func (c *EpochController) NotifyNewInput(caller rollups.Identifier) (bool, error) {
	if caller != c.config.InputLedgerID {
		return false, model.NewUnauthorizedErrorf(caller, "designated input ledger")
	}
	// once authorization passed the boundary check cannot fail
	transitioned := c.checkEpochBoundary()
	c.commit()
	return transitioned, nil
}

// ResolveDispute implements epochs.EpochController.
func (c *EpochController) ResolveDispute(caller, winner, loser rollups.Identifier, winningClaim rollups.Claim) error {
	snap := c.takeSnapshot()
	err := c.resolveDispute(caller, winner, loser, winningClaim)
	if err != nil {
		c.abort(snap)
		return err
	}
	c.commit()
	return nil
}

func (c *EpochController) resolveDispute(caller, winner, loser rollups.Identifier, winningClaim rollups.Claim) error {
	if caller != c.config.DisputeArbiterID {
		return model.NewUnauthorizedErrorf(caller, "designated dispute arbiter")
	}

	result, err := c.validators.RecordDisputeOutcome(winner, loser, winningClaim)
	if err != nil {
		return fmt.Errorf("could not record dispute outcome: %w", err)
	}

	// the challenge clock restarts when a dispute concludes
	c.sealingEpochTimestamp = c.clock.Now()
	c.enqueue(func() {
		c.notifier.OnDisputeResolved(winner, loser, winningClaim)
	})

	c.log.Debug().
		Hex("winner", winner[:]).
		Hex("loser", loser[:]).
		Hex("winning_claim", winningClaim[:]).
		Msg("dispute outcome recorded")

	return c.resolveConsensusResult(result)
}

// CurrentEpoch implements epochs.EpochController.
func (c *EpochController) CurrentEpoch() (uint64, error) {
	finalized, err := c.outputs.FinalizedEpochCount()
	if err != nil {
		return 0, fmt.Errorf("could not read finalized epoch count: %w", err)
	}
	if c.phase == model.PhaseInputAccumulation {
		return finalized, nil
	}
	// while a claim is pending there are two epochs in flight: the last
	// finalized one and the one being agreed upon
	return finalized + 1, nil
}

// Phase implements epochs.EpochController.
func (c *EpochController) Phase() model.Phase {
	return c.phase
}

// InputAccumulationStart returns when the current accumulation window began.
func (c *EpochController) InputAccumulationStart() time.Time {
	return c.inputAccumulationStart
}

// SealingEpochTimestamp returns when the pending claim became challengeable,
// or model.TimestampNever while no claim is pending.
func (c *EpochController) SealingEpochTimestamp() time.Time {
	return c.sealingEpochTimestamp
}

// checkEpochBoundary lazily transitions from InputAccumulation to
// AwaitingConsensus once the accumulation window has elapsed. The boundary
// is strict: a call at exactly inputAccumulationStart+InputDuration does not
// transition. Returns whether a transition occurred.
func (c *EpochController) checkEpochBoundary() bool {
	if c.phase != model.PhaseInputAccumulation {
		return false
	}
	now := c.clock.Now()
	if !now.After(c.inputAccumulationStart.Add(c.config.InputDuration)) {
		return false
	}

	c.setPhase(model.PhaseAwaitingConsensus)
	// sealing the input box is deferred to commit: an aborted operation must
	// not leave the ledger ahead of the restored phase
	c.enqueue(c.inputs.OnEpochBoundary)
	c.sealingEpochTimestamp = now

	c.log.Debug().
		Time("sealing_epoch_timestamp", now).
		Msg("input accumulation window elapsed, awaiting consensus")

	return true
}

// resolveConsensusResult dispatches the consensus state reported by the
// validator registry. A Conflict outcome of a dispute would re-escalate;
// the registry contract makes that unreachable but the dispatch stays
// generic.
func (c *EpochController) resolveConsensusResult(result model.ConsensusResult) error {
	switch r := result.(type) {
	case model.NoConflict:
		c.setPhase(model.PhaseAwaitingConsensus)
		return nil
	case model.Consensus:
		c.setPhase(model.PhaseInputAccumulation)
		return c.startNewEpoch()
	case model.Conflict:
		c.setPhase(model.PhaseAwaitingDispute)
		err := c.arbiter.BeginDispute(r)
		if err != nil {
			return fmt.Errorf("could not begin dispute: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown consensus result type %T", result)
	}
}

// startNewEpoch runs whenever consensus concludes, by agreement, timeout or
// dispute: it restarts the accumulation window, clears the challenge clock,
// records the agreed claim and resets the per-epoch collaborator state.
func (c *EpochController) startNewEpoch() error {
	now := c.clock.Now()
	c.inputAccumulationStart = now
	c.sealingEpochTimestamp = model.TimestampNever

	// the durable write precedes the registry reset: a failed write must
	// leave the sealed claim in place so finalization can be retried
	finalClaim := c.validators.CurrentClaim()
	count, err := c.outputs.RecordFinalizedClaim(finalClaim)
	if err != nil {
		return fmt.Errorf("could not record finalized claim: %w", err)
	}
	c.validators.ResetForNewEpoch()
	c.enqueue(c.inputs.OnEpochReset)

	// the output ledger already incremented the count, so the epoch that
	// just finalized has index count-1
	epochIndex := count - 1
	c.enqueue(func() {
		c.notifier.OnEpochFinalized(epochIndex, finalClaim)
	})

	c.log.Debug().
		Uint64("epoch_index", epochIndex).
		Hex("claim", finalClaim[:]).
		Msg("epoch finalized")

	return nil
}

// setPhase updates the phase and queues a PhaseChanged notification, but
// only if the new phase differs from the current one.
func (c *EpochController) setPhase(newPhase model.Phase) {
	if c.phase == newPhase {
		return
	}
	c.phase = newPhase
	c.enqueue(func() {
		c.notifier.OnPhaseChanged(newPhase)
	})
}

// snapshot captures the controller's own mutable state.
type snapshot struct {
	phase                  model.Phase
	inputAccumulationStart time.Time
	sealingEpochTimestamp  time.Time
}

func (c *EpochController) takeSnapshot() snapshot {
	return snapshot{
		phase:                  c.phase,
		inputAccumulationStart: c.inputAccumulationStart,
		sealingEpochTimestamp:  c.sealingEpochTimestamp,
	}
}

// abort restores the snapshot and drops the queued effects.
func (c *EpochController) abort(snap snapshot) {
	c.phase = snap.phase
	c.inputAccumulationStart = snap.inputAccumulationStart
	c.sealingEpochTimestamp = snap.sealingEpochTimestamp
	c.pending = c.pending[:0]
}

// commit flushes the queued effects in emission order.
func (c *EpochController) commit() {
	for _, emit := range c.pending {
		emit()
	}
	c.pending = c.pending[:0]
}

func (c *EpochController) enqueue(emit func()) {
	c.pending = append(c.pending, emit)
}
