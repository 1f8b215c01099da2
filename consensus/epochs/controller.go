package epochs

import (
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

// EpochController coordinates how the authorized validator set agrees on the
// canonical result of each processing epoch. It owns the current phase and
// epoch timing, aggregates claims through the validator registry, escalates
// conflicts to the dispute arbiter and drives epoch finalization.
//
// The controller is strictly serial: the caller must invoke one operation at
// a time and let it run to completion, including every nested collaborator
// call. Every mutating operation is all-or-nothing: if any nested call
// fails, the controller's state is left exactly as it was before the call
// and no notification is emitted.
type EpochController interface {
	// SubmitClaim records the caller's claim for the sealing epoch. If the
	// input accumulation window has elapsed, the controller first lazily
	// transitions to AwaitingConsensus. The resulting consensus state is
	// dispatched internally: unanimous agreement finalizes the epoch, a
	// conflicting claim escalates to the dispute arbiter.
	// Error returns:
	//  * model.WrongPhaseError if no claim can be accepted in the current phase
	//  * validation errors from the validator registry (unauthorized
	//    claimant, model.ErrEmptyClaim, duplicate claim), propagated verbatim
	SubmitClaim(caller rollups.Identifier, epochHash rollups.Claim) error

	// FinalizeEpoch finalizes the sealing epoch after the challenge period
	// has elapsed without consensus being reached by unanimity. Callable by
	// anyone.
	// Error returns:
	//  * model.WrongPhaseError if the phase is not AwaitingConsensus
	//  * model.ChallengePeriodActiveError if the challenge window is still open
	//  * model.ErrNoClaimToFinalize if the registry holds no pending claim
	FinalizeEpoch(caller rollups.Identifier) error

	// NotifyNewInput performs the lazy epoch boundary check on behalf of the
	// input ledger, which calls it before recording an input. It returns
	// whether a phase transition occurred, so the ledger can decide whether
	// the input belongs to the new or the old epoch.
	// Error returns:
	//  * model.UnauthorizedError if the caller is not the designated input ledger
	NotifyNewInput(caller rollups.Identifier) (bool, error)

	// ResolveDispute reports the outcome of a dispute back to the
	// controller. It restarts the challenge clock and dispatches the
	// registry's resulting consensus state like a regular claim would.
	// Error returns:
	//  * model.UnauthorizedError if the caller is not the designated dispute arbiter
	//  * validation errors from the validator registry, propagated verbatim
	ResolveDispute(caller, winner, loser rollups.Identifier, winningClaim rollups.Claim) error

	// CurrentEpoch derives the index of the epoch currently accumulating
	// inputs: the finalized epoch count during InputAccumulation, one more
	// otherwise, since two logical epochs are in flight while a claim is
	// pending. No side effects.
	CurrentEpoch() (uint64, error)

	// Phase returns the controller's current phase. No side effects.
	Phase() model.Phase
}
