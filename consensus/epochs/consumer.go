package epochs

import (
	"time"

	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

// Consumer consumes notifications emitted by the epoch controller.
// Notifications are emitted only after the triggering operation succeeded;
// an aborted operation emits nothing. Implementations must be non-blocking
// and must not call back into the controller.
type Consumer interface {
	// OnControllerCreated is emitted exactly once, when the controller is
	// constructed with the given immutable epoch timing.
	OnControllerCreated(inputDuration, challengePeriod time.Duration)

	// OnPhaseChanged is emitted when the controller's phase changes. It is
	// only emitted when the new phase differs from the phase held
	// immediately before the transition.
	OnPhaseChanged(newPhase model.Phase)

	// OnClaimSubmitted is emitted when a claim was recorded. The reported
	// count is the finalized epoch count read before any finalization the
	// claim may have triggered.
	OnClaimSubmitted(finalizedEpochs uint64, claimer rollups.Identifier, claim rollups.Claim)

	// OnDisputeResolved is emitted when a dispute outcome was applied.
	OnDisputeResolved(winner, loser rollups.Identifier, winningClaim rollups.Claim)

	// OnEpochFinalized is emitted when an epoch finalized, carrying the
	// index of the epoch that was just finalized and its agreed claim.
	OnEpochFinalized(epochIndex uint64, claim rollups.Claim)
}
