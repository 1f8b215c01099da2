package epochs

import (
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

// ValidatorRegistry records per-validator claims for the sealing epoch,
// determines agreement or conflict, and mutates validator state across
// epochs (a validator that loses a dispute is deactivated). Each recording
// call is atomic: on error the registry state is unchanged.
type ValidatorRegistry interface {
	// RecordClaim records a claim by the given validator and reports the
	// resulting consensus state.
	// Error returns:
	//  * model.UnauthorizedError if the caller is not an active validator
	//  * model.ErrEmptyClaim if the claim is the empty hash
	//  * model.DuplicateClaimError if the validator already claimed this epoch
	RecordClaim(caller rollups.Identifier, claim rollups.Claim) (model.ConsensusResult, error)

	// RecordDisputeOutcome applies a dispute outcome: the loser is
	// deactivated and the winning claim becomes the current claim. It
	// reports the resulting consensus state, which for this registry is
	// never another Conflict.
	RecordDisputeOutcome(winner, loser rollups.Identifier, winningClaim rollups.Claim) (model.ConsensusResult, error)

	// ResetForNewEpoch clears the per-epoch claim bookkeeping and returns
	// the final agreed claim of the epoch that just concluded.
	ResetForNewEpoch() rollups.Claim

	// CurrentClaim returns the claim currently agreed upon, or the empty
	// claim if no validator has claimed yet. Pure read.
	CurrentClaim() rollups.Claim
}
