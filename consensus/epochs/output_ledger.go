package epochs

import (
	"github.com/shuoer86/rollups-node/model/rollups"
)

// OutputLedger persists the finalized claim of each epoch and is the single
// source of truth for how many epochs are finalized.
type OutputLedger interface {
	// RecordFinalizedClaim durably stores the given claim for the next epoch
	// index and atomically increments the finalized epoch count. It returns
	// the new count. A previously recorded claim is never overwritten.
	RecordFinalizedClaim(claim rollups.Claim) (uint64, error)

	// FinalizedEpochCount returns the number of finalized epochs. Pure read.
	FinalizedEpochCount() (uint64, error)
}
