package storage

import (
	"github.com/shuoer86/rollups-node/model/rollups"
)

// Claims represents persistent storage for finalized epoch claims. It is
// the output ledger of the rollup: the claim recorded for an epoch is never
// overwritten and the finalized epoch count only ever grows.
type Claims interface {
	// RecordFinalizedClaim stores the claim for the next epoch index and
	// atomically increments the finalized epoch count, returning the new
	// count. Expected errors during normal operation: none.
	RecordFinalizedClaim(claim rollups.Claim) (uint64, error)

	// FinalizedEpochCount returns the number of finalized epochs.
	FinalizedEpochCount() (uint64, error)

	// ByEpoch retrieves the finalization record of the given epoch index.
	// Returns storage.ErrNotFound if no such epoch is finalized.
	ByEpoch(index uint64) (*rollups.FinalizedEpoch, error)
}
