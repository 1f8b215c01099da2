package rollups

import (
	"time"
)

// FinalizedEpoch is the durable record written for each finalized epoch:
// the claim the validators agreed on and the time the epoch was finalized.
// Records are keyed by their epoch index and are never overwritten.
type FinalizedEpoch struct {
	Claim       Claim
	FinalizedAt time.Time
}
