package epochs

import (
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
)

// DisputeArbiter runs the dispute procedure for two conflicting claims.
// From the controller's perspective BeginDispute is fire-and-forget: the
// arbiter adjudicates asynchronously and eventually reports the outcome by
// calling EpochController.ResolveDispute with its own identity token.
type DisputeArbiter interface {
	// BeginDispute starts adjudication of the given conflict. An error is
	// only returned if the dispute cannot be opened at all; it aborts the
	// triggering operation.
	BeginDispute(conflict model.Conflict) error
}
