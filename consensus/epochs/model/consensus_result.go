package model

import (
	"github.com/shuoer86/rollups-node/model/rollups"
)

// ConsensusResult is produced by the validator registry on every claim or
// dispute-resolution event. It is a sum type with exactly three variants:
// NoConflict, Consensus and Conflict. The epoch controller dispatches on it
// to decide the next phase; payload is only carried by the Conflict variant.
type ConsensusResult interface {
	isConsensusResult()
}

// NoConflict means the claim was recorded and agrees with the current claim,
// but not all active validators have claimed yet.
type NoConflict struct{}

// Consensus means all active validators agree on the current claim. The
// agreed hash is available through the registry's CurrentClaim accessor.
type Consensus struct{}

// Conflict carries the two conflicting claims and the identities of their
// claimants, in submission order: index 0 holds the pre-existing current
// claim and its first claimant, index 1 the newly submitted claim and its
// claimant.
type Conflict struct {
	Claims    [2]rollups.Claim
	Claimants [2]rollups.Identifier
}

func (NoConflict) isConsensusResult() {}
func (Consensus) isConsensusResult()  {}
func (Conflict) isConsensusResult()   {}
