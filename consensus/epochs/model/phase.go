package model

import (
	"time"
)

// Phase is the epoch controller's primary state variable. Exactly one phase
// is current at any time and transitions strictly follow the epoch state
// machine:
//   - InputAccumulation -> AwaitingConsensus: lazily, on the first claim or
//     input notification after the accumulation window elapses.
//   - AwaitingConsensus -> InputAccumulation: on unanimous agreement or on
//     timeout finalization.
//   - AwaitingConsensus -> AwaitingDispute: on a conflicting claim.
//   - AwaitingDispute -> AwaitingConsensus: on a dispute resolving to
//     NoConflict.
//   - AwaitingDispute -> InputAccumulation: on a dispute resolving to
//     Consensus.
type Phase int

const (
	// PhaseInputAccumulation is the initial phase; inputs are collected and
	// no claim is accepted yet.
	PhaseInputAccumulation Phase = iota
	// PhaseAwaitingConsensus means a claim window is open: validators submit
	// claims for the epoch that just closed.
	PhaseAwaitingConsensus
	// PhaseAwaitingDispute means two validators disagreed and the dispute
	// arbiter is adjudicating.
	PhaseAwaitingDispute
)

func (p Phase) String() string {
	switch p {
	case PhaseInputAccumulation:
		return "InputAccumulation"
	case PhaseAwaitingConsensus:
		return "AwaitingConsensus"
	case PhaseAwaitingDispute:
		return "AwaitingDispute"
	default:
		return "Unknown"
	}
}

// TimestampNever is the sentinel value of the sealing epoch timestamp while
// no claim is challengeable. The sealing timestamp equals TimestampNever if
// and only if the controller is in PhaseInputAccumulation.
var TimestampNever = time.Time{}
