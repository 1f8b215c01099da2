package epochs

// InputLedger is the component that accepts and timestamps raw inputs. The
// epoch controller notifies it of phase transitions so it can keep inputs
// attributed to the correct epoch. Both notifications must not fail for
// valid calls, hence they return nothing; the ledger is expected to apply
// them atomically.
type InputLedger interface {
	// OnEpochBoundary is called when the input accumulation window closes
	// and the controller transitions to AwaitingConsensus. The ledger seals
	// the accumulating input box and starts a fresh one.
	OnEpochBoundary()

	// OnEpochReset is called when an epoch finalizes. The ledger resets its
	// epoch-scoped input counters.
	OnEpochReset()
}
