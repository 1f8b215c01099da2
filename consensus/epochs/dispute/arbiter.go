// Package dispute provides the delegated dispute arbiter: it holds the
// conflict escalated by the epoch controller until adjudication concludes
// and reports the outcome back through ResolveDispute.
package dispute

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

var (
	// ErrDisputeInProgress is returned when a dispute is opened while
	// another one is still pending.
	ErrDisputeInProgress = errors.New("a dispute is already in progress")

	// ErrNoPendingDispute is returned when an outcome is reported while no
	// dispute is pending.
	ErrNoPendingDispute = errors.New("no dispute is pending")

	// ErrNotBound is returned when the arbiter is used before being bound to
	// a resolver.
	ErrNotBound = errors.New("arbiter is not bound to a dispute resolver")
)

// Resolver is the narrow view of the epoch controller the arbiter reports
// outcomes to.
type Resolver interface {
	ResolveDispute(caller, winner, loser rollups.Identifier, winningClaim rollups.Claim) error
}

// Arbiter implements epochs.DisputeArbiter. How a dispute is adjudicated is
// outside its concern; an external driver decides the outcome and calls
// Resolve, which forwards it to the controller under the arbiter's identity
// token. At most one dispute is pending at a time.
type Arbiter struct {
	log      zerolog.Logger
	id       rollups.Identifier
	resolver Resolver

	mu      sync.Mutex
	pending *model.Conflict
}

var _ epochs.DisputeArbiter = (*Arbiter)(nil)

// NewArbiter creates an arbiter with the given identity token. The arbiter
// must be bound to a resolver before the first dispute concludes.
func NewArbiter(log zerolog.Logger, id rollups.Identifier) *Arbiter {
	return &Arbiter{
		log: log.With().Str("component", "dispute_arbiter").Logger(),
		id:  id,
	}
}

// Bind attaches the resolver the arbiter reports outcomes to. The binding
// happens after construction because the controller and the arbiter
// reference each other.
func (a *Arbiter) Bind(resolver Resolver) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resolver = resolver
}

// BeginDispute implements epochs.DisputeArbiter.
func (a *Arbiter) BeginDispute(conflict model.Conflict) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending != nil {
		return ErrDisputeInProgress
	}
	a.pending = &conflict

	a.log.Info().
		Hex("claim_a", conflict.Claims[0][:]).
		Hex("claimant_a", conflict.Claimants[0][:]).
		Hex("claim_b", conflict.Claims[1][:]).
		Hex("claimant_b", conflict.Claimants[1][:]).
		Msg("dispute opened")

	return nil
}

// Pending returns the currently pending conflict, if any.
func (a *Arbiter) Pending() (model.Conflict, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending == nil {
		return model.Conflict{}, false
	}
	return *a.pending, true
}

// Resolve concludes the pending dispute with the given outcome and reports
// it to the bound resolver. The pending dispute is cleared only if the
// resolver accepted the outcome.
func (a *Arbiter) Resolve(winner, loser rollups.Identifier, winningClaim rollups.Claim) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.resolver == nil {
		return ErrNotBound
	}
	if a.pending == nil {
		return ErrNoPendingDispute
	}

	err := a.resolver.ResolveDispute(a.id, winner, loser, winningClaim)
	if err != nil {
		return err
	}
	a.pending = nil

	a.log.Info().
		Hex("winner", winner[:]).
		Hex("loser", loser[:]).
		Hex("winning_claim", winningClaim[:]).
		Msg("dispute resolved")

	return nil
}
