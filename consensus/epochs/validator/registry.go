// Package validator provides the reference validator registry: it tracks
// which of a fixed validator set has claimed for the sealing epoch, detects
// agreement and conflict, and deactivates validators that lose disputes.
package validator

import (
	"github.com/rs/zerolog"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

// Registry implements epochs.ValidatorRegistry for a validator set fixed at
// construction. Deactivation of dispute losers persists across epochs. The
// registry is used strictly single-threaded by the epoch controller.
type Registry struct {
	log zerolog.Logger

	// active holds the validators still allowed to claim; losers of
	// disputes are removed and never re-added
	active map[rollups.Identifier]struct{}

	currentClaim  rollups.Claim
	firstClaimant rollups.Identifier
	agreed        map[rollups.Identifier]struct{}
}

var _ epochs.ValidatorRegistry = (*Registry)(nil)

// NewRegistry creates a registry over the given validator identities.
func NewRegistry(log zerolog.Logger, validators []rollups.Identifier) (*Registry, error) {
	if len(validators) == 0 {
		return nil, model.NewConfigurationErrorf("validator set must not be empty")
	}
	active := make(map[rollups.Identifier]struct{}, len(validators))
	for _, v := range validators {
		if v == rollups.ZeroID {
			return nil, model.NewConfigurationErrorf("validator identity must not be zero")
		}
		if _, ok := active[v]; ok {
			return nil, model.NewConfigurationErrorf("duplicate validator identity %x", v)
		}
		active[v] = struct{}{}
	}
	r := &Registry{
		log:    log.With().Str("component", "validator_registry").Logger(),
		active: active,
		agreed: make(map[rollups.Identifier]struct{}),
	}
	return r, nil
}

// RecordClaim implements epochs.ValidatorRegistry.
func (r *Registry) RecordClaim(caller rollups.Identifier, claim rollups.Claim) (model.ConsensusResult, error) {
	if _, ok := r.active[caller]; !ok {
		return nil, model.NewUnauthorizedErrorf(caller, "active validator")
	}
	if claim.IsEmpty() {
		return nil, model.ErrEmptyClaim
	}
	if _, ok := r.agreed[caller]; ok {
		return nil, model.DuplicateClaimError{Validator: caller, Claim: r.currentClaim}
	}

	if r.currentClaim.IsEmpty() {
		r.currentClaim = claim
		r.firstClaimant = caller
		r.agreed[caller] = struct{}{}
		return r.agreementState(), nil
	}

	if claim != r.currentClaim {
		r.log.Warn().
			Hex("current_claim", r.currentClaim[:]).
			Hex("conflicting_claim", claim[:]).
			Hex("claimer", caller[:]).
			Msg("conflicting claim detected")
		return model.Conflict{
			Claims:    [2]rollups.Claim{r.currentClaim, claim},
			Claimants: [2]rollups.Identifier{r.firstClaimant, caller},
		}, nil
	}

	r.agreed[caller] = struct{}{}
	return r.agreementState(), nil
}

// RecordDisputeOutcome implements epochs.ValidatorRegistry. The loser is
// deactivated for the remainder of the registry's lifetime. If the winning
// claim differs from the current claim, the agreement set collapses to the
// winner; otherwise the winner joins the agreement set.
func (r *Registry) RecordDisputeOutcome(winner, loser rollups.Identifier, winningClaim rollups.Claim) (model.ConsensusResult, error) {
	if _, ok := r.active[winner]; !ok {
		return nil, model.NewUnauthorizedErrorf(winner, "active validator (dispute winner)")
	}
	if _, ok := r.active[loser]; !ok {
		return nil, model.NewUnauthorizedErrorf(loser, "active validator (dispute loser)")
	}
	if winningClaim.IsEmpty() {
		return nil, model.ErrEmptyClaim
	}

	delete(r.active, loser)
	delete(r.agreed, loser)

	if winningClaim != r.currentClaim {
		r.currentClaim = winningClaim
		r.firstClaimant = winner
		r.agreed = map[rollups.Identifier]struct{}{winner: {}}
	} else {
		if r.firstClaimant == loser {
			r.firstClaimant = winner
		}
		r.agreed[winner] = struct{}{}
	}

	r.log.Info().
		Hex("winner", winner[:]).
		Hex("loser", loser[:]).
		Hex("winning_claim", winningClaim[:]).
		Int("active_validators", len(r.active)).
		Msg("dispute outcome applied, loser deactivated")

	return r.agreementState(), nil
}

// ResetForNewEpoch implements epochs.ValidatorRegistry.
func (r *Registry) ResetForNewEpoch() rollups.Claim {
	final := r.currentClaim
	r.currentClaim = rollups.EmptyClaim
	r.firstClaimant = rollups.ZeroID
	r.agreed = make(map[rollups.Identifier]struct{})
	return final
}

// CurrentClaim implements epochs.ValidatorRegistry.
func (r *Registry) CurrentClaim() rollups.Claim {
	return r.currentClaim
}

// ActiveValidators returns how many validators may still claim.
func (r *Registry) ActiveValidators() int {
	return len(r.active)
}

// IsActive returns whether the given validator may still claim.
func (r *Registry) IsActive(validator rollups.Identifier) bool {
	_, ok := r.active[validator]
	return ok
}

// agreementState reports Consensus once every active validator has agreed
// with the current claim, NoConflict otherwise.
func (r *Registry) agreementState() model.ConsensusResult {
	if len(r.agreed) == len(r.active) {
		return model.Consensus{}
	}
	return model.NoConflict{}
}
