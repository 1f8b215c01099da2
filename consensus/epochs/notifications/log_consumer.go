package notifications

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

// LogConsumer is an implementation of the notifications consumer that logs a
// message for each event.
type LogConsumer struct {
	log zerolog.Logger
}

var _ epochs.Consumer = (*LogConsumer)(nil)

func NewLogConsumer(log zerolog.Logger) *LogConsumer {
	lc := &LogConsumer{
		log: log,
	}
	return lc
}

func (lc *LogConsumer) OnControllerCreated(inputDuration, challengePeriod time.Duration) {
	lc.log.Info().
		Dur("input_duration", inputDuration).
		Dur("challenge_period", challengePeriod).
		Msg("epoch controller created")
}

func (lc *LogConsumer) OnPhaseChanged(newPhase model.Phase) {
	lc.log.Debug().
		Str("new_phase", newPhase.String()).
		Msg("phase changed")
}

func (lc *LogConsumer) OnClaimSubmitted(finalizedEpochs uint64, claimer rollups.Identifier, claim rollups.Claim) {
	lc.log.Debug().
		Uint64("finalized_epochs", finalizedEpochs).
		Hex("claimer", claimer[:]).
		Hex("claim", claim[:]).
		Msg("claim submitted")
}

func (lc *LogConsumer) OnDisputeResolved(winner, loser rollups.Identifier, winningClaim rollups.Claim) {
	lc.log.Debug().
		Hex("winner", winner[:]).
		Hex("loser", loser[:]).
		Hex("winning_claim", winningClaim[:]).
		Msg("dispute resolved")
}

func (lc *LogConsumer) OnEpochFinalized(epochIndex uint64, claim rollups.Claim) {
	lc.log.Debug().
		Uint64("epoch_index", epochIndex).
		Hex("claim", claim[:]).
		Msg("epoch finalized")
}
