package notifications

import (
	"time"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

// NoopConsumer is an implementation of the notifications consumer that
// doesn't do anything.
type NoopConsumer struct{}

var _ epochs.Consumer = (*NoopConsumer)(nil)

func NewNoopConsumer() *NoopConsumer {
	return &NoopConsumer{}
}

func (*NoopConsumer) OnControllerCreated(time.Duration, time.Duration) {}

func (*NoopConsumer) OnPhaseChanged(model.Phase) {}

func (*NoopConsumer) OnClaimSubmitted(uint64, rollups.Identifier, rollups.Claim) {}

func (*NoopConsumer) OnDisputeResolved(rollups.Identifier, rollups.Identifier, rollups.Claim) {}

func (*NoopConsumer) OnEpochFinalized(uint64, rollups.Claim) {}
