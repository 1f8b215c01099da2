package pubsub

import (
	"sync"
	"time"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

type OnEpochFinalizedConsumer = func(epochIndex uint64, claim rollups.Claim)
type OnPhaseChangedConsumer = func(newPhase model.Phase)

// Distributor subscribes for epoch controller events and distributes them
// to subscribers.
type Distributor struct {
	consumers               []epochs.Consumer
	epochFinalizedConsumers []OnEpochFinalizedConsumer
	phaseChangedConsumers   []OnPhaseChangedConsumer
	lock                    sync.RWMutex
}

var _ epochs.Consumer = (*Distributor)(nil)

func NewDistributor() *Distributor {
	return &Distributor{}
}

// AddConsumer subscribes the given consumer to all events.
func (d *Distributor) AddConsumer(consumer epochs.Consumer) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.consumers = append(d.consumers, consumer)
}

// AddOnEpochFinalizedConsumer subscribes the given callback to epoch
// finalization events only.
func (d *Distributor) AddOnEpochFinalizedConsumer(consumer OnEpochFinalizedConsumer) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.epochFinalizedConsumers = append(d.epochFinalizedConsumers, consumer)
}

// AddOnPhaseChangedConsumer subscribes the given callback to phase change
// events only.
func (d *Distributor) AddOnPhaseChangedConsumer(consumer OnPhaseChangedConsumer) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.phaseChangedConsumers = append(d.phaseChangedConsumers, consumer)
}

func (d *Distributor) OnControllerCreated(inputDuration, challengePeriod time.Duration) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.consumers {
		consumer.OnControllerCreated(inputDuration, challengePeriod)
	}
}

func (d *Distributor) OnPhaseChanged(newPhase model.Phase) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.consumers {
		consumer.OnPhaseChanged(newPhase)
	}
	for _, consumer := range d.phaseChangedConsumers {
		consumer(newPhase)
	}
}

func (d *Distributor) OnClaimSubmitted(finalizedEpochs uint64, claimer rollups.Identifier, claim rollups.Claim) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.consumers {
		consumer.OnClaimSubmitted(finalizedEpochs, claimer, claim)
	}
}

func (d *Distributor) OnDisputeResolved(winner, loser rollups.Identifier, winningClaim rollups.Claim) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.consumers {
		consumer.OnDisputeResolved(winner, loser, winningClaim)
	}
}

func (d *Distributor) OnEpochFinalized(epochIndex uint64, claim rollups.Claim) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.consumers {
		consumer.OnEpochFinalized(epochIndex, claim)
	}
	for _, consumer := range d.epochFinalizedConsumers {
		consumer(epochIndex, claim)
	}
}
