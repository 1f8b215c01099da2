package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/consensus/epochs/model"
	"github.com/shuoer86/rollups-node/model/rollups"
)

const (
	namespaceRollups = "rollups"
	subsystemEpochs  = "epochs"
)

// EpochCollector reports epoch consensus metrics. It implements
// epochs.Consumer so it can be subscribed to the controller's notification
// distributor.
type EpochCollector struct {
	currentPhase    prometheus.Gauge
	finalizedEpochs prometheus.Counter
	claims          prometheus.Counter
	disputes        prometheus.Counter
}

var _ epochs.Consumer = (*EpochCollector)(nil)

// NewEpochCollector creates a collector registered with the given registerer.
func NewEpochCollector(registerer prometheus.Registerer) *EpochCollector {
	currentPhase := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespaceRollups,
		Subsystem: subsystemEpochs,
		Name:      "current_phase",
		Help:      "the current phase of the epoch controller (0=InputAccumulation, 1=AwaitingConsensus, 2=AwaitingDispute)",
	})
	finalizedEpochs := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceRollups,
		Subsystem: subsystemEpochs,
		Name:      "finalized_epochs_total",
		Help:      "the number of epochs finalized since startup",
	})
	claims := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceRollups,
		Subsystem: subsystemEpochs,
		Name:      "claims_total",
		Help:      "the number of claims recorded since startup",
	})
	disputes := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceRollups,
		Subsystem: subsystemEpochs,
		Name:      "disputes_resolved_total",
		Help:      "the number of disputes resolved since startup",
	})
	registerer.MustRegister(currentPhase, finalizedEpochs, claims, disputes)

	ec := &EpochCollector{
		currentPhase:    currentPhase,
		finalizedEpochs: finalizedEpochs,
		claims:          claims,
		disputes:        disputes,
	}
	return ec
}

func (ec *EpochCollector) OnControllerCreated(time.Duration, time.Duration) {
	ec.currentPhase.Set(float64(model.PhaseInputAccumulation))
}

func (ec *EpochCollector) OnPhaseChanged(newPhase model.Phase) {
	ec.currentPhase.Set(float64(newPhase))
}

func (ec *EpochCollector) OnClaimSubmitted(uint64, rollups.Identifier, rollups.Claim) {
	ec.claims.Inc()
}

func (ec *EpochCollector) OnDisputeResolved(rollups.Identifier, rollups.Identifier, rollups.Claim) {
	ec.disputes.Inc()
}

func (ec *EpochCollector) OnEpochFinalized(uint64, rollups.Claim) {
	ec.finalizedEpochs.Inc()
}
