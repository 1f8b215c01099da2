// Package ingest provides the input ledger: it accepts and timestamps raw
// inputs, attributes each one to the correct epoch by consulting the epoch
// controller before recording, and reacts to epoch boundaries.
package ingest

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/model/rollups"
)

// ErrNotBound is returned when an input arrives before the ledger is bound
// to an epoch notifier.
var ErrNotBound = errors.New("ledger is not bound to an epoch notifier")

// EpochNotifier is the narrow view of the epoch controller the ledger asks
// before recording an input.
type EpochNotifier interface {
	NotifyNewInput(caller rollups.Identifier) (bool, error)
}

// Input is a raw input stamped on arrival.
type Input struct {
	Sender    rollups.Identifier
	Payload   []byte
	Timestamp time.Time
}

// Ledger implements epochs.InputLedger. It keeps two input boxes: the box
// accumulating inputs for the current epoch and the sealed box holding the
// inputs of the epoch under consensus. On an epoch boundary the boxes swap
// roles; when an epoch finalizes the sealed box is drained.
//
// AddInput may be called concurrently with reads of the counters, but must
// be serialized with the epoch controller's operations, matching the
// controller's execution model.
type Ledger struct {
	log   zerolog.Logger
	clock clock.Clock
	id    rollups.Identifier

	notifier EpochNotifier

	mu          sync.Mutex
	current     []Input
	sealed      []Input
	epochInputs *atomic.Uint64
	totalInputs *atomic.Uint64
}

var _ epochs.InputLedger = (*Ledger)(nil)

// NewLedger creates an input ledger with the given identity token, which
// must match the token the controller was configured with.
func NewLedger(log zerolog.Logger, clk clock.Clock, id rollups.Identifier) *Ledger {
	return &Ledger{
		log:         log.With().Str("component", "input_ledger").Logger(),
		clock:       clk,
		id:          id,
		epochInputs: atomic.NewUint64(0),
		totalInputs: atomic.NewUint64(0),
	}
}

// Bind attaches the epoch notifier. The binding happens after construction
// because the controller and the ledger reference each other.
func (l *Ledger) Bind(notifier EpochNotifier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notifier = notifier
}

// AddInput timestamps and records an input for the current epoch. It first
// notifies the controller, which may lazily close the accumulation window;
// in that case the input is the first one of the new epoch. Returns whether
// the epoch boundary was crossed.
func (l *Ledger) AddInput(sender rollups.Identifier, payload []byte) (bool, error) {
	l.mu.Lock()
	notifier := l.notifier
	l.mu.Unlock()
	if notifier == nil {
		return false, ErrNotBound
	}

	// the controller calls back into OnEpochBoundary while we do not hold
	// the lock
	transitioned, err := notifier.NotifyNewInput(l.id)
	if err != nil {
		return false, fmt.Errorf("could not notify controller of new input: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	input := Input{
		Sender:    sender,
		Payload:   payload,
		Timestamp: l.clock.Now(),
	}
	l.current = append(l.current, input)
	l.epochInputs.Inc()
	l.totalInputs.Inc()

	l.log.Debug().
		Hex("sender", sender[:]).
		Int("payload_size", len(payload)).
		Bool("epoch_boundary", transitioned).
		Msg("input recorded")

	return transitioned, nil
}

// OnEpochBoundary implements epochs.InputLedger.
func (l *Ledger) OnEpochBoundary() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sealed = l.current
	l.current = nil
	l.epochInputs.Store(0)

	l.log.Debug().
		Int("sealed_inputs", len(l.sealed)).
		Msg("input box sealed at epoch boundary")
}

// OnEpochReset implements epochs.InputLedger.
func (l *Ledger) OnEpochReset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	drained := len(l.sealed)
	l.sealed = nil

	l.log.Debug().
		Int("drained_inputs", drained).
		Msg("sealed input box drained after finalization")
}

// EpochInputCount returns how many inputs the current epoch has accumulated.
func (l *Ledger) EpochInputCount() uint64 {
	return l.epochInputs.Load()
}

// TotalInputCount returns how many inputs the ledger has ever accepted.
func (l *Ledger) TotalInputCount() uint64 {
	return l.totalInputs.Load()
}

// SealedInputs returns a copy of the inputs of the epoch under consensus.
func (l *Ledger) SealedInputs() []Input {
	l.mu.Lock()
	defer l.mu.Unlock()
	sealed := make([]Input, len(l.sealed))
	copy(sealed, l.sealed)
	return sealed
}
