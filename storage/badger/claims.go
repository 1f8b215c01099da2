package badger

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/dgraph-io/badger/v2"
	"github.com/vmihailenco/msgpack"

	"github.com/shuoer86/rollups-node/consensus/epochs"
	"github.com/shuoer86/rollups-node/model/rollups"
	"github.com/shuoer86/rollups-node/storage"
)

// key prefixes for the claims keyspace
const (
	codeFinalizedEpoch = 10
	codeEpochCount     = 11
)

// Claims is the badger-backed output ledger. Finalization records are
// msgpack-encoded and keyed by epoch index; the count lives under its own
// key and is updated in the same transaction that writes the record, so the
// two can never diverge.
type Claims struct {
	db    *badger.DB
	clock clock.Clock
}

var _ storage.Claims = (*Claims)(nil)
var _ epochs.OutputLedger = (*Claims)(nil)

func NewClaims(db *badger.DB, clk clock.Clock) *Claims {
	return &Claims{
		db:    db,
		clock: clk,
	}
}

// RecordFinalizedClaim implements storage.Claims. It refuses to overwrite a
// previously recorded epoch.
func (c *Claims) RecordFinalizedClaim(claim rollups.Claim) (uint64, error) {
	var newCount uint64
	err := c.db.Update(func(tx *badger.Txn) error {
		count, err := retrieveCount(tx)
		if err != nil {
			return err
		}

		key := epochKey(count)
		_, err = tx.Get(key)
		if err == nil {
			return fmt.Errorf("record for epoch %d: %w", count, storage.ErrAlreadyExists)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("could not check epoch key: %w", err)
		}

		record := rollups.FinalizedEpoch{
			Claim:       claim,
			FinalizedAt: c.clock.Now(),
		}
		val, err := msgpack.Marshal(&record)
		if err != nil {
			return fmt.Errorf("could not encode finalization record: %w", err)
		}
		if err := tx.Set(key, val); err != nil {
			return fmt.Errorf("could not store finalization record: %w", err)
		}

		newCount = count + 1
		if err := tx.Set(countKey(), encodeCount(newCount)); err != nil {
			return fmt.Errorf("could not update finalized epoch count: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newCount, nil
}

// FinalizedEpochCount implements storage.Claims.
func (c *Claims) FinalizedEpochCount() (uint64, error) {
	var count uint64
	err := c.db.View(func(tx *badger.Txn) error {
		var err error
		count, err = retrieveCount(tx)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ByEpoch implements storage.Claims.
func (c *Claims) ByEpoch(index uint64) (*rollups.FinalizedEpoch, error) {
	var record rollups.FinalizedEpoch
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(epochKey(index))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("record for epoch %d: %w", index, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("could not retrieve finalization record: %w", err)
		}
		return item.Value(func(val []byte) error {
			if err := msgpack.Unmarshal(val, &record); err != nil {
				return fmt.Errorf("could not decode finalization record: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func retrieveCount(tx *badger.Txn) (uint64, error) {
	item, err := tx.Get(countKey())
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not retrieve finalized epoch count: %w", err)
	}
	var count uint64
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("malformed count value of %d bytes", len(val))
		}
		count = binary.BigEndian.Uint64(val)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func epochKey(index uint64) []byte {
	key := make([]byte, 9)
	key[0] = codeFinalizedEpoch
	binary.BigEndian.PutUint64(key[1:], index)
	return key
}

func countKey() []byte {
	return []byte{codeEpochCount}
}

func encodeCount(count uint64) []byte {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, count)
	return val
}
