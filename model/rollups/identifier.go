package rollups

import (
	"encoding/hex"
	"fmt"
)

// Identifier is an opaque identity token for a participant or collaborator
// of the rollup (a validator, the input ledger, the dispute arbiter). The
// epoch controller authorizes restricted operations by comparing the
// caller's token against the token configured at construction.
type Identifier [32]byte

// ZeroID is the zero value of Identifier.
var ZeroID = Identifier{}

// String returns the hex string representation of the identifier.
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// HexStringToIdentifier converts a hex string to an identifier. The hex
// string must be 64 characters long.
func HexStringToIdentifier(hexString string) (Identifier, error) {
	var id Identifier
	bytes, err := hex.DecodeString(hexString)
	if err != nil {
		return id, fmt.Errorf("could not decode identifier: %w", err)
	}
	if len(bytes) != len(id) {
		return id, fmt.Errorf("malformed identifier: expected %d bytes, got %d", len(id), len(bytes))
	}
	copy(id[:], bytes)
	return id, nil
}
