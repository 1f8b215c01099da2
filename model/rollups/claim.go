package rollups

import (
	"encoding/hex"
)

// Claim is the hash a validator asserts to be the correct result of an
// epoch. The claim content is opaque to the epoch controller; only equality
// and emptiness are ever inspected.
type Claim [32]byte

// EmptyClaim is the zero value of Claim; it denotes the absence of a claim.
var EmptyClaim = Claim{}

// IsEmpty returns true if the claim is the empty claim.
func (c Claim) IsEmpty() bool {
	return c == EmptyClaim
}

// String returns the hex string representation of the claim hash.
func (c Claim) String() string {
	return hex.EncodeToString(c[:])
}
