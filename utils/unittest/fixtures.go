package unittest

import (
	"crypto/rand"

	"github.com/shuoer86/rollups-node/model/rollups"
)

// IdentifierFixture returns a random identifier.
func IdentifierFixture() rollups.Identifier {
	var id rollups.Identifier
	readRandom(id[:])
	return id
}

// IdentifierListFixture returns a list of random identifiers.
func IdentifierListFixture(n int) []rollups.Identifier {
	list := make([]rollups.Identifier, n)
	for i := range list {
		list[i] = IdentifierFixture()
	}
	return list
}

// ClaimFixture returns a random non-empty claim hash.
func ClaimFixture() rollups.Claim {
	var claim rollups.Claim
	readRandom(claim[:])
	return claim
}

func readRandom(buf []byte) {
	_, err := rand.Read(buf)
	if err != nil {
		panic("could not read random bytes: " + err.Error())
	}
}
