package merkle

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// HashContent returns the leaf digest for the given item content.
func HashContent(content []byte) Digest {
	return Digest(crypto.Keccak256Hash(content))
}

// HashPair computes keccak256(left || right) for two child digests.
// A self-paired node passes the same digest twice.
func HashPair(left, right Digest) Digest {
	data := make([]byte, 2*DigestLength)
	copy(data[0:DigestLength], left[:])
	copy(data[DigestLength:], right[:])

	return Digest(crypto.Keccak256Hash(data))
}
