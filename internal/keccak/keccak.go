package keccak

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Sum256 returns the Keccak-256 digest of b. This is the pre-NIST padding
// variant used throughout the EVM ecosystem, not SHA3-256.
func Sum256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// Sum256Hex returns the digest as lowercase hex without a 0x prefix.
func Sum256Hex(b []byte) string {
	return hex.EncodeToString(Sum256(b))
}
