package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// DeriveAddress computes the deterministic record address for a protocol
// record: hex(SHA-256(salt ‖ label ‖ part₀ ‖ part₁ …)) with length-prefixed
// parts so distinct field boundaries can never collide. Two derivations
// with the same salt, label and identifying fields always resolve to the
// same address, which is what lets an off-ledger settlement processor
// locate a deposit or withdrawal from (user, reference) alone.
func DeriveAddress(salt []byte, label string, parts ...string) string {
	h := sha256.New()
	writePart(h, string(salt))
	writePart(h, label)
	for _, p := range parts {
		writePart(h, p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writePart(h interface{ Write([]byte) (int, error) }, s string) {
	var n [4]byte
	l := len(s)
	n[0] = byte(l >> 24)
	n[1] = byte(l >> 16)
	n[2] = byte(l >> 8)
	n[3] = byte(l)
	_, _ = h.Write(n[:])
	_, _ = h.Write([]byte(s))
}
