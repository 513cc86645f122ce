// Package caseid generates opaque, human-shareable case reference tokens.
//
// A token is a fixed prefix followed by a short random base-36 suffix,
// e.g. "REG-K3J9X2M4A". Uniqueness is probabilistic: at the expected intake
// volume the suffix entropy (36^9, about 46 bits) makes collisions
// negligible, and no collision check is performed.
package caseid

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Prefix starts every generated case reference.
	Prefix = "REG-"
	// SuffixLength is the number of base-36 characters after the prefix.
	SuffixLength = 9

	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// New returns a fresh case token. The token is generated once per submission
// session and used both as the visible case reference and as the storage-key
// namespace prefix.
func New() (string, error) {
	var sb strings.Builder
	sb.WriteString(Prefix)

	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < SuffixLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("caseid: %w", err)
		}
		sb.WriteByte(alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// StorageKey builds the store key for the image at position index within
// the case, preserving upload order: "<caseID>_0", "<caseID>_1", ...
func StorageKey(caseID string, index int) string {
	return fmt.Sprintf("%s_%d", caseID, index)
}
