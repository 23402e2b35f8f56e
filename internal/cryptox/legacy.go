package cryptox

import (
	"crypto/subtle"
	"hash/fnv"
	"strconv"
)

// LegacyHasher is the unsalted FNV-1a 64-bit digest. Not suitable for real
// password storage.
type LegacyHasher struct{}

func (LegacyHasher) Hash(password string) (string, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(password))
	return strconv.FormatUint(h.Sum64(), 10), nil
}

func (l LegacyHasher) Verify(password, digest string) (bool, error) {
	want, _ := l.Hash(password)
	return subtle.ConstantTimeCompare([]byte(want), []byte(digest)) == 1, nil
}
