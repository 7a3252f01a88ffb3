package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint derives a stable cache key from an operation name and its
// logical arguments. Arguments are serialized to canonical JSON (map keys
// are emitted sorted), so two semantically identical argument sets produce
// the same key regardless of map iteration order. Slices are serialized in
// the order given; callers pass unordered option sets pre-sorted.
func Fingerprint(op string, args ...any) string {
	h := sha256.New()
	h.Write([]byte(op))

	for _, arg := range args {
		b, err := json.Marshal(arg)
		if err != nil {
			// Arguments are plain strings, numbers and string slices;
			// a marshal failure here is a programmer error.
			panic(fmt.Sprintf("cache: unserializable fingerprint argument: %v", err))
		}
		h.Write([]byte{0})
		h.Write(b)
	}

	return op + ":" + hex.EncodeToString(h.Sum(nil))
}
