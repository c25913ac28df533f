// Package hash provides the fast, non-cryptographic hash used to bucket
// object keys before an exact-compare fallback, shared by internal/keyset.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
