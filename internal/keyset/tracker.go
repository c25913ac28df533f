// Package keyset tracks the object-member names seen within a single
// BONJSON object, so the encoder and decoder can both reject duplicate
// keys per spec.md §6.3's reject_duplicate_keys flag.
//
// It is grounded on the teacher's internal/collision.Tracker, which maps
// a fast hash to the name(s) that produced it and falls back to an exact
// compare only when two names collide on the same hash. Key hashing
// itself reuses the teacher's internal/hash.ID, which wraps xxHash64.
package keyset

import "github.com/kstenerud/go-bonjson/internal/hash"

// MaxTrackedKeys bounds the number of distinct keys a single Tracker will
// remember, per spec.md §6.3's duplicate-key cap. Beyond this count,
// Add reports tooMany instead of tracking further keys, so a maliciously
// large object can't force unbounded memory growth in the duplicate
// detector.
const MaxTrackedKeys = 256

// Tracker detects duplicate object keys within one container's scope.
// A Tracker is meant to be used for a single object's member list and
// reset (or discarded) once that container closes.
type Tracker struct {
	byHash map[uint64][]string
	count  int
}

// NewTracker creates an empty key tracker.
func NewTracker() *Tracker {
	return &Tracker{byHash: make(map[uint64][]string)}
}

// Add records key and reports whether it is a duplicate of a
// previously-added key in this tracker, or whether the tracker has
// already hit MaxTrackedKeys and stopped tracking new keys.
//
// Once tooMany is true, Add no longer records new keys but still
// detects duplicates among keys added before the cap was hit.
func (t *Tracker) Add(key []byte) (duplicate bool, tooMany bool) {
	name := string(key)
	h := hash.ID(name)

	if names, exists := t.byHash[h]; exists {
		for _, existing := range names {
			if existing == name {
				return true, false
			}
		}
		if t.count >= MaxTrackedKeys {
			return false, true
		}
		t.byHash[h] = append(names, name)
		t.count++
		return false, false
	}

	if t.count >= MaxTrackedKeys {
		return false, true
	}

	t.byHash[h] = []string{name}
	t.count++
	return false, false
}

// Count returns the number of distinct keys currently tracked.
func (t *Tracker) Count() int {
	return t.count
}

// Reset clears all tracked keys, allowing the Tracker to be reused for
// another container's member list.
func (t *Tracker) Reset() {
	for k := range t.byHash {
		delete(t.byHash, k)
	}
	t.count = 0
}
