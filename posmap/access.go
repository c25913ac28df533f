package posmap

import "github.com/kstenerud/go-bonjson/errs"

// GetChild returns the index of the childIndex-th direct child of the
// container at containerIndex, per spec.md §4.5.1's get_child.
//
// For an array, children are its elements in order. For an object,
// children are its values in order (its keys are reachable through
// FindKey or by reading the entry immediately before each value).
// Walking to childIndex costs O(childIndex): each preceding sibling is
// skipped by its SubtreeSize rather than re-parsed.
func (s *Scanner) GetChild(containerIndex, childIndex int) (int, error) {
	e := &s.entries[containerIndex]
	if e.Kind != KindArray && e.Kind != KindObject {
		return 0, errs.New(errs.StatusInvalidData, 0, 0)
	}

	// ChildCount is element count for arrays but keys-and-values count
	// (2x pairs) for objects; childIndex here addresses object values
	// one per pair, so bound it by the pair count.
	limit := e.ChildCount
	if e.Kind == KindObject {
		limit = e.ChildCount / 2
	}
	if childIndex < 0 || childIndex >= limit {
		return 0, errs.New(errs.StatusInvalidData, 0, 0)
	}

	idx := e.FirstChild
	for i := 0; i < childIndex; i++ {
		if e.Kind == KindObject {
			idx++ // skip this pair's key (always SubtreeSize 1)
			idx += s.entries[idx].SubtreeSize
		} else {
			idx += s.entries[idx].SubtreeSize
		}
	}
	if e.Kind == KindObject {
		idx++ // step from the key onto its value
	}

	return idx, nil
}

// FindKey returns the index of the value entry whose key equals key
// within the object at objectIndex, per spec.md §4.5.1's find_key. It
// returns found=false if no member has that key.
func (s *Scanner) FindKey(objectIndex int, key string) (index int, found bool) {
	e := &s.entries[objectIndex]
	if e.Kind != KindObject {
		return 0, false
	}

	idx := e.FirstChild
	for i := 0; i < e.ChildCount/2; i++ {
		if s.GetString(idx) == key {
			return idx + 1, true
		}
		valueIdx := idx + 1
		idx = valueIdx + s.entries[valueIdx].SubtreeSize
	}

	return 0, false
}

// DecodeInt64Array returns every element of the array at arrayIndex as
// an int64, failing if any element is not an Int or Uint (the latter
// converted when it fits in the signed range).
func (s *Scanner) DecodeInt64Array(arrayIndex int) ([]int64, error) {
	e := &s.entries[arrayIndex]
	if e.Kind != KindArray {
		return nil, errs.New(errs.StatusInvalidData, 0, 0)
	}

	out := make([]int64, 0, e.ChildCount)
	idx := e.FirstChild
	for i := 0; i < e.ChildCount; i++ {
		child := &s.entries[idx]
		switch child.Kind {
		case KindInt:
			out = append(out, child.I64)
		case KindUint:
			if child.U64 > 1<<63-1 {
				return nil, errs.New(errs.StatusValueOutOfRange, 0, 0)
			}
			out = append(out, int64(child.U64))
		default:
			return nil, errs.New(errs.StatusInvalidData, 0, 0)
		}
		idx += child.SubtreeSize
	}

	return out, nil
}

// DecodeUint64Array returns every element of the array at arrayIndex as
// a uint64.
func (s *Scanner) DecodeUint64Array(arrayIndex int) ([]uint64, error) {
	e := &s.entries[arrayIndex]
	if e.Kind != KindArray {
		return nil, errs.New(errs.StatusInvalidData, 0, 0)
	}

	out := make([]uint64, 0, e.ChildCount)
	idx := e.FirstChild
	for i := 0; i < e.ChildCount; i++ {
		child := &s.entries[idx]
		switch child.Kind {
		case KindUint:
			out = append(out, child.U64)
		case KindInt:
			out = append(out, uint64(child.I64))
		default:
			return nil, errs.New(errs.StatusInvalidData, 0, 0)
		}
		idx += child.SubtreeSize
	}

	return out, nil
}

// DecodeDoubleArray returns every element of the array at arrayIndex as
// a float64, promoting Int/Uint elements as a convenience.
func (s *Scanner) DecodeDoubleArray(arrayIndex int) ([]float64, error) {
	e := &s.entries[arrayIndex]
	if e.Kind != KindArray {
		return nil, errs.New(errs.StatusInvalidData, 0, 0)
	}

	out := make([]float64, 0, e.ChildCount)
	idx := e.FirstChild
	for i := 0; i < e.ChildCount; i++ {
		child := &s.entries[idx]
		switch child.Kind {
		case KindFloat:
			out = append(out, child.F64)
		case KindInt:
			out = append(out, float64(child.I64))
		case KindUint:
			out = append(out, float64(child.U64))
		default:
			return nil, errs.New(errs.StatusInvalidData, 0, 0)
		}
		idx += child.SubtreeSize
	}

	return out, nil
}

// DecodeBoolArray returns every element of the array at arrayIndex as a
// bool.
func (s *Scanner) DecodeBoolArray(arrayIndex int) ([]bool, error) {
	e := &s.entries[arrayIndex]
	if e.Kind != KindArray {
		return nil, errs.New(errs.StatusInvalidData, 0, 0)
	}

	out := make([]bool, 0, e.ChildCount)
	idx := e.FirstChild
	for i := 0; i < e.ChildCount; i++ {
		child := &s.entries[idx]
		if child.Kind != KindBool {
			return nil, errs.New(errs.StatusInvalidData, 0, 0)
		}
		out = append(out, child.Bool)
		idx += child.SubtreeSize
	}

	return out, nil
}

// DecodeStringArray returns every element of the array at arrayIndex as
// a string.
func (s *Scanner) DecodeStringArray(arrayIndex int) ([]string, error) {
	e := &s.entries[arrayIndex]
	if e.Kind != KindArray {
		return nil, errs.New(errs.StatusInvalidData, 0, 0)
	}

	out := make([]string, 0, e.ChildCount)
	idx := e.FirstChild
	for i := 0; i < e.ChildCount; i++ {
		child := &s.entries[idx]
		if child.Kind != KindString {
			return nil, errs.New(errs.StatusInvalidData, 0, 0)
		}
		out = append(out, s.GetString(idx))
		idx += child.SubtreeSize
	}

	return out, nil
}
