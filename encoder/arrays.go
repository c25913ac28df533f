package encoder

// Int64Array appends values as an array of signed integers, equivalent
// to BeginArray, one Int call per element, then EndContainer. It is a
// convenience wrapper; the wire format is the ordinary delimiter-
// terminated array from spec.md §4.3.3; typed-array transport codes are
// a scanner-only optimization the encoder never emits.
func (e *Encoder) Int64Array(values []int64) error {
	if err := e.BeginArray(); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.Int(v); err != nil {
			return err
		}
	}
	return e.EndContainer()
}

// Uint64Array appends values as an array of unsigned integers.
func (e *Encoder) Uint64Array(values []uint64) error {
	if err := e.BeginArray(); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.Uint(v); err != nil {
			return err
		}
	}
	return e.EndContainer()
}

// DoubleArray appends values as an array of floats.
func (e *Encoder) DoubleArray(values []float64) error {
	if err := e.BeginArray(); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.Float(v); err != nil {
			return err
		}
	}
	return e.EndContainer()
}

// BoolArray appends values as an array of booleans.
func (e *Encoder) BoolArray(values []bool) error {
	if err := e.BeginArray(); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.Bool(v); err != nil {
			return err
		}
	}
	return e.EndContainer()
}

// StringArray appends values as an array of strings.
func (e *Encoder) StringArray(values []string) error {
	if err := e.BeginArray(); err != nil {
		return err
	}
	for _, v := range values {
		if err := e.String(v); err != nil {
			return err
		}
	}
	return e.EndContainer()
}
