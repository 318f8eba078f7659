package random

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument indicates a call site error, such as an inverted range.
var ErrInvalidArgument = errors.New("invalid argument")

// Int returns start + trunc((end-start+1) * u) where u is one sample of src.
// The result always lies in [start, end].
func Int[T constraints.Integer](start, end T, src Source) (T, error) {
	if err := validate(start, end, src); err != nil {
		return 0, err
	}
	u := src.Float64()
	width := uint64(end) - uint64(start)
	offset := math.Trunc((float64(width) + 1) * u)
	if offset >= float64(width) {
		// float rounding of large widths may otherwise step past end
		return end, nil
	}
	if offset <= 0 {
		return start, nil
	}
	return T(uint64(start) + uint64(offset)), nil
}

// Float returns start + (end-start+1) * u where u is one sample of src.
// The span includes the +1 used by Int, so the result lies in
// [start, start+(end-start+1)).
func Float[T constraints.Float](start, end T, src Source) (T, error) {
	if err := validate(start, end, src); err != nil {
		return 0, err
	}
	u := src.Float64()
	low := float64(start)
	value := T(low + (float64(end)-low+1)*u)
	// narrowing to float32 may round up onto the exclusive upper bound
	if limit := start + (end - start + 1); value >= limit && limit > start {
		value = below(limit, start)
	}
	if value < start {
		value = start
	}
	return value, nil
}

// below returns the closest T to limit in the direction of start.
func below[T constraints.Float](limit, start T) T {
	if unsafe.Sizeof(limit) == 4 {
		return T(math.Nextafter32(float32(limit), float32(start)))
	}
	return T(math.Nextafter(float64(limit), float64(start)))
}

func validate[T constraints.Integer | constraints.Float](start, end T, src Source) error {
	if start > end {
		return fmt.Errorf("%w: start cannot exceed end (start: %v, end: %v)", ErrInvalidArgument, start, end)
	}
	if src == nil {
		return fmt.Errorf("%w: random source was nil", ErrInvalidArgument)
	}
	return nil
}
