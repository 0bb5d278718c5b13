package array

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// Check validates the structural invariants of a.
//
// It is intended for tests. Capacity bounds are checked as well, which
// holds for all arrays whose allocator never refused a shrink.
func (a *Array[T]) Check() error {
	if a.num < 0 || a.num > len(a.buf) {
		return fmt.Errorf("%w: %d live elements in %d slots",
			containers.ErrIllegalArguments, a.num, len(a.buf))
	}
	if a.num == 0 && a.buf != nil {
		return fmt.Errorf("%w: empty array holds a buffer of %d slots",
			containers.ErrIllegalArguments, len(a.buf))
	}
	if a.num > 0 && len(a.buf) > 4*a.num {
		return fmt.Errorf("%w: %d slots exceed four times %d elements",
			containers.ErrIllegalArguments, len(a.buf), a.num)
	}
	return nil
}
