package alloc

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// Stats is a snapshot of the book-keeping of a Budget.
type Stats struct {
	Live    int // bytes currently granted
	Peak    int // high-water mark of Live
	Allocs  int // number of granted requests
	Frees   int // number of returned buffers
	Refused int // number of refused requests
	Limit   int // current limit; negative means unlimited
}

// Budget is an allocator with an upper limit on live bytes.
// It is not safe for concurrent use.
type Budget struct {
	stats Stats
}

// NewBudget creates a budget granting at most limit live bytes.
// A negative limit means unlimited; the budget then just counts.
func NewBudget(limit int) *Budget {
	return &Budget{stats: Stats{Limit: limit}}
}

// Alloc grants bytes if they fit into the remaining budget.
func (b *Budget) Alloc(bytes int) error {
	if bytes < 0 {
		return fmt.Errorf("%w: negative allocation size %d", containers.ErrIllegalArguments, bytes)
	}
	if b.stats.Limit >= 0 && b.stats.Live+bytes > b.stats.Limit {
		b.stats.Refused++
		tracer().Errorf("allocation of %d bytes refused, %d of %d bytes in use",
			bytes, b.stats.Live, b.stats.Limit)
		return fmt.Errorf("%w: %d bytes exceed budget", containers.ErrAllocation, bytes)
	}
	b.stats.Live += bytes
	b.stats.Allocs++
	if b.stats.Live > b.stats.Peak {
		b.stats.Peak = b.stats.Live
	}
	return nil
}

// Free returns bytes to the budget.
func (b *Budget) Free(bytes int) {
	if bytes <= 0 {
		return
	}
	b.stats.Live -= bytes
	b.stats.Frees++
	if b.stats.Live < 0 {
		// more returned than granted: a container accounted incorrectly
		panic("alloc: budget freed more bytes than it granted")
	}
}

// SetLimit changes the limit. Lowering it below the live bytes does not
// revoke anything, it only refuses further requests.
func (b *Budget) SetLimit(limit int) {
	b.stats.Limit = limit
}

// Remaining returns the number of bytes still available, or -1 for an
// unlimited budget.
func (b *Budget) Remaining() int {
	if b.stats.Limit < 0 {
		return -1
	}
	if r := b.stats.Limit - b.stats.Live; r > 0 {
		return r
	}
	return 0
}

// Stats returns a snapshot of the budget's statistics.
func (b *Budget) Stats() Stats {
	return b.stats
}

// Utilization returns the ratio of live bytes to the limit (0.0 to 1.0).
// Returns 0.0 for an unlimited or zero budget.
func (b *Budget) Utilization() float64 {
	if b.stats.Limit <= 0 {
		return 0
	}
	return float64(b.stats.Live) / float64(b.stats.Limit)
}
