package coreterm

// RingOfLines is a fixed-capacity circular sequence of lines behaving as a
// FIFO once full. Pushing past capacity evicts the oldest line instead of
// reallocating, giving amortized O(1) push.
type RingOfLines struct {
	lines []*Line
	head  int // physical index of logical line 0
	count int
}

// NewRingOfLines preallocates a ring of the given capacity.
func NewRingOfLines(capacity int) *RingOfLines {
	return &RingOfLines{lines: make([]*Line, capacity)}
}

// Cap returns the ring's fixed capacity.
func (r *RingOfLines) Cap() int { return len(r.lines) }

// Len returns the current number of stored lines.
func (r *RingOfLines) Len() int { return r.count }

func (r *RingOfLines) physical(logical int) int {
	return (r.head + logical) % len(r.lines)
}

// Get returns the line at logical index i (0 = oldest), or nil if out of range.
func (r *RingOfLines) Get(i int) *Line {
	if i < 0 || i >= r.count {
		return nil
	}
	return r.lines[r.physical(i)]
}

// Set overwrites the line at logical index i. Does nothing if out of range.
func (r *RingOfLines) Set(i int, l *Line) {
	if i < 0 || i >= r.count {
		return
	}
	r.lines[r.physical(i)] = l
}

// Push appends l at the end. If the ring is full, the oldest line is
// evicted and returned (recycle candidate); otherwise returns nil.
func (r *RingOfLines) Push(l *Line) (evicted *Line) {
	cap := len(r.lines)
	if cap == 0 {
		return l
	}
	if r.count < cap {
		r.lines[r.physical(r.count)] = l
		r.count++
		return nil
	}
	evicted = r.lines[r.head]
	r.lines[r.head] = l
	r.head = (r.head + 1) % cap
	return evicted
}

// Splice removes deleteCount lines starting at logical index start and
// inserts items in their place, rotating the remainder in place. Ring
// capacity is never exceeded: lines pushed past capacity from the front
// are dropped (oldest-first), matching Push's eviction order.
func (r *RingOfLines) Splice(start, deleteCount int, items []*Line) {
	if start < 0 {
		start = 0
	}
	if start > r.count {
		start = r.count
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if start+deleteCount > r.count {
		deleteCount = r.count - start
	}

	all := make([]*Line, 0, r.count-deleteCount+len(items))
	for i := 0; i < start; i++ {
		all = append(all, r.Get(i))
	}
	all = append(all, items...)
	for i := start + deleteCount; i < r.count; i++ {
		all = append(all, r.Get(i))
	}

	cap := len(r.lines)
	if len(all) > cap {
		all = all[len(all)-cap:]
	}
	r.head = 0
	r.count = len(all)
	copy(r.lines, all)
}

// ShiftElements moves the count lines starting at logical index start by
// offset positions (positive = toward higher indices). Vacated slots keep
// the lines they held, so a line can appear twice until the caller
// overwrites the slot. Used by scroll-region edits that operate purely
// within the logical index space without changing ring occupancy.
func (r *RingOfLines) ShiftElements(start, count, offset int) {
	if count <= 0 || offset == 0 {
		return
	}
	if offset > 0 {
		for i := count - 1; i >= 0; i-- {
			src := start + i
			dst := src + offset
			if src < 0 || src >= r.count || dst < 0 || dst >= r.count {
				continue
			}
			r.Set(dst, r.Get(src))
		}
	} else {
		for i := 0; i < count; i++ {
			src := start + i
			dst := src + offset
			if src < 0 || src >= r.count || dst < 0 || dst >= r.count {
				continue
			}
			r.Set(dst, r.Get(src))
		}
	}
}
