package engine

import "fmt"

// CliqueAxis wraps an Axis with the clique bound K and the derived
// intersection vector that every clique-bounded query is computed from.
// It owns all mutation: callers never touch the inner Axis directly, so
// the intersection vector can never go stale.
type CliqueAxis struct {
	axis          *Axis
	k             int
	intersections []int
}

// NewCliqueAxis returns an empty axis bounded to clique size k.
func NewCliqueAxis(k int) *CliqueAxis {
	a := &CliqueAxis{axis: NewAxis(), k: k}
	a.recompute()
	return a
}

// K returns the clique bound.
func (a *CliqueAxis) K() int {
	return a.k
}

// MaxColours returns the largest number of distinct colours a sequence
// bounded to clique size K can ever use: 2K-1.
func (a *CliqueAxis) MaxColours() int {
	return a.k*2 - 1
}

// Len returns the length of the active event sequence.
func (a *CliqueAxis) Len() int {
	return a.axis.Len()
}

// Events returns a copy of the active event sequence.
func (a *CliqueAxis) Events() []Event {
	return a.axis.Events()
}

// Intersections returns the clique-size-at-each-gap vector: length
// Len()+1, where Intersections()[i] is the number of segments spanning
// the gap immediately before index i.
func (a *CliqueAxis) Intersections() []int {
	return a.intersections
}

// SegmentsOpenedAtFront counts the End events in the active sequence
// whose matching Start does not also appear in it: these are the
// segments that were already open when the front reservoir most
// recently swallowed their Start.
func (a *CliqueAxis) SegmentsOpenedAtFront() int {
	opened := make([]bool, a.MaxColours())
	result := 0
	for _, e := range a.axis.Slice() {
		if e.IsStart() {
			opened[e.Colour()] = true
		} else if !opened[e.Colour()] {
			result++
		}
	}
	return result
}

// ColoursUsed returns the number of distinct colours present in the
// active sequence.
func (a *CliqueAxis) ColoursUsed() int {
	used := make([]bool, a.MaxColours())
	count := 0
	for _, e := range a.axis.Slice() {
		if !used[e.Colour()] {
			used[e.Colour()] = true
			count++
		}
	}
	return count
}

// recompute rebuilds the intersection vector and enforces the clique
// invariant along the way: the vector a mutation would produce must
// never exceed K, and must never go negative (an End closing with
// nothing open). Both are invariant violations, not admissibility
// failures — the movegen and solver never propose a move that reaches
// them, so a breach here means the caller bypassed movegen, and the
// process aborts rather than returning a state nothing upstream checks
// for.
func (a *CliqueAxis) recompute() {
	current := a.SegmentsOpenedAtFront()
	events := a.axis.Slice()
	result := make([]int, 0, len(events)+1)
	for _, e := range events {
		result = append(result, current)
		if e.IsStart() {
			current++
			if current > a.k {
				panic(fmt.Sprintf("engine: invariant violation: clique bound K=%d exceeded (intersection=%d)", a.k, current))
			}
		} else {
			current--
			if current < 0 {
				panic("engine: invariant violation: intersection count went negative, axis is imbalanced")
			}
		}
	}
	result = append(result, current)
	a.intersections = result
}

// Apply delegates a history operation to the underlying axis and
// rebuilds the intersection vector, then returns the inverse of the
// operation it performed.
func (a *CliqueAxis) Apply(h History) (History, bool) {
	rev, ok := a.axis.Apply(h)
	a.recompute()
	return rev, ok
}

// InsertSegment inserts a new segment and rebuilds the intersection
// vector. See Axis.InsertSegment.
func (a *CliqueAxis) InsertSegment(startIndex, endIndex int, colour uint8) (History, bool) {
	rev, ok := a.axis.InsertSegment(startIndex, endIndex, colour)
	a.recompute()
	return rev, ok
}

// RemoveSegment removes a segment and rebuilds the intersection vector.
func (a *CliqueAxis) RemoveSegment(startIndex, endIndex int) (History, bool) {
	rev, ok := a.axis.RemoveSegment(startIndex, endIndex)
	a.recompute()
	return rev, ok
}

// LimitFront shrinks the front boundary and rebuilds the intersection
// vector.
func (a *CliqueAxis) LimitFront() (History, bool) {
	rev, ok := a.axis.LimitFront()
	a.recompute()
	return rev, ok
}

// LimitBack shrinks the back boundary and rebuilds the intersection
// vector.
func (a *CliqueAxis) LimitBack() (History, bool) {
	rev, ok := a.axis.LimitBack()
	a.recompute()
	return rev, ok
}
