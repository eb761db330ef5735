package engine

// StartAdmissible reports whether a new segment may start at index s:
// it may, unless the clique already spans the gap at s.
func (a *CliqueAxis) StartAdmissible(s int) bool {
	return a.intersections[s] < a.k
}

// ValidSegmentEnds computes the admissible range of end indices for a
// segment starting at s, walking forward from s and tracking how many
// segments opened before s are still open (openedBefore). While that
// count is nonzero the walk cannot stop, since doing so would end a
// segment whose start index is not yet decided; it also bails out
// early if extending would push some gap's clique size to K. Once the
// count reaches zero, minEnd is the first admissible end and the walk
// continues extending maxEnd while the clique bound allows it and the
// next event is itself a Start (splitting a Start/Start boundary would
// also be fine to end at, so the walk only needs to stop once it would
// have to cross an End).
func (a *CliqueAxis) ValidSegmentEnds(s int) (minEnd, maxEnd int, ok bool) {
	openedBefore := a.SegmentsOpenedAtFront()
	events := a.axis.Slice()
	for i := 0; i < s; i++ {
		if events[i].IsStart() {
			openedBefore++
		} else {
			openedBefore--
		}
	}
	i := s
	n := len(events)
	for i < n {
		if openedBefore == 0 {
			break
		}
		if a.intersections[i+1] >= a.k {
			return 0, 0, false
		}
		if !events[i].IsStart() {
			openedBefore--
		}
		i++
	}
	if openedBefore != 0 {
		return 0, 0, false
	}
	minEnd = i
	for i < n {
		if a.intersections[i+1] >= a.k {
			break
		}
		if !events[i].IsStart() {
			break
		}
		i++
	}
	return minEnd, i, true
}

// ValidStarts returns every admissible start index in 0..=Len().
func (a *CliqueAxis) ValidStarts() []int {
	var out []int
	for i := 0; i <= a.Len(); i++ {
		if a.StartAdmissible(i) {
			out = append(out, i)
		}
	}
	return out
}

// ValidSegments enumerates every (start, end) pair a new segment could
// legally span.
func (a *CliqueAxis) ValidSegments() [][2]int {
	var out [][2]int
	for _, s := range a.ValidStarts() {
		minEnd, maxEnd, ok := a.ValidSegmentEnds(s)
		if !ok {
			continue
		}
		for e := minEnd; e <= maxEnd; e++ {
			out = append(out, [2]int{s, e})
		}
	}
	return out
}

// CollidingColours reports, for each colour, whether a segment spanning
// [start, end) of the active sequence would collide with it (i.e. the
// colour is already in use somewhere within that span).
func (a *CliqueAxis) CollidingColours(start, end int) []bool {
	collisions := make([]bool, a.MaxColours())
	events := a.axis.Slice()
	for i := start; i < end; i++ {
		collisions[events[i].Colour()] = true
	}
	return collisions
}

// AdmissibleColours returns every colour below limit that would not
// collide with an existing segment spanning [start, end). limit caps
// the search to the colours already in play plus one fresh colour,
// which is all the Builder ever needs to try: using a colour beyond
// coloursUsed()+1 can never do better than using the (coloursUsed()+1)th
// one, since they are interchangeable before any of them is used.
func (a *CliqueAxis) AdmissibleColours(start, end, limit int) []uint8 {
	if limit > a.MaxColours() {
		limit = a.MaxColours()
	}
	collisions := a.CollidingColours(start, end)
	var out []uint8
	for c := 0; c < limit; c++ {
		if !collisions[c] {
			out = append(out, uint8(c))
		}
	}
	return out
}
