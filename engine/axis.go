package engine

import "fmt"

// Axis is the event queue plus the two boundary reservoirs that
// LimitFront/LimitBack stash discarded events into. Every mutating
// method here is reversible: it returns a History value that, applied
// back through Apply, restores the exact prior state. This mirrors the
// make/unmake discipline a search tree needs to explore and backtrack
// without reallocating state at every node.
type Axis struct {
	events eventQueue
	front  eventQueue // reservoir of events trimmed off the front
	back   eventQueue // reservoir of events trimmed off the back
}

// NewAxis returns an empty axis.
func NewAxis() *Axis {
	return &Axis{}
}

// Len returns the number of events in the active sequence.
func (a *Axis) Len() int {
	return a.events.Len()
}

// Events returns a copy of the active event sequence.
func (a *Axis) Events() []Event {
	return a.events.Clone()
}

// At returns the event at index i of the active sequence.
func (a *Axis) At(i int) Event {
	return a.events.At(i)
}

// InsertSegment inserts a new segment of the given colour spanning
// [startIndex, endIndex) of the active sequence: a Start goes in at
// startIndex, then an End goes in at endIndex+1 of the
// already-widened sequence. It fails if either index exceeds the
// current length.
//
// Inverse: RemoveSegment(startIndex, endIndex+1).
func (a *Axis) InsertSegment(startIndex, endIndex int, colour uint8) (History, bool) {
	n := a.events.Len()
	if startIndex < 0 || startIndex > n || endIndex < 0 || endIndex > n {
		return History{}, false
	}
	a.events.InsertAt(startIndex, NewStart(colour))
	a.events.InsertAt(endIndex+1, NewEnd(colour))
	return History{Kind: HRemoveSegment, StartIndex: startIndex, EndIndex: endIndex + 1}, true
}

// RemoveSegment removes the events at startIndex and endIndex, which
// must carry the same colour: the event at endIndex is removed first
// so that removing the one at startIndex is unaffected by the shift.
// Fails if the indices are out of range or the colours disagree.
//
// Inverse: InsertSegment(startIndex, endIndex-1, colour).
func (a *Axis) RemoveSegment(startIndex, endIndex int) (History, bool) {
	n := a.events.Len()
	if startIndex < 0 || endIndex < 0 || startIndex >= n || endIndex >= n || startIndex >= endIndex {
		return History{}, false
	}
	start := a.events.At(startIndex)
	end := a.events.At(endIndex)
	if start.Colour() != end.Colour() {
		return History{}, false
	}
	colour := start.Colour()
	a.events.RemoveAt(endIndex)
	a.events.RemoveAt(startIndex)
	return History{Kind: HInsertSegment, StartIndex: startIndex, EndIndex: endIndex - 1, Colour: colour}, true
}

// LimitFront finds the smallest index of an End event, moves every
// event before it onto the front reservoir, then discards that End.
// Fails if there is no End event in the active sequence.
//
// Inverse: EventInsertFront(end, lost), where lost is the number of
// events moved to the reservoir.
func (a *Axis) LimitFront() (History, bool) {
	n := a.events.Len()
	idx := -1
	for i := 0; i < n; i++ {
		if !a.events.At(i).IsStart() {
			idx = i
			break
		}
	}
	if idx == -1 {
		return History{}, false
	}
	end := a.events.At(idx)
	lost := idx
	for i := 0; i < lost; i++ {
		a.front.PushBack(a.events.PopFront())
	}
	a.events.PopFront() // discard the End itself
	return History{Kind: HEventInsertFront, Event: end, Lost: lost}, true
}

// LimitBack is the mirror of LimitFront: it finds the largest index of
// a Start event, moves every event after it onto the back reservoir,
// then discards that Start. Fails if there is no Start event.
//
// Inverse: EventInsertBack(start, lost).
func (a *Axis) LimitBack() (History, bool) {
	n := a.events.Len()
	idx := -1
	for i := n - 1; i >= 0; i-- {
		if a.events.At(i).IsStart() {
			idx = i
			break
		}
	}
	if idx == -1 {
		return History{}, false
	}
	start := a.events.At(idx)
	lost := n - 1 - idx
	for i := 0; i < lost; i++ {
		a.back.PushFront(a.events.PopBack())
	}
	a.events.PopBack() // discard the Start itself
	return History{Kind: HEventInsertBack, Event: start, Lost: lost}, true
}

// EventInsertFront is the inverse of LimitFront: it restores the
// discarded End to the front of the active sequence, then pulls the
// lost events back out of the front reservoir, in their original
// order. A History value only ever reaches here as the exact inverse
// LimitFront just returned, so the reservoir must already hold at
// least lost events; coming up short is an invariant violation, not a
// normal inadmissible move, and aborts the process.
//
// Inverse: LimitFront.
func (a *Axis) EventInsertFront(end Event, lost int) (History, bool) {
	if lost > a.front.Len() {
		panic(fmt.Sprintf("engine: invariant violation: front reservoir underflow, need %d events, have %d", lost, a.front.Len()))
	}
	a.events.PushFront(end)
	for i := 0; i < lost; i++ {
		a.events.PushFront(a.front.PopBack())
	}
	return History{Kind: HLimitFront}, true
}

// EventInsertBack is the inverse of LimitBack. See EventInsertFront
// for why a reservoir shortfall here panics instead of failing soft.
//
// Inverse: LimitBack.
func (a *Axis) EventInsertBack(start Event, lost int) (History, bool) {
	if lost > a.back.Len() {
		panic(fmt.Sprintf("engine: invariant violation: back reservoir underflow, need %d events, have %d", lost, a.back.Len()))
	}
	a.events.PushBack(start)
	for i := 0; i < lost; i++ {
		a.events.PushBack(a.back.PopFront())
	}
	return History{Kind: HLimitBack}, true
}

// Apply dispatches a History value to the operation it names, returning
// its own inverse. This is the single mutation entry point a solver
// needs: every forward move and every rollback goes through it.
func (a *Axis) Apply(h History) (History, bool) {
	switch h.Kind {
	case HInsertSegment:
		return a.InsertSegment(h.StartIndex, h.EndIndex, h.Colour)
	case HRemoveSegment:
		return a.RemoveSegment(h.StartIndex, h.EndIndex)
	case HLimitFront:
		return a.LimitFront()
	case HLimitBack:
		return a.LimitBack()
	case HEventInsertFront:
		return a.EventInsertFront(h.Event, h.Lost)
	case HEventInsertBack:
		return a.EventInsertBack(h.Event, h.Lost)
	default:
		return History{}, false
	}
}
