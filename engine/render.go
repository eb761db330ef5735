package engine

// FrontBoundary reconstructs, purely from the active sequence, a
// synthetic "missing Start" event for every colour that closes in the
// active sequence without ever opening in it — the segments whose Start
// is somewhere out in the front reservoir. This is a display
// convenience, one event per dangling colour, not a replay of the
// reservoir's actual contents.
func (a *CliqueAxis) FrontBoundary() []Event {
	started := make([]bool, a.MaxColours())
	var front []Event
	for _, e := range a.axis.Slice() {
		if e.IsStart() {
			started[e.Colour()] = true
		} else if !started[e.Colour()] {
			started[e.Colour()] = true
			front = append(front, e.Sibling())
		}
	}
	return front
}

// BackBoundary is the mirror of FrontBoundary: one synthetic "missing
// End" event for every colour that opens in the active sequence without
// ever closing in it.
func (a *CliqueAxis) BackBoundary() []Event {
	finished := make([]bool, a.MaxColours())
	var back []Event
	events := a.axis.Slice()
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		if !e.IsStart() {
			finished[e.Colour()] = true
		} else if !finished[e.Colour()] {
			finished[e.Colour()] = true
			back = append(back, e.Sibling())
		}
	}
	return back
}

// RenderAxisString renders front/actual/back as "<front>[<actual>]<back>",
// one character per event via Event.Char.
func RenderAxisString(front, actual, back []Event) string {
	buf := make([]byte, 0, len(front)+len(actual)+len(back)+2)
	for _, e := range front {
		buf = append(buf, e.Char())
	}
	buf = append(buf, '[')
	for _, e := range actual {
		buf = append(buf, e.Char())
	}
	buf = append(buf, ']')
	for _, e := range back {
		buf = append(buf, e.Char())
	}
	return string(buf)
}

// Render renders the axis's current state the same way a strategy file
// entry does.
func (a *CliqueAxis) Render() string {
	return RenderAxisString(a.FrontBoundary(), a.axis.Slice(), a.BackBoundary())
}
