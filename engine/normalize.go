package engine

// NormalizeWithoutSymmetry renames the colours of events into a
// canonical order without considering the mirror reflection: End
// events are assigned fresh colour indices in the order their colour
// first appears, then any colour that only ever appears as a Start
// (i.e. a segment still open at the back boundary) is assigned the
// remaining indices in the order it is first seen overall. This makes
// two sequences that differ only by a colour permutation compare equal.
func NormalizeWithoutSymmetry(events []Event, maxColours int) []Event {
	const unset = 0xFF
	rename := make([]uint8, maxColours)
	for i := range rename {
		rename[i] = unset
	}
	next := uint8(0)
	for _, e := range events {
		if !e.IsStart() {
			c := e.Colour()
			if rename[c] == unset {
				rename[c] = next
				next++
			}
		}
	}
	out := make([]Event, len(events))
	for i, e := range events {
		c := e.Colour()
		if rename[c] == unset {
			rename[c] = next
			next++
		}
		out[i] = e.WithColour(rename[c])
	}
	return out
}

// reflect returns events reversed end-to-end with every event replaced
// by its sibling, i.e. the sequence as it would read if the axis were
// mirrored: what used to be the first Start becomes the last End.
func reflect(events []Event) []Event {
	n := len(events)
	out := make([]Event, n)
	for i, e := range events {
		out[n-1-i] = e.Sibling()
	}
	return out
}

// compareEvents returns -1, 0 or 1 comparing a and b lexicographically
// by raw event value (equivalent to comparing the packed byte, which
// weighs colour over kind — two sequences of equal length, which is all
// that ever gets compared here, are ordered this way throughout the
// solver's canonical-key arithmetic).
func compareEvents(a, b []Event) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Normalize computes the canonical form of events under both colour
// renaming and mirror symmetry: it is the lexicographically greater of
// NormalizeWithoutSymmetry(events) and NormalizeWithoutSymmetry(reflect(events)).
// flipped reports which one won, which callers need to translate a
// Move recorded against the canonical form back into the actual axis's
// orientation.
func Normalize(events []Event, maxColours int) (key []Event, flipped bool) {
	base := NormalizeWithoutSymmetry(events, maxColours)
	flip := NormalizeWithoutSymmetry(reflect(events), maxColours)
	if compareEvents(flip, base) > 0 {
		return flip, true
	}
	return base, false
}

// NormalizeKey is Normalize rendered as a string suitable for use as a
// map key.
func (a *CliqueAxis) NormalizeKey() (string, bool) {
	norm, flipped := Normalize(a.axis.Slice(), a.MaxColours())
	return string(eventBytes(norm)), flipped
}

func eventBytes(events []Event) []byte {
	b := make([]byte, len(events))
	for i, e := range events {
		b[i] = byte(e)
	}
	return b
}
