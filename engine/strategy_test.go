package engine

import "testing"

func TestExtractStrategyMatchesSolve(t *testing.T) {
	s := NewSolver(3, 1, 10)
	if !s.Solve() {
		t.Fatalf("Solve() = false, want true")
	}
	entries := s.ExtractStrategy()
	if len(entries) == 0 {
		t.Fatalf("ExtractStrategy() returned no entries for a proven win")
	}
	first := entries[0]
	if len(first.Actual) != 0 {
		t.Errorf("first entry should describe the empty axis, got %v", first.Actual)
	}
	if first.Move.Kind != MoveInsert {
		t.Errorf("first move = %+v, want an insertion", first.Move)
	}
}

func TestExtractStrategyEmptyWhenUnsolved(t *testing.T) {
	s := NewSolver(1, 2, 50)
	if s.Solve() {
		t.Fatalf("Solve() = true, want false")
	}
	if entries := s.ExtractStrategy(); len(entries) != 0 {
		t.Errorf("ExtractStrategy() = %v, want empty for a losing root", entries)
	}
}

// TestExtractStrategyIsSoundUnderReplay is spec §8's strategy-soundness
// property: replaying the recorded moves against any admissible
// colouring — not just the ones ExtractStrategy() itself walked — must
// still reach Force colours or land back on a recorded win. It drives
// the memoized decisions directly rather than through ExtractStrategy()
// so it can branch into every admissible colour at each insertion,
// including ones the adversary never actually demonstrated.
func TestExtractStrategyIsSoundUnderReplay(t *testing.T) {
	s := NewSolver(3, 3, 3)
	if !s.Solve() {
		t.Fatalf("Solve() = false, want true")
	}
	checkStrategySound(t, s, s.Axis(), 0)
}

func checkStrategySound(t *testing.T, s *Solver, axis *CliqueAxis, depth int) {
	t.Helper()
	if depth > 64 {
		t.Fatalf("strategy replay did not terminate within 64 plies")
	}
	if axis.ColoursUsed() >= s.Force {
		return
	}
	key, flipped := axis.NormalizeKey()
	entry, ok := s.Table().Get(key)
	if !ok || entry.Kind != EntryWinning {
		t.Fatalf("state %q reached during replay is not a recorded win", axis.Render())
	}
	move := entry.Move
	if flipped {
		move = move.Flip(axis.Len())
	}
	switch move.Kind {
	case MoveLimitFront:
		rev, ok := axis.LimitFront()
		if !ok {
			t.Fatalf("recorded LimitFront is inapplicable at %q", axis.Render())
		}
		checkStrategySound(t, s, axis, depth+1)
		axis.Apply(rev)
	case MoveLimitBack:
		rev, ok := axis.LimitBack()
		if !ok {
			t.Fatalf("recorded LimitBack is inapplicable at %q", axis.Render())
		}
		checkStrategySound(t, s, axis, depth+1)
		axis.Apply(rev)
	case MoveInsert:
		limit := axis.ColoursUsed() + 1
		colours := axis.AdmissibleColours(move.Start, move.End, limit)
		if len(colours) == 0 {
			t.Fatalf("recorded insertion has no admissible colour at %q", axis.Render())
		}
		for _, colour := range colours {
			rev, ok := axis.InsertSegment(move.Start, move.End, colour)
			if !ok {
				t.Fatalf("recorded insertion %+v is inapplicable at %q", move, axis.Render())
			}
			checkStrategySound(t, s, axis, depth+1)
			axis.Apply(rev)
		}
	default:
		t.Fatalf("state %q recorded move kind %v, want Insert or a boundary limit", axis.Render(), move.Kind)
	}
}
