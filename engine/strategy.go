package engine

// StrategyEntry is one line of an extracted strategy: the rendered
// boundary state the Builder faces and the winning move recorded for
// it.
type StrategyEntry struct {
	Front  []Event
	Actual []Event
	Back   []Event
	Move   Move
}

// ExtractStrategy replays the memoized winning decisions starting from
// the current (normally empty) axis, producing one entry per distinct
// state visited along every branch of the proof: a LimitFront/LimitBack
// move recurses once, an Insert move recurses once per colour the
// solver considered admissible at that state, so that the strategy
// covers every colouring the adversary could have chosen. A visited set
// of canonical keys stops the walk from looping back through a state it
// has already recorded.
func (s *Solver) ExtractStrategy() []StrategyEntry {
	visited := make(map[string]bool)
	var out []StrategyEntry
	s.extract(visited, &out)
	return out
}

func (s *Solver) extract(visited map[string]bool, out *[]StrategyEntry) {
	key, flipped := s.axis.NormalizeKey()
	if visited[key] {
		return
	}
	visited[key] = true

	entry, ok := s.table.Get(key)
	if !ok || entry.Kind != EntryWinning {
		return
	}
	move := entry.Move
	if flipped {
		move = move.Flip(s.axis.Len())
	}

	*out = append(*out, StrategyEntry{
		Front:  s.axis.FrontBoundary(),
		Actual: s.axis.Events(),
		Back:   s.axis.BackBoundary(),
		Move:   move,
	})

	switch move.Kind {
	case MoveLimitFront:
		rev, ok := s.axis.LimitFront()
		if !ok {
			return
		}
		s.extract(visited, out)
		s.axis.Apply(rev)
	case MoveLimitBack:
		rev, ok := s.axis.LimitBack()
		if !ok {
			return
		}
		s.extract(visited, out)
		s.axis.Apply(rev)
	case MoveInsert:
		limit := s.axis.ColoursUsed() + 1
		for _, colour := range s.axis.AdmissibleColours(move.Start, move.End, limit) {
			rev, ok := s.axis.InsertSegment(move.Start, move.End, colour)
			if !ok {
				continue
			}
			s.extract(visited, out)
			s.axis.Apply(rev)
		}
	}
}
