package engine

// defaultMaxDepth bounds how many plies Evaluate will recurse before
// falling back to a heuristic return. The event budget already forces
// a reduction long before most lines reach this, since every insertion
// grows the active sequence and a limit move shrinks it back down; this
// exists only as a backstop against a pathological insert/reduce cycle
// that never revisits a memoized state, the Go analogue of the fixed
// goroutine stack size the original solver's search thread was given.
const defaultMaxDepth = 4096

// Solver drives the minimax search over a CliqueAxis, proving whether
// the Builder can force Force distinct colours before the active
// sequence is confined to MaxEvents events.
type Solver struct {
	axis      *CliqueAxis
	Force     int
	MaxEvents int
	MaxDepth  int
	table     *Table
}

// NewSolver returns a solver for the (k, force, maxEvents) instance.
func NewSolver(k, force, maxEvents int) *Solver {
	return NewSolverWithHashSize(k, force, maxEvents, 0)
}

// NewSolverWithHashSize is NewSolver, but pre-sizes the transposition
// table for roughly hashMB megabytes of entries. A non-positive hashMB
// leaves the table's default, unsized growth behaviour.
func NewSolverWithHashSize(k, force, maxEvents, hashMB int) *Solver {
	return &Solver{
		axis:      NewCliqueAxis(k),
		Force:     force,
		MaxEvents: maxEvents,
		MaxDepth:  defaultMaxDepth,
		table:     NewTableWithCapacity(hashMB),
	}
}

// Axis exposes the underlying axis, mainly so a CLI can render it.
func (s *Solver) Axis() *CliqueAxis {
	return s.axis
}

// Table exposes the transposition table, mainly for strategy extraction
// and bench reporting.
func (s *Solver) Table() *Table {
	return s.table
}

// StatesDiscovered returns the number of distinct canonical states the
// search has recorded.
func (s *Solver) StatesDiscovered() int {
	return s.table.Len()
}

// Solve runs the search from the current (normally empty) axis and
// reports whether the Builder can force Force colours.
func (s *Solver) Solve() bool {
	return s.Evaluate(s.MaxDepth) >= s.Force
}

// Evaluate computes the best colour count the Builder can force from
// the current axis, searching at most depth plies deep. A result of at
// least s.Force means the state is a proven win.
func (s *Solver) Evaluate(depth int) int {
	key, flipped := s.axis.NormalizeKey()

	if s.axis.ColoursUsed() >= s.Force {
		s.table.SetWinning(key, Move{Kind: MoveNone})
		return s.axis.ColoursUsed()
	}

	if v, ok := s.lookup(key); ok {
		return v
	}

	if mv, ok := s.checkReductions(); ok {
		s.recordWinning(key, flipped, mv)
		return s.Force
	}

	if depth <= 0 {
		return s.axis.ColoursUsed()
	}

	s.table.SetActive(key)

	if s.axis.Len() >= s.MaxEvents {
		return s.forceReductions(key, flipped, depth)
	}
	return s.tryInsertions(key, flipped, depth)
}

func (s *Solver) lookup(key string) (int, bool) {
	e, ok := s.table.Get(key)
	if !ok {
		return 0, false
	}
	switch e.Kind {
	case EntryWinning:
		return s.Force, true
	case EntryLosing:
		return e.Bound, true
	default: // EntryActive: a cycle back to an ancestor on the stack
		return 0, true
	}
}

// checkReductions tentatively applies each of LimitFront and LimitBack,
// probing (but not recursing into) the resulting state's memo entry. If
// either already resolved to a win, that reduction alone proves the
// current state wins too.
func (s *Solver) checkReductions() (Move, bool) {
	for _, kind := range [...]MoveKind{MoveLimitFront, MoveLimitBack} {
		rev, ok := s.applyBoundary(kind)
		if !ok {
			continue
		}
		key, _ := s.axis.NormalizeKey()
		entry, found := s.table.Get(key)
		s.axis.Apply(rev)
		if found && entry.Kind == EntryWinning {
			return Move{Kind: kind}, true
		}
	}
	return Move{}, false
}

func (s *Solver) forceReductions(key string, flipped bool, depth int) int {
	best := -1
	var bestMove Move
	for _, kind := range [...]MoveKind{MoveLimitFront, MoveLimitBack} {
		rev, ok := s.applyBoundary(kind)
		if !ok {
			continue
		}
		result := s.Evaluate(depth - 1)
		s.axis.Apply(rev)
		if result > best {
			best = result
			bestMove = Move{Kind: kind}
		}
		if result >= s.Force {
			s.recordWinning(key, flipped, bestMove)
			return s.Force
		}
	}
	if best < 0 {
		best = s.axis.ColoursUsed()
	}
	s.table.SetLosing(key, best)
	return best
}

func (s *Solver) tryInsertions(key string, flipped bool, depth int) int {
	best := -1
	var bestMove Move
	for _, start := range s.axis.ValidStarts() {
		minEnd, maxEnd, ok := s.axis.ValidSegmentEnds(start)
		if !ok {
			continue
		}
		for end := minEnd; end <= maxEnd; end++ {
			limit := s.axis.ColoursUsed() + 1
			minOutcome := -1
			for _, colour := range s.axis.AdmissibleColours(start, end, limit) {
				rev, ok := s.axis.InsertSegment(start, end, colour)
				if !ok {
					continue
				}
				result := s.Evaluate(depth - 1)
				s.axis.Apply(rev)
				if minOutcome == -1 || result < minOutcome {
					minOutcome = result
				}
			}
			if minOutcome == -1 {
				continue
			}
			if minOutcome > best {
				best = minOutcome
				bestMove = Move{Kind: MoveInsert, Start: start, End: end}
			}
			if best >= s.Force {
				s.recordWinning(key, flipped, bestMove)
				return s.Force
			}
		}
	}
	if best < 0 {
		best = s.axis.ColoursUsed()
	}
	s.table.SetLosing(key, best)
	return best
}

// applyBoundary applies a LimitFront or LimitBack move and returns its
// inverse.
func (s *Solver) applyBoundary(kind MoveKind) (History, bool) {
	switch kind {
	case MoveLimitFront:
		return s.axis.LimitFront()
	case MoveLimitBack:
		return s.axis.LimitBack()
	default:
		return History{}, false
	}
}

// recordWinning stores move as the canonical-orientation winning move
// for key: if the current axis's canonical form required a flip to
// reach key, the move is flipped before it is stored, so that any other
// occurrence reaching the same canonical key in its unflipped
// orientation can apply the move directly.
func (s *Solver) recordWinning(key string, flipped bool, move Move) {
	canonical := move
	if flipped {
		canonical = move.Flip(s.axis.Len())
	}
	s.table.SetWinning(key, canonical)
}
