// Package notation reads and writes the text strategy-file format a
// solved instance is exported to: a header line naming the instance,
// followed by one line per state visited in the proof, each pairing the
// state's rendered axis with the move the solver recorded for it.
package notation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/axisgame/solver/engine"
)

// WriteStrategy writes entries to w as:
//
//	<k> <f>
//	<front>[<actual>]<back> <move>
//	...
//
// A move renders as "<start> <end>" for an insertion, ">" for
// LimitFront, "<" for LimitBack. Insertion indices are offset by
// len(front), so they read as positions within the rendered line rather
// than within the bare active sequence.
func WriteStrategy(w io.Writer, k, f int, entries []engine.StrategyEntry) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", k, f); err != nil {
		return errors.Wrap(err, "notation: writing strategy header")
	}
	for i, e := range entries {
		state := engine.RenderAxisString(e.Front, e.Actual, e.Back)
		move := renderMove(e.Move, len(e.Front))
		if _, err := fmt.Fprintf(bw, "%s %s\n", state, move); err != nil {
			return errors.Wrapf(err, "notation: writing strategy entry %d", i)
		}
	}
	return errors.Wrap(bw.Flush(), "notation: flushing strategy file")
}

func renderMove(m engine.Move, offset int) string {
	switch m.Kind {
	case engine.MoveLimitFront:
		return ">"
	case engine.MoveLimitBack:
		return "<"
	case engine.MoveInsert:
		return fmt.Sprintf("%d %d", m.Start+offset, m.End+offset)
	default:
		return "?"
	}
}

// StrategyFile is a parsed strategy file: the (k, f) instance it proves,
// and the sequence of (state, move) lines recorded for it.
type StrategyFile struct {
	K, F  int
	Lines []StrategyLine
}

// StrategyLine is one parsed line of a strategy file: the literal
// rendered state text and the move parsed from it.
type StrategyLine struct {
	State string
	Move  engine.Move
}

// ParseStrategy parses the format WriteStrategy produces.
func ParseStrategy(r io.Reader) (StrategyFile, error) {
	scanner := bufio.NewScanner(r)
	var file StrategyFile

	if !scanner.Scan() {
		return file, errors.New("notation: empty strategy file")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return file, errors.Errorf("notation: malformed header %q", scanner.Text())
	}
	k, err := strconv.Atoi(header[0])
	if err != nil {
		return file, errors.Wrap(err, "notation: parsing header k")
	}
	f, err := strconv.Atoi(header[1])
	if err != nil {
		return file, errors.Wrap(err, "notation: parsing header f")
	}
	file.K, file.F = k, f

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return file, errors.Errorf("notation: malformed strategy line %d: %q", lineNo, line)
		}
		state := fields[0]
		move, err := parseMove(fields[1:])
		if err != nil {
			return file, errors.Wrapf(err, "notation: parsing move on line %d", lineNo)
		}
		file.Lines = append(file.Lines, StrategyLine{State: state, Move: move})
	}
	if err := scanner.Err(); err != nil {
		return file, errors.Wrap(err, "notation: scanning strategy file")
	}
	return file, nil
}

func parseMove(fields []string) (engine.Move, error) {
	switch {
	case fields[0] == ">":
		return engine.Move{Kind: engine.MoveLimitFront}, nil
	case fields[0] == "<":
		return engine.Move{Kind: engine.MoveLimitBack}, nil
	case len(fields) == 2:
		start, err := strconv.Atoi(fields[0])
		if err != nil {
			return engine.Move{}, errors.Wrap(err, "parsing insert start")
		}
		end, err := strconv.Atoi(fields[1])
		if err != nil {
			return engine.Move{}, errors.Wrap(err, "parsing insert end")
		}
		return engine.Move{Kind: engine.MoveInsert, Start: start, End: end}, nil
	default:
		return engine.Move{}, errors.Errorf("unrecognized move token %v", fields)
	}
}
