// Tool bench runs the solver over a small fixed table of (F, K,
// maxEvents) instances and reports the number of states discovered and
// the solving rate for each, the same regression-style shape as the
// teacher's own chess benchmark: a fixed table of fixtures, one line of
// output per fixture, and an aggregate rate at the end.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/axisgame/solver/engine"
)

// Fixtures mirror the solved (F, K, maxEvents) scenarios from the
// engine package's own regression table, so this benchmark is only
// ever timing known wins rather than guessing at new ones.
var instances = []instanceInfo{
	{description: "two colours, clique of two", f: 2, k: 2, maxEvents: 2},
	{description: "three colours, clique of three", f: 3, k: 3, maxEvents: 3},
	{description: "four colours, clique of four", f: 4, k: 4, maxEvents: 4},
	{description: "three colours, clique of two", f: 3, k: 2, maxEvents: 4},
	{description: "six colours, clique of six", f: 6, k: 6, maxEvents: 6},
	{description: "five colours, clique of three", f: 5, k: 3, maxEvents: 6},
}

var hashMB = flag.Int("hash-mb", 0, "transposition table size hint in megabytes")

type instanceInfo struct {
	description string
	f, k        int
	maxEvents   int
}

// eval runs the solver for one instance and returns the number of
// distinct canonical states the search discovered.
func (inst *instanceInfo) eval(hashMB int) (states int, won bool) {
	solver := engine.NewSolverWithHashSize(inst.k, inst.f, inst.maxEvents, hashMB)
	won = solver.Solve()
	return solver.StatesDiscovered(), won
}

func evalAll(hashMB int) (int, float64) {
	start := time.Now()
	var states int
	for i := range instances {
		inst := &instances[i]
		n, won := inst.eval(hashMB)
		states += n
		log.Printf("#%d %6d states won=%-5v %s", i, n, won, inst.description)
	}
	elapsed := time.Since(start)
	return states, float64(states) / elapsed.Seconds()
}

func main() {
	flag.Parse()
	states, statesPerSec := evalAll(*hashMB)
	fmt.Printf("states %d\n", states)
	fmt.Printf("   sps %.0f\n", statesPerSec)
}
