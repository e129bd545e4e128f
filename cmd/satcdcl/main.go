// Command satcdcl is the CLI driver for the CDCL solver: it reads a
// DIMACS CNF file, solves it, and reports SAT/UNSAT/UNKNOWN. SAT and
// UNSAT exit with 10 and 20 as in the DIMACS-competition convention;
// UNKNOWN exits with 30.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cdclsat/solver/config"
	"github.com/cdclsat/solver/encoding"
	"github.com/cdclsat/solver/solver"
)

func main() {
	os.Exit(run())
}

func run() int {
	conf := config.New()
	budget, timeoutSecs := 0, 0.0
	heuristic, restart := string(config.VSIDS), string(config.FixedRestarts)

	flag.UintVar(&conf.Models, "m", 1, "number of models to find")
	flag.Float64Var(&conf.VarDecay, "decay-var", conf.VarDecay, "variable decay constant")
	flag.Float64Var(&conf.ClaDecay, "decay-cla", conf.ClaDecay, "clause decay constant")
	flag.StringVar(&heuristic, "heuristic", heuristic, "decision heuristic: vsids|jw")
	flag.StringVar(&restart, "restart", restart, "restart strategy: fixed|luby")
	flag.IntVar(&budget, "budget", 0, "max conflicts before reporting UNKNOWN (0 = unbounded)")
	flag.Float64Var(&timeoutSecs, "timeout", 0, "wall-clock seconds before reporting UNKNOWN (0 = unbounded)")
	flag.Int64Var(&conf.Seed, "seed", 0, "random seed")
	flag.BoolVar(&conf.Verbose, "v", false, "enable verbose solver tracing")
	flag.Usage = flagUsage
	flag.Parse()

	conf.Heuristic = config.Heuristic(heuristic)
	conf.RestartStrategy = config.RestartStrategy(restart)
	conf.ConflictBudget = budget
	if timeoutSecs > 0 {
		conf.Deadline = time.Now().Add(time.Duration(timeoutSecs * float64(time.Second)))
	}

	path := "test.cnf"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	return solveFile(conf, path)
}

// solveFile is separated from run so InternalInvariantViolation panics
// from deep inside the solver are recovered at exactly this boundary,
// rather than producing a raw stack trace.
func solveFile(conf *config.Config, path string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*solver.InternalInvariantViolation); ok {
				fmt.Fprintln(os.Stderr, iv.Error())
				code = 1
				return
			}
			panic(r)
		}
	}()

	prob, err := readCNF(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	s := solver.New(conf)
	// Variables named only in the header, not in any clause, still need a
	// value in the final assignment.
	s.EnsureVars(prob.NVars)
	for _, clause := range prob.Clauses {
		if err := s.AddClause(clause); err != nil {
			// An empty clause, or a unit clause contradicting one already
			// on the trail, makes the formula unsatisfiable on its own —
			// no search is needed.
			fmt.Fprintln(os.Stderr, err)
			fmt.Println("UNSAT")
			return 20
		}
	}
	conf.Logger.Printf("Starting satcdcl %s solver", solver.Version())

	tStart := time.Now()
	outcome, models := solveInstance(s, conf)
	conf.Logger.Print("Finished solving")

	displayStats(s, time.Since(tStart))

	switch outcome {
	case solver.Sat:
		fmt.Println("SAT")
		displayModels(models)
		return 10
	case solver.Unknown:
		fmt.Println("UNKNOWN")
		return 30
	default:
		fmt.Println("UNSAT")
		return 20
	}
}

func solveInstance(s *solver.Solver, conf *config.Config) (solver.Outcome, [][]int) {
	if conf.Models > 1 {
		models := s.SolveMany(nil, conf.Models)
		if len(models) == 0 {
			return solver.Unsat, nil
		}
		return solver.Sat, models
	}
	outcome := s.Solve(nil)
	if outcome == solver.Sat {
		return outcome, [][]int{s.Answer()}
	}
	return outcome, nil
}

func displayModels(models [][]int) {
	for _, model := range models {
		for _, p := range model {
			fmt.Printf("%d ", p)
		}
		fmt.Print("0\n")
	}
}

func displayStats(s *solver.Solver, t time.Duration) {
	fmt.Fprint(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Time Taken:    %fs\n", t.Seconds())
	fmt.Fprintf(os.Stderr, "Variables:     %d\n", s.NVars())
	fmt.Fprintf(os.Stderr, "Constraints:   %d\n", s.NConstrs())
	fmt.Fprintf(os.Stderr, "Conflicts:     %d\n", s.NConflicts())
	fmt.Fprintf(os.Stderr, "Propagations:  %d\n", s.NPropagations())
	fmt.Fprintf(os.Stderr, "Restarts:      %d\n", s.NRestarts())
	fmt.Fprintf(os.Stderr, "Decisions:     %d\n", s.NDecisions())
	fmt.Fprint(os.Stderr, "\n")
}

func flagUsage() {
	fmt.Fprintf(os.Stderr, "Usage: satcdcl [args] [input.cnf]\n\nValid Arguments:\n")
	flag.PrintDefaults()
}

func readCNF(path string) (*encoding.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return encoding.Parse(bufio.NewReader(f))
}
