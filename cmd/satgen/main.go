// Command satgen generates random CNF instances using this module's own
// solver as the satisfiability oracle.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cdclsat/solver/generator"
)

func main() {
	os.Exit(run())
}

func run() int {
	outDir := flag.String("out", "tests", "output directory for generated instances")
	flag.Usage = flagUsage
	flag.Parse()

	args := flag.Args()
	if len(args) != 5 {
		flagUsage()
		return 2
	}

	numVars, err := strconv.Atoi(args[0])
	numClauses, err2 := strconv.Atoi(args[1])
	minLen, err3 := strconv.Atoi(args[2])
	maxLen, err4 := strconv.Atoi(args[3])
	numFiles, err5 := strconv.Atoi(args[4])

	if err := firstErr(err, err2, err3, err4, err5); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	g := generator.New(time.Now().UnixNano())
	params := generator.Params{NumVars: numVars, NumClauses: numClauses, MinLen: minLen, MaxLen: maxLen}

	for i := 1; i <= numFiles; i++ {
		p, sat := g.Generate(params)
		filename := fmt.Sprintf("test%d.cnf", i)
		outPath := filepath.Join(*outDir, filename)

		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		err = generator.Write(f, p, sat)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("SAT instance generated and saved to %s\n", outPath)
	}
	return 0
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func flagUsage() {
	fmt.Fprintf(os.Stderr, "Usage: satgen [-out dir] num_vars num_clauses min_len max_len num_files\n\nValid Arguments:\n")
	flag.PrintDefaults()
}
