package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/ecivini/cdcl-sat-solver/internal/parsers"
	"github.com/ecivini/cdcl-sat-solver/internal/sat"
)

var flagVerbose = flag.Bool(
	"v",
	false,
	"print search statistics on stderr",
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() != 1 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("usage: %s [flags] <instance file>", os.Args[0])
	}
	return &config{
		instanceFile: flag.Arg(0),
		verbose:      *flagVerbose,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

type config struct {
	instanceFile string
	verbose      bool
	memProfile   bool
	cpuProfile   bool
}

func run(cfg *config) error {
	s := sat.NewDefaultSolver()
	gzipped := strings.HasSuffix(cfg.instanceFile, ".gz")
	if err := parsers.LoadDIMACS(cfg.instanceFile, gzipped, s); err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("Formula: %s\n\n", s.Formula())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	if cfg.verbose {
		fmt.Fprintf(os.Stderr, "c time (sec):   %f\n", elapsed.Seconds())
		fmt.Fprintf(os.Stderr, "c decisions:    %d\n", s.TotalDecisions)
		fmt.Fprintf(os.Stderr, "c propagations: %d\n", s.TotalPropagations)
		fmt.Fprintf(os.Stderr, "c conflicts:    %d\n", s.TotalConflicts)
		fmt.Fprintf(os.Stderr, "c learnts:      %d\n", s.TotalLearnts)
	}

	switch status {
	case sat.True:
		fmt.Println("Formula is SAT")
		model := s.Model()
		ids := make([]int, 0, len(model))
		for id := range model {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			value := "⊥"
			if model[id] {
				value = "⊤"
			}
			fmt.Printf("\tVariable %d = %s\n", id, value)
		}
	case sat.False:
		fmt.Println("Formula is UNSAT.")
	default:
		return fmt.Errorf("search stopped before reaching a decision")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
