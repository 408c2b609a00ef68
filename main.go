// Command scenariosat decides authorization scenario problems stored as
// DIMACS CNF files: it prints a scenario satisfying every clause, or
// reports the problem unsatisfiable. With -count it enumerates all
// scenarios instead.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/permitlab/scenariosat/dimacs"
	"github.com/permitlab/scenariosat/scenario"
)

type config struct {
	Backend string `yaml:"backend"`
	Verbose bool   `yaml:"verbose"`
}

func main() {
	var (
		backendName string
		configPath  string
		count       bool
		verbose     bool
	)
	flag.StringVar(&backendName, "backend", "gini", "backend to solve with (gini or logic)")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.BoolVar(&count, "count", false, "count scenarios rather than printing the first one")
	flag.BoolVar(&verbose, "verbose", false, "log solver activity on stderr")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] file.cnf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config{Backend: backendName, Verbose: verbose}
	if configPath != "" {
		if err := loadConfig(configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
			os.Exit(1)
		}
		// Flags set explicitly win over the config file.
		if flag.CommandLine.Changed("backend") {
			cfg.Backend = backendName
		}
		if flag.CommandLine.Changed("verbose") {
			cfg.Verbose = verbose
		}
	}

	backend, err := backendFor(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	engine := scenario.New(backend)
	if cfg.Verbose {
		engine.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	clauses, err := parse(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("c solving %s with the %s backend\n", flag.Arg(0), backend.Name())
	if count {
		countScenarios(engine, clauses)
	} else {
		solve(engine, clauses)
	}
}

func backendFor(name string) (scenario.Backend, error) {
	switch strings.ToLower(name) {
	case "gini":
		return scenario.Gini{}, nil
	case "logic":
		return scenario.Logic{}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want gini or logic)", name)
	}
}

func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func parse(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	clauses, err := dimacs.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %v", path, err)
	}
	return clauses, nil
}

func solve(engine *scenario.Engine, clauses [][]int) {
	model, err := engine.Solve(clauses)
	if errors.Is(err, scenario.ErrUnsatisfiable) {
		fmt.Println("s UNSATISFIABLE")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not solve problem: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("s SATISFIABLE")
	var b strings.Builder
	b.WriteString("v")
	for _, lit := range model {
		fmt.Fprintf(&b, " %d", lit)
	}
	b.WriteString(" 0")
	fmt.Println(b.String())
}

func countScenarios(engine *scenario.Engine, clauses [][]int) {
	n, err := engine.Enumerate(clauses, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not enumerate scenarios: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(n)
}
