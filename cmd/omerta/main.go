// Omerta is a deterministic, data-driven decision engine for a turn-based
// criminal-syndicate simulation.
// Usage: omerta [--version] [--plain] [--seed <n>] [--script <file>] [--trace] <scenario_directory>
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ferranti/omerta/cli"
	"github.com/ferranti/omerta/engine"
	"github.com/ferranti/omerta/loader"
	"github.com/ferranti/omerta/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	trace := false
	var seed int64 = 1
	var scenarioDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("omerta %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid seed %q\n", args[i])
				os.Exit(1)
			}
			seed = n
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if scenarioDir == "" {
				scenarioDir = args[i]
			}
		}
	}

	if scenarioDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: omerta [--version] [--plain] [--seed <n>] [--script <file>] [--trace] <scenario_directory>\n")
		os.Exit(1)
	}

	defs, err := loader.Load(scenarioDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(defs, seed)

	// Script playback forces plain mode so output is checkable.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		c := cli.New(eng, defs)
		c.In = f
		c.Trace = trace
		c.EchoInput = true
		c.Run()
		return
	}

	if plain {
		c := cli.New(eng, defs)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng, defs, trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
