// Command textfront is the CLI surface over the calc and json example
// front-ends (spec.md §8 scenarios F and G), grounded on
// projectdiscovery-alterx's goflags/gologger wiring
// (internal/runner/runner.go) for flag parsing and diagnostics, adapted
// from the teacher's own bare flag-less lang/cmd/cow-lang/main.go and
// lang/in/cli/cli.go.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/shadowCow/textfront/examples/calc"
	"github.com/shadowCow/textfront/examples/json"
)

// options mirrors runner.Options' shape: one flat struct populated by a
// single goflags.FlagSet, verbose/silent toggling gologger's level rather
// than a bespoke logging setup.
type options struct {
	Command string
	Input   string
	File    string
	Verbose bool
	Silent  bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Lex and parse text with the regex/automata/lexer/parser front-end toolkit.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Command, "mode", "m", "", "front-end to run: calc or json"),
		flagSet.StringVarP(&opts.Input, "expr", "e", "", "input text to process (ignored when -file is set)"),
		flagSet.StringVarP(&opts.File, "file", "f", "", "file to read input text from"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not parse flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

func readInput(opts *options) (string, error) {
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if opts.Input != "" {
		return opts.Input, nil
	}
	return "", fmt.Errorf("provide input with -expr or -file")
}

func main() {
	opts := parseFlags()

	input, err := readInput(opts)
	if err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	switch opts.Command {
	case "calc":
		gologger.Verbose().Msgf("lexing and parsing calculator input: %q", input)
		v, err := calc.Eval(input)
		if err != nil {
			gologger.Fatal().Msgf("calc: %s\n", err)
		}
		fmt.Println(v)
	case "json":
		gologger.Verbose().Msgf("lexing and parsing json input: %q", input)
		v, err := json.Parse(input)
		if err != nil {
			gologger.Fatal().Msgf("json: %s\n", err)
		}
		fmt.Println(v.String())
	default:
		gologger.Fatal().Msgf("unknown mode %q: expected calc or json\n", opts.Command)
	}
}
