// Command fsum prints the correctly-rounded sum of the numbers it reads.
//
// Usage:
//
//	fsum [flags] [file ...]
//
// Numbers are separated by whitespace, commas or semicolons; '#' starts a
// comment. Without file arguments, or for the file "-", standard input is
// read. The result is the float64 nearest to the exact sum, ties to even.
//
// Examples:
//
//	printf '1e308 1 -1e308' | fsum
//	fsum -f x data.txt
//	fsum --mode ieee --naive a.txt b.txt
package main

import (
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

// CLI is a definition for kong command line parser.
//
//nolint:govet // linter does not like the syntax required by the kong package
type CLI struct {
	Config   string   `help:"YAML file with default settings (mode, format, logLevel, naive)." type:"existingfile"`
	LogLevel string   `help:"Log level. Must be case-insensitive equal to one of trace, debug, info, warning, error, panic and fatal."`
	Mode     string   `short:"m" help:"Handling of NaN and infinite inputs: checked (reject), ieee (propagate) or core (unchecked)."`
	Format   string   `short:"f" help:"Output format: g (shortest decimal), e (exponent) or x (hexadecimal float)."`
	Naive    *bool    `help:"Also print the left-to-right floating-point sum for comparison. --no-naive overrides the config file." negatable:""`
	Files    []string `arg:"" optional:"" help:"Input files. Standard input is read when none are given or for '-'."`
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})

	var cli CLI
	kong.Parse(&cli,
		kong.Name("fsum"),
		kong.Description("Prints the correctly-rounded sum of the numbers read from files or standard input."),
	)

	if err := mainCore(&cli, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
