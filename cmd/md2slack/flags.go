package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// limitFlags holds platform ceiling overrides. Zero means "not set":
// every ceiling is positive, so zero is a safe sentinel.
type limitFlags struct {
	headerLimit  int
	sectionLimit int
	maxBlocks    int
	maxTableRows int
	maxTableCols int
}

// convertFlags holds all flags for the md2slack CLI.
type convertFlags struct {
	common commonFlags
	output string
	mode   string
	style  string
	limits limitFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show compilation details")
}

// addLimitFlags adds ceiling override flags to a FlagSet.
func addLimitFlags(fs *flag.FlagSet, f *limitFlags) {
	fs.IntVar(&f.headerLimit, "header-limit", 0, "max header text length (0 = platform default)")
	fs.IntVar(&f.sectionLimit, "section-limit", 0, "max section text length (0 = platform default)")
	fs.IntVar(&f.maxBlocks, "max-blocks", 0, "max blocks per container (0 = platform default)")
	fs.IntVar(&f.maxTableRows, "max-table-rows", 0, "max data rows per table (0 = platform default)")
	fs.IntVar(&f.maxTableCols, "max-table-cols", 0, "max cells per table row (0 = platform default)")
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2slack", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.mode, "mode", "m", "", "output mode: blocks, inline, preview")
	fs.StringVar(&f.style, "style", "", "chroma style for preview code fences")

	addCommonFlags(fs, &f.common)
	addLimitFlags(fs, &f.limits)

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	return f, fs.Args(), nil
}

// printUsage writes CLI usage to w.
func printUsage(w *os.File, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: md2slack [flags] [input.md]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Compiles markdown into a Slack blocks payload (reads stdin when no")
	fmt.Fprintln(w, "input file is given).")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
