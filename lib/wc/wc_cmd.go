package wc

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"gitlab.com/yarbelk/slimwc/lib"
	"gitlab.com/yarbelk/slimwc/lib/debug"
)

const Version = "0.1.0"

func init() {
	lib.RegisterFunction("wc")
}

func countFile(ctx context.Context, counter *Counter, filename string, stdin io.Reader) error {
	name, in, err := lib.ParseFiles(filename, stdin)
	if err != nil {
		return err
	}
	defer in.Close()
	debug.DPrintf(debug.OPEN, "opened %s", name)

	n, err := counter.ReadFrom(ctx, name, in)
	if err != nil {
		if name == lib.Stdin && ctx.Err() == nil {
			err = fmt.Errorf("%s: %w", name, err)
		}
		return err
	}
	debug.DPrintf(debug.WC, "%s: read %s", name, humanize.Bytes(uint64(n)))
	return nil
}

// Main is the kickoff for the wc program, so it can be compiled stand alone
// or as a subcommand. Sources are read one after the other; one that cannot
// be opened or read is left out of the output and its error returned, after
// the others have been counted and printed. If ctx is done nothing is
// printed.
func Main(ctx context.Context, options Options) error {
	files := options.Files
	implicit := len(files) == 0
	if implicit {
		files = []string{lib.Stdin}
	}
	stdout := options.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	var errs error
	counter := NewCounter(options)
	for _, filename := range files {
		if err := countFile(ctx, counter, filename, options.Stdin); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			errs = multierr.Append(errs, err)
		}
	}

	resultsSet := counter.Close()
	if total, ok := resultsSet.Total(); ok {
		debug.DPrintf(debug.WC, "counted %s in %d sources", humanize.Bytes(uint64(total.Bytes)), len(resultsSet.Results))
	}
	resultsSet = resultsSet.WithTotal()
	resultsSet.HideNames = implicit
	if _, err := fmt.Fprint(stdout, resultsSet.Printf(options)); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

// Run parses args and runs wc, returning the exit status.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defer debug.Sync()
	options := Options{Stdin: stdin, Stdout: stdout}
	wcFS := BindFlagSet(&options)
	wcFS.SetOutput(stderr)
	if err := wcFS.Parse(args); err != nil {
		fmt.Fprintf(stderr, "wc: %v\n", err)
		wcFS.Usage()
		return 1
	}
	if options.Help {
		wcFS.SetOutput(stdout)
		wcFS.Usage()
		return 0
	}
	if options.Version {
		fmt.Fprintf(stdout, "wc (slimwc) %s\n", Version)
		return 0
	}
	options.Files = wcFS.Args()

	if err := Main(ctx, options); err != nil {
		if ctx.Err() != nil {
			return 1
		}
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(stderr, "wc: %v\n", e)
		}
		return 1
	}
	return 0
}

func BindFlagSet(wo *Options) *pflag.FlagSet {
	var wcFS *pflag.FlagSet = pflag.NewFlagSet("wc", pflag.ContinueOnError)
	wcFS.BoolVarP(&wo.Newlines, LineFlag, "l", false, "print the newline counts")
	wcFS.BoolVarP(&wo.Bytes, ByteFlag, "c", false, "print the byte counts")
	wcFS.BoolVarP(&wo.Words, WordFlag, "w", false, "print the word counts")
	wcFS.BoolVarP(&wo.Characters, CharFlag, "m", false, "print the character counts")
	wcFS.BoolVarP(&wo.Longest, LongFlag, "L", false, "print the length of the longest line")
	wcFS.BoolVarP(&wo.Help, "help", "h", false, "display this help and exit")
	wcFS.BoolVar(&wo.Version, "version", false, "output version information and exit")
	wcFS.SortFlags = false
	setUsage(wcFS)
	return wcFS
}

func setUsage(wcFS *pflag.FlagSet) {
	wcFS.Usage = func() {

		fmt.Fprint(wcFS.Output(), `Usage: wc [OPTION]... [FILE]...
Print newline, word, and byte counts for each FILE, and a total line if
more than one FILE is specified.  A word is a non-zero-length sequence of
characters delimited by white space.

With no FILE, or when FILE is -, read standard input.  - can appear multiple
times in the list, and standard input will be read for each.

Characters are counted as bytes; no multi-byte decoding is done.

The options below may be used to select which counts are printed, always in
the following order: newline, word, character, byte, maximum line length.
`)
		wcFS.PrintDefaults()
	}
}
