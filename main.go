package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/yarbelk/slimwc/lib"
	"gitlab.com/yarbelk/slimwc/lib/wc"
)

func main() {
	// Called through a link named after an applet, or as slimwc <applet>.
	verb, args := filepath.Base(os.Args[0]), os.Args[1:]
	if !lib.RegisteredFunctions().Has(verb) && len(os.Args) > 1 {
		verb, args = os.Args[1], os.Args[2:]
	}
	switch verb {
	case "wc":
		os.Exit(wc.Run(lib.Interruptible(), args, os.Stdin, os.Stdout, os.Stderr))
	default:
		fmt.Fprintf(os.Stderr, `
Usage: slimwc [function [arguments]...]
   or: function [arguments]...

The currently supported functions are:

%s
`, lib.RegisteredFunctions())
		os.Exit(1)
	}
}
