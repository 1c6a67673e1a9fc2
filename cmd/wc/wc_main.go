package main

import (
	"os"

	"gitlab.com/yarbelk/slimwc/lib"
	"gitlab.com/yarbelk/slimwc/lib/wc"
)

func main() {
	os.Exit(wc.Run(lib.Interruptible(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
