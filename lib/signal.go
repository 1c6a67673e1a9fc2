package lib

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Interruptible returns a context that is cancelled on SIGINT or SIGTERM.
// The process then exits with status 1 without waiting for pending reads,
// so nothing half counted is printed.
func Interruptible() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		os.Exit(1)
	}()
	return ctx
}
