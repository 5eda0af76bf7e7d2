package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownContext is cancelled when an interrupt or terminate signal is received.
func shutdownContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
