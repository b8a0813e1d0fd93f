package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// InterruptContext returns a context that is cancelled when one of the
// signals arrives or when cancel is called.
func InterruptContext(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, signals...)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// New is InterruptContext over a background context listening for SIGINT and SIGTERM.
func New() (context.Context, context.CancelFunc) {
	return InterruptContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
