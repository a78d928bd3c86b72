// Package sigctx binds a context to interactive termination signals so the
// storefront loop can drain and close its store on the way out.
package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
}
