package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// Shutdowner is an interface that defines a Shutdown method.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// ShutdownFunc is a function type that matches the Shutdown method signature.
type ShutdownFunc func(ctx context.Context) error

// Shutdown implements the Shutdowner interface for ShutdownFunc.
func (f ShutdownFunc) Shutdown(ctx context.Context) error {
	return f(ctx)
}

// GracefulShutdown blocks until SIGINT/SIGTERM or until parent is done, then
// shuts service down within timeout.
func GracefulShutdown(parent context.Context, service Shutdowner, timeout time.Duration) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Block until a signal is received
	<-ctx.Done()

	if timeout <= 0 {
		timeout = constant.ServerDefaultGracefulTime
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(parent), timeout)
	defer cancel()
	if err := service.Shutdown(shutdownCtx); err != nil {
		helpers.Println(constant.ERROR, "Error during shutdown: "+err.Error())
		return err
	}
	helpers.Println(constant.INFO, "Service stopped")
	return nil
}
