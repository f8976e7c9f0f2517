package simutil

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Stopper is the part of a simulation environment the process handler
// drives when the process has to wind down.
type Stopper interface {
	Stop(ctx context.Context, exitCode int, reason string) error
}

// ProcessHandler stops a Stopper once, on the first termination signal,
// recovered panic or reported error.
type ProcessHandler struct {
	env    Stopper
	logger *log.Logger

	sigCh  chan os.Signal
	quitCh chan struct{}
	done   chan struct{}

	stopOnce  sync.Once
	closeOnce sync.Once
	err       error
}

// RegisterProcessHandler subscribes to SIGINT and SIGTERM on behalf of env.
// Call Close to unsubscribe.
func RegisterProcessHandler(env Stopper, logger *log.Logger) *ProcessHandler {
	h := newProcessHandler(env, logger)
	signal.Notify(h.sigCh, os.Interrupt, syscall.SIGTERM)
	go h.run()
	return h
}

func newProcessHandler(env Stopper, logger *log.Logger) *ProcessHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &ProcessHandler{
		env:    env,
		logger: logger,
		sigCh:  make(chan os.Signal, 1),
		quitCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (h *ProcessHandler) run() {
	select {
	case <-h.sigCh:
		h.stop(0, "Terminating")
	case <-h.quitCh:
	}
}

// Recover must be deferred directly by the goroutine it guards. A panic is
// logged and turned into a failed stop instead of crashing the process.
func (h *ProcessHandler) Recover() {
	if r := recover(); r != nil {
		h.logger.Printf("Uncaught exception: %v", r)
		h.stop(1, "Uncaught exception")
	}
}

// ReportError stops the environment with a failure exit code. It is the
// sink for errors from background work that nobody else waits on, the
// counterpart of an unhandled rejection, and stops with reason
// "Unhandled error". Nil errors are ignored.
func (h *ProcessHandler) ReportError(err error) {
	if err == nil {
		return
	}
	h.logger.Printf("Unhandled error: %v", err)
	h.stop(1, "Unhandled error")
}

func (h *ProcessHandler) stop(exitCode int, reason string) {
	h.stopOnce.Do(func() {
		h.err = h.env.Stop(context.Background(), exitCode, reason)
		if h.err != nil {
			h.logger.Printf("Failed to stop environment: %v", h.err)
		}
		close(h.done)
	})
}

// Done is closed after the environment has been stopped.
func (h *ProcessHandler) Done() <-chan struct{} {
	return h.done
}

// Err returns the error from the environment's Stop. It is only meaningful
// once Done is closed.
func (h *ProcessHandler) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Close unsubscribes from signals. It does not stop the environment.
func (h *ProcessHandler) Close() {
	h.closeOnce.Do(func() {
		signal.Stop(h.sigCh)
		close(h.quitCh)
	})
}
