package simutil

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
)

type stopCall struct {
	code   int
	reason string
}

type fakeEnv struct {
	mu    sync.Mutex
	calls []stopCall
	err   error
}

func (e *fakeEnv) Stop(_ context.Context, exitCode int, reason string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, stopCall{exitCode, reason})
	return e.err
}

func (e *fakeEnv) stopCalls() []stopCall {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]stopCall(nil), e.calls...)
}

func waitDone(t *testing.T, h *ProcessHandler) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("environment was not stopped")
	}
}

func TestProcessHandlerSignal(t *testing.T) {
	env := &fakeEnv{}
	h := newProcessHandler(env, log.New(&bytes.Buffer{}, "", 0))
	go h.run()
	defer h.Close()

	h.sigCh <- syscall.SIGTERM
	waitDone(t, h)

	calls := env.stopCalls()
	if len(calls) != 1 || calls[0] != (stopCall{0, "Terminating"}) {
		t.Fatalf("unexpected stop calls: %+v", calls)
	}
	if h.Err() != nil {
		t.Fatalf("unexpected error: %v", h.Err())
	}
}

func TestProcessHandlerRecover(t *testing.T) {
	env := &fakeEnv{}
	var logs bytes.Buffer
	h := newProcessHandler(env, log.New(&logs, "", 0))
	defer h.Close()

	go func() {
		defer h.Recover()
		panic("validator crashed")
	}()
	waitDone(t, h)

	calls := env.stopCalls()
	if len(calls) != 1 || calls[0] != (stopCall{1, "Uncaught exception"}) {
		t.Fatalf("unexpected stop calls: %+v", calls)
	}
	if !strings.Contains(logs.String(), "validator crashed") {
		t.Fatalf("panic value not logged: %q", logs.String())
	}
}

func TestProcessHandlerRecoverWithoutPanic(t *testing.T) {
	env := &fakeEnv{}
	h := newProcessHandler(env, log.New(&bytes.Buffer{}, "", 0))
	defer h.Close()

	func() {
		defer h.Recover()
	}()

	if len(env.stopCalls()) != 0 {
		t.Fatal("Recover without a panic must not stop the environment")
	}
}

func TestProcessHandlerReportErrorStopsOnce(t *testing.T) {
	stopErr := errors.New("containers still running")
	env := &fakeEnv{err: stopErr}
	var logs bytes.Buffer
	h := newProcessHandler(env, log.New(&logs, "", 0))
	defer h.Close()

	h.ReportError(nil)
	if len(env.stopCalls()) != 0 {
		t.Fatal("nil error must not stop the environment")
	}

	h.ReportError(errors.New("beacon node exited"))
	h.ReportError(errors.New("second failure"))
	waitDone(t, h)

	calls := env.stopCalls()
	if len(calls) != 1 || calls[0] != (stopCall{1, "Unhandled error"}) {
		t.Fatalf("unexpected stop calls: %+v", calls)
	}
	if !errors.Is(h.Err(), stopErr) {
		t.Fatalf("Err = %v, want %v", h.Err(), stopErr)
	}
	if !strings.Contains(logs.String(), "Failed to stop environment") {
		t.Fatalf("stop failure not logged: %q", logs.String())
	}
}

func TestProcessHandlerCloseWithoutStop(t *testing.T) {
	env := &fakeEnv{}
	h := RegisterProcessHandler(env, log.New(&bytes.Buffer{}, "", 0))
	h.Close()
	h.Close()

	select {
	case <-h.Done():
		t.Fatal("Close must not stop the environment")
	default:
	}
	if h.Err() != nil {
		t.Fatalf("Err before stop = %v", h.Err())
	}
}
