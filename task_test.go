package forkpool

import (
	"errors"
	"strings"
	"testing"
)

func TestBindTask_RunDeliversValue(t *testing.T) {
	h := newHandle[int]()
	tk := bindTask(func() (int, error) { return 5, nil }, h)
	tk.run()

	v, err := h.Take()
	if err != nil || v != 5 {
		t.Fatalf("expected (5, nil), got (%d, %v)", v, err)
	}
}

func TestBindTask_RunDeliversError(t *testing.T) {
	h := newHandle[int]()
	wantErr := errors.New("failed")
	tk := bindTask(func() (int, error) { return 0, wantErr }, h)
	tk.run()

	_, err := h.Take()
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestBindTask_RunCapturesPanic(t *testing.T) {
	h := newHandle[int]()
	tk := bindTask(func() (int, error) { panic("oh no") }, h)
	tk.run()

	_, err := h.Take()
	var panicErr *TaskPanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("expected *TaskPanicError, got %v", err)
	}
	if panicErr.Value != "oh no" {
		t.Errorf("expected panic value %q, got %v", "oh no", panicErr.Value)
	}
	if !strings.Contains(panicErr.Error(), "oh no") {
		t.Errorf("expected error string to mention panic value, got %q", panicErr.Error())
	}
}

func TestBindTask_AbortResolvesWithPoolShutdown(t *testing.T) {
	h := newHandle[int]()
	tk := bindTask(func() (int, error) { return 1, nil }, h)
	tk.abort()

	_, err := h.Take()
	if !errors.Is(err, ErrPoolShutdown) {
		t.Fatalf("expected ErrPoolShutdown, got %v", err)
	}
}

func TestBindTask_RunTwiceAsserts(t *testing.T) {
	h := newHandle[int]()
	tk := bindTask(func() (int, error) { return 1, nil }, h)
	tk.run()

	defer func() {
		if recover() == nil {
			t.Fatal("expected running an already-consumed task to panic")
		}
	}()
	tk.run()
}

func TestBindTask_AbortAfterRunAsserts(t *testing.T) {
	h := newHandle[int]()
	tk := bindTask(func() (int, error) { return 1, nil }, h)
	tk.run()

	defer func() {
		if recover() == nil {
			t.Fatal("expected aborting an already-consumed task to panic")
		}
	}()
	tk.abort()
}

func TestTaskPanicError_UnwrapsErrorPanicValue(t *testing.T) {
	inner := errors.New("inner")
	e := &TaskPanicError{Value: inner}
	if !errors.Is(e, inner) {
		t.Error("expected errors.Is to find the wrapped panic error")
	}
}

func TestTaskPanicError_UnwrapNilForNonError(t *testing.T) {
	e := &TaskPanicError{Value: "just a string"}
	if e.Unwrap() != nil {
		t.Error("expected Unwrap to return nil for a non-error panic value")
	}
}
