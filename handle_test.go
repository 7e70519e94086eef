package forkpool

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHandle_IsReadyBeforeAndAfterSet(t *testing.T) {
	h := newHandle[int]()
	if h.IsReady() {
		t.Error("expected fresh handle to not be ready")
	}
	h.set(42, nil)
	if !h.IsReady() {
		t.Error("expected handle to be ready after set")
	}
}

func TestHandle_TakeIsRepeatable(t *testing.T) {
	h := newHandle[string]()
	h.set("hello", nil)

	for i := 0; i < 3; i++ {
		v, err := h.Take()
		if err != nil || v != "hello" {
			t.Fatalf("call %d: expected (hello, nil), got (%v, %v)", i, v, err)
		}
	}
}

func TestHandle_TakeCarriesError(t *testing.T) {
	h := newHandle[int]()
	wantErr := errors.New("boom")
	h.set(0, wantErr)

	_, err := h.Take()
	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

func TestHandle_WaitBlocksUntilSet(t *testing.T) {
	h := newHandle[int]()
	waited := make(chan struct{})

	go func() {
		h.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned before set")
	case <-time.After(20 * time.Millisecond):
	}

	h.set(1, nil)

	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after set")
	}
}

func TestHandle_TakeContextReturnsCtxErrOnTimeout(t *testing.T) {
	h := newHandle[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := h.TakeContext(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
}

func TestHandle_TakeContextReturnsResultWhenReadyFirst(t *testing.T) {
	h := newHandle[int]()
	h.set(9, nil)

	ctx := context.Background()
	v, err := h.TakeContext(ctx)
	if err != nil || v != 9 {
		t.Errorf("expected (9, nil), got (%d, %v)", v, err)
	}
}
