package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestFanOut_BoundedConcurrency(t *testing.T) {
	var inflight, peak int32
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}
	out := fanOut(context.Background(), items, 3, func(ctx context.Context, n int) (int, error) {
		cur := atomic.AddInt32(&inflight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if cur <= p || atomic.CompareAndSwapInt32(&peak, p, cur) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&inflight, -1)
		return n * 2, nil
	})
	if peak > 3 {
		t.Fatalf("peak concurrency %d exceeds pool size 3", peak)
	}
	for i, o := range out {
		if o.Err != nil || o.Value != i*2 {
			t.Fatalf("out[%d]=%+v", i, o)
		}
	}
}

func TestFanOut_PerTaskErrors(t *testing.T) {
	boom := errors.New("boom")
	out := fanOut(context.Background(), []string{"a", "bad", "c", "panic"}, 2, func(ctx context.Context, s string) (string, error) {
		switch s {
		case "bad":
			return "", boom
		case "panic":
			panic("kaboom")
		}
		return s + "!", nil
	})
	if out[0].Value != "a!" || out[2].Value != "c!" {
		t.Fatalf("healthy tasks affected: %+v", out)
	}
	if !errors.Is(out[1].Err, boom) {
		t.Fatalf("expected boom, got %v", out[1].Err)
	}
	if out[3].Err == nil {
		t.Fatalf("expected panic captured as error")
	}
}

func TestFanOut_Empty(t *testing.T) {
	out := fanOut(context.Background(), nil, 4, func(ctx context.Context, s string) (int, error) { return 0, nil })
	if len(out) != 0 {
		t.Fatalf("len=%d", len(out))
	}
}

func TestFanOut_FailureDoesNotStopOthers(t *testing.T) {
	var ran int32
	items := []int{0, 1, 2, 3, 4, 5}
	out := fanOut(context.Background(), items, 1, func(ctx context.Context, n int) (int, error) {
		atomic.AddInt32(&ran, 1)
		if n == 0 {
			return 0, errors.New("first card failed")
		}
		return n, nil
	})
	if ran != int32(len(items)) {
		t.Fatalf("ran %d of %d tasks", ran, len(items))
	}
	if out[0].Err == nil {
		t.Fatalf("failure not recorded on its own card")
	}
	for i := 1; i < len(out); i++ {
		if out[i].Err != nil || out[i].Value != i {
			t.Fatalf("out[%d]=%+v", i, out[i])
		}
	}
}
