package pool

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFuture_Get(t *testing.T) {
	t.Run("successful result", func(t *testing.T) {
		future := Go(42, func() (string, error) {
			time.Sleep(20 * time.Millisecond)
			return "success", nil
		})

		value, key, err := future.Get()
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if value != "success" {
			t.Errorf("expected value 'success', got %v", value)
		}
		if key != 42 {
			t.Errorf("expected key 42, got %v", key)
		}
	})

	t.Run("error result", func(t *testing.T) {
		expectedErr := errors.New("task failed")
		future := Go(10, func() (string, error) {
			return "", expectedErr
		})

		_, key, err := future.Get()
		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if key != 10 {
			t.Errorf("expected key 10, got %v", key)
		}
	})

	t.Run("multiple Get calls return same result", func(t *testing.T) {
		future := Go("test", func() (int, error) { return 123, nil })

		value1, key1, err1 := future.Get()
		value2, key2, err2 := future.Get()

		if value1 != value2 || key1 != key2 || err1 != err2 {
			t.Errorf("Get calls returned different results")
		}
		if value1 != 123 {
			t.Errorf("expected value 123, got %v", value1)
		}
	})

	t.Run("panic becomes error", func(t *testing.T) {
		future := Go(1, func() (int, error) { panic("kaboom") })

		if _, _, err := future.Get(); !errors.Is(err, ErrTaskPanicked) {
			t.Errorf("expected ErrTaskPanicked, got %v", err)
		}
	})
}

func TestFuture_GetWithContext(t *testing.T) {
	t.Run("result before timeout", func(t *testing.T) {
		future := Go(42, func() (string, error) {
			time.Sleep(10 * time.Millisecond)
			return "success", nil
		})
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		value, key, err := future.GetWithContext(ctx)
		if err != nil || value != "success" || key != 42 {
			t.Errorf("got (%v, %v, %v), want (success, 42, nil)", value, key, err)
		}
	})

	t.Run("context timeout before result", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		future := Go(99, func() (string, error) {
			<-release
			return "too late", nil
		})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		value, key, err := future.GetWithContext(ctx)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected context.DeadlineExceeded, got %v", err)
		}
		if value != "" || key != 0 {
			t.Errorf("expected zero values, got (%q, %d)", value, key)
		}
	})
}

func TestFuture_TryGetAndIsReady(t *testing.T) {
	release := make(chan struct{})
	future := Go("k", func() (int, error) {
		<-release
		return 5, nil
	})

	if future.IsReady() {
		t.Error("future should not be ready yet")
	}
	if _, ok := future.TryGet(); ok {
		t.Error("TryGet should report not ready")
	}
	if future.Key() != "k" {
		t.Errorf("Key() = %q, want k", future.Key())
	}

	close(release)
	<-future.Done()

	if !future.IsReady() {
		t.Error("future should be ready")
	}
	res, ok := future.TryGet()
	if !ok || res.Value != 5 || res.Key != "k" || !res.OK() {
		t.Errorf("TryGet = (%+v, %v), want value 5 key k", res, ok)
	}
}

func TestAsCompleted_Order(t *testing.T) {
	delays := []time.Duration{60 * time.Millisecond, 10 * time.Millisecond, 35 * time.Millisecond}

	futures := make([]*Future[time.Duration, int], len(delays))
	for i, d := range delays {
		futures[i] = Go(i, func() (time.Duration, error) {
			time.Sleep(d)
			return d, nil
		})
	}

	var keys []int
	for r := range AsCompleted(context.Background(), futures...) {
		if r.Error != nil {
			t.Fatalf("unexpected error: %v", r.Error)
		}
		keys = append(keys, r.Key)
	}

	want := []int{1, 2, 0}
	if len(keys) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("completion order = %v, want %v", keys, want)
			break
		}
	}
}

func TestAsCompleted_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	futures := []*Future[int, string]{
		Go("fast", func() (int, error) { return 1, nil }),
		Go("stuck", func() (int, error) {
			<-release
			return 2, nil
		}),
	}
	<-futures[0].Done()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	got := map[string]error{}
	for r := range AsCompleted(ctx, futures...) {
		got[r.Key] = r.Error
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if !errors.Is(got["stuck"], context.DeadlineExceeded) {
		t.Errorf("stuck future error = %v, want deadline exceeded", got["stuck"])
	}
}

func TestAsCompleted_Empty(t *testing.T) {
	count := 0
	for range AsCompleted[int, int](context.Background()) {
		count++
	}
	if count != 0 {
		t.Errorf("expected no results, got %d", count)
	}
}
