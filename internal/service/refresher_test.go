package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Refresher_Subscribe(t *testing.T) {
	t.Run("first fetch fires immediately", func(t *testing.T) {
		refresher := NewRefresher()
		published := make(chan any, 1)

		sub := refresher.Subscribe(
			context.Background(),
			"quote:AAPL",
			time.Hour,
			func(ctx context.Context) (any, error) { return 42, nil },
			func(subject string, value any) { published <- value },
		)
		defer sub.Stop()

		select {
		case value := <-published:
			require.Equal(t, 42, value)
		case <-time.After(2 * time.Second):
			t.Fatal("expected an immediate publish")
		}
	})

	t.Run("stop halts publishing", func(t *testing.T) {
		refresher := NewRefresher()
		var count atomic.Int64

		sub := refresher.Subscribe(
			context.Background(),
			"quote:AAPL",
			5*time.Millisecond,
			func(ctx context.Context) (any, error) { return 1, nil },
			func(subject string, value any) { count.Add(1) },
		)

		require.Eventually(t, func() bool { return count.Load() >= 2 }, 2*time.Second, time.Millisecond)

		sub.Stop()
		settled := count.Load()
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, settled, count.Load())
	})

	t.Run("stop is safe to call twice", func(t *testing.T) {
		refresher := NewRefresher()
		sub := refresher.Subscribe(
			context.Background(),
			"quote:AAPL",
			time.Hour,
			func(ctx context.Context) (any, error) { return 1, nil },
			func(subject string, value any) {},
		)
		sub.Stop()
		sub.Stop()
	})

	t.Run("resubscribing a subject stops the prior loop", func(t *testing.T) {
		refresher := NewRefresher()
		var mu sync.Mutex
		seen := []any{}
		record := func(subject string, value any) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, value)
		}

		refresher.Subscribe(
			context.Background(),
			"quote",
			5*time.Millisecond,
			func(ctx context.Context) (any, error) { return "old", nil },
			record,
		)
		sub := refresher.Subscribe(
			context.Background(),
			"quote",
			5*time.Millisecond,
			func(ctx context.Context) (any, error) { return "new", nil },
			record,
		)

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			for _, v := range seen {
				if v == "new" {
					return true
				}
			}
			return false
		}, 2*time.Second, time.Millisecond)

		sub.Stop()
		mu.Lock()
		defer mu.Unlock()
		// nothing from the old loop may land after the new one took over
		sawNew := false
		for _, v := range seen {
			if v == "new" {
				sawNew = true
			}
			if sawNew {
				require.Equal(t, "new", v)
			}
		}
	})

	t.Run("fetch errors keep the loop alive", func(t *testing.T) {
		refresher := NewRefresher()
		var calls atomic.Int64
		published := make(chan any, 1)

		sub := refresher.Subscribe(
			context.Background(),
			"news",
			5*time.Millisecond,
			func(ctx context.Context) (any, error) {
				if calls.Add(1) == 1 {
					return nil, context.DeadlineExceeded
				}
				return "ok", nil
			},
			func(subject string, value any) {
				select {
				case published <- value:
				default:
				}
			},
		)
		defer sub.Stop()

		select {
		case value := <-published:
			require.Equal(t, "ok", value)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a publish after the failed fetch")
		}
	})

	t.Run("stop all tears down every subject", func(t *testing.T) {
		refresher := NewRefresher()
		var count atomic.Int64
		for _, subject := range []string{"a", "b", "c"} {
			refresher.Subscribe(
				context.Background(),
				subject,
				5*time.Millisecond,
				func(ctx context.Context) (any, error) { return 1, nil },
				func(subject string, value any) { count.Add(1) },
			)
		}

		require.Eventually(t, func() bool { return count.Load() >= 3 }, 2*time.Second, time.Millisecond)

		refresher.StopAll()
		settled := count.Load()
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, settled, count.Load())
	})
}
