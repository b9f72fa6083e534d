package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	q := New[string]()
	require.NoError(t, q.Push("a", "b"))
	require.NoError(t, q.Push("c"))
	assert.Equal(t, 3, q.Len())

	ctx := context.Background()
	for _, want := range []string{"a", "b", "c"} {
		got, err := q.Pop(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, q.Len())
}

func TestPopWaitsForPush(t *testing.T) {
	q := New[int]()

	got := make(chan int)
	go func() {
		v, err := q.Pop(context.Background())
		assert.NoError(t, err)
		got <- v
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, q.Push(42))

	select {
	case v := <-got:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("Pop did not return after Push")
	}
}

func TestPopContextCanceled(t *testing.T) {
	q := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := q.Pop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPopCanceledLeavesItems(t *testing.T) {
	q := New[string]()
	require.NoError(t, q.Push("a", "b"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := q.Pop(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []string{"a", "b"}, q.Close())
}

func TestClose(t *testing.T) {
	q := New[string]()
	require.NoError(t, q.Push("a", "b"))

	remaining := q.Close()
	assert.Equal(t, []string{"a", "b"}, remaining)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Close(), "second close returns nothing")

	assert.ErrorIs(t, q.Push("c"), ErrClosed)

	_, err := q.Pop(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseWakesBlockedPop(t *testing.T) {
	q := New[string]()

	done := make(chan error)
	go func() {
		_, err := q.Pop(context.Background())
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("Pop did not return after Close")
	}
}

func TestConcurrentProducers(t *testing.T) {
	q := New[int]()
	producers := 10
	perProducer := 100

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				assert.NoError(t, q.Push(id*perProducer+i))
			}
		}(p)
	}

	seen := make(map[int]bool)
	lastByProducer := make(map[int]int)
	ctx := context.Background()
	for range producers * perProducer {
		v, err := q.Pop(ctx)
		require.NoError(t, err)
		seen[v] = true

		id := v / perProducer
		if last, ok := lastByProducer[id]; ok {
			assert.Greater(t, v, last, "items from one producer stay in order")
		}
		lastByProducer[id] = v
	}
	wg.Wait()

	assert.Len(t, seen, producers*perProducer)
}
