package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := New[string, int]()
	assert.Equal(t, 0, c.Size())

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key1", 100)
	c.Set("key2", 200)
	c.Set("key1", 150)

	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, 150, val)
	assert.Equal(t, 2, c.Size())
}

func TestOrder(t *testing.T) {
	c := New[string, int]()
	c.Set("b", 1)
	c.Set("a", 2)
	c.Set("c", 3)
	c.Set("b", 4)

	assert.Equal(t, []string{"b", "a", "c"}, c.Keys())
	assert.Equal(t, []int{4, 2, 3}, c.Values())

	c.Delete("a")
	c.Delete("missing")
	assert.Equal(t, []string{"b", "c"}, c.Keys())
	assert.Equal(t, []int{4, 3}, c.Values())

	c.Set("a", 5)
	assert.Equal(t, []string{"b", "c", "a"}, c.Keys())
}

func TestKeysReturnsCopy(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)

	keys := c.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"a"}, c.Keys())
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	numGoroutines := 20
	numOperations := 100

	for i := range numGoroutines {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				c.Set(key, key)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				_ = c.Keys()
				_ = c.Values()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, numGoroutines*numOperations, c.Size())
	assert.Len(t, c.Keys(), numGoroutines*numOperations)

	for i := range numGoroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				c.Delete(id*numOperations + j)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, c.Size())
	assert.Empty(t, c.Keys())
}
