package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "products/5/desc", Key("products", 5, "desc"))
	assert.Equal(t, "categories", Key("categories"))
	assert.Equal(t, "product/7", Key("product", 7))
}

func TestGet_CachesResult(t *testing.T) {
	c := NewCache[int]()
	var calls atomic.Int32

	fetch := func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.Get(context.Background(), "answer", fetch)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, int32(1), calls.Load(), "cached entry must not refetch")
}

func TestGet_ConcurrentSameKeyFetchesOnce(t *testing.T) {
	c := NewCache[string]()
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "data", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(context.Background(), "products", fetch)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let every goroutine reach the flight group before the fetch returns.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "identical concurrent queries must share one fetch")
	for _, r := range results {
		assert.Equal(t, "data", r)
	}
}

func TestGet_DistinctKeysFetchSeparately(t *testing.T) {
	c := NewCache[string]()
	var calls atomic.Int32

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "data", nil
	}

	_, err := c.Get(context.Background(), Key("products", 5, "asc"), fetch)
	require.NoError(t, err)
	_, err = c.Get(context.Background(), Key("products", 5, "desc"), fetch)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_ErrorNotCached(t *testing.T) {
	c := NewCache[int]()
	var calls atomic.Int32

	fetch := func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, errors.New("transient")
		}
		return 7, nil
	}

	_, err := c.Get(context.Background(), "flaky", fetch)
	require.Error(t, err)

	v, err := c.Get(context.Background(), "flaky", fetch)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRefetch_ForcesRoundTrip(t *testing.T) {
	c := NewCache[int]()
	var calls atomic.Int32

	fetch := func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}

	v, err := c.Get(context.Background(), "counter", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = c.Refetch(context.Background(), "counter", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "refetch must bypass the cached entry")
}

func TestInvalidateAndClear(t *testing.T) {
	c := NewCache[int]()
	fetch := func(ctx context.Context) (int, error) { return 1, nil }

	_, _ = c.Get(context.Background(), "a", fetch)
	_, _ = c.Get(context.Background(), "b", fetch)
	assert.Equal(t, 2, c.Len())

	c.Invalidate("a")
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}
