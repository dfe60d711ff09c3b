package fibonacci

import (
	"context"
	"math/big"
	"sync"
)

// Cache is a monotonically growing memoization table for Fibonacci numbers.
// It is seeded with F(0)=0 and F(1)=1 on construction and fills every missing
// entry between its current maximum index and a requested index on demand,
// giving amortized O(1) lookups after warm-up at an O(n) space cost.
//
// A Cache is never reset. All accesses are serialized by an internal mutex,
// so a single instance is safe for concurrent use; lost updates and torn
// reads are not possible.
type Cache struct {
	mu     sync.Mutex
	values []*big.Int
}

// NewCache creates a new memoization table seeded with the two base values.
//
// Returns:
//   - *Cache: A cache holding F(0) and F(1).
func NewCache() *Cache {
	return &Cache{values: []*big.Int{big.NewInt(0), big.NewInt(1)}}
}

// Fib returns F(n), filling the table up to n if needed.
// The returned value is a defensive copy: callers may mutate it freely
// without corrupting the cache.
//
// Parameters:
//   - n: The index of the Fibonacci number to look up or compute.
//
// Returns:
//   - *big.Int: The cached (or freshly filled) Fibonacci number.
//   - error: An InvalidArgumentError when n is negative.
func (c *Cache) Fib(n int) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.values); i <= n; i++ {
		c.values = append(c.values, new(big.Int).Add(c.values[i-1], c.values[i-2]))
	}
	return new(big.Int).Set(c.values[n]), nil
}

// Len returns the number of entries currently memoized. It only ever grows.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

// defaultCache is the process-wide memo table shared by every Cached
// calculator that was not given its own. Created once, never reset.
var defaultCache = NewCache()

// DefaultCache returns the process-wide memoization table.
func DefaultCache() *Cache {
	return defaultCache
}

// Cached computes F(n) through a memoization table, by default the
// process-wide one. Repeated calls are amortized O(1) once the table covers
// the requested range.
type Cached struct {
	// Table overrides the process-wide cache when non-nil. Tests use this to
	// observe fill behavior without touching shared state.
	Table *Cache
}

// Name returns the descriptive name of the algorithm.
func (c *Cached) Name() string {
	return "Cached (amortized O(1), process-wide memo)"
}

// Exact reports that this algorithm produces exact integer results.
func (c *Cached) Exact() bool { return true }

// CalculateCore computes F(n) via the memoization table.
// The fill loop runs under the cache lock and is not interruptible; with
// amortized O(1) behavior there is no long-running region worth polling.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - n: The index of the Fibonacci number to calculate.
//
// Returns:
//   - *big.Int: The calculated Fibonacci number.
//   - error: An error if one occurred.
func (c *Cached) CalculateCore(ctx context.Context, reporter ProgressReporter, n int) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table := c.Table
	if table == nil {
		table = defaultCache
	}
	result, err := table.Fib(n)
	if err != nil {
		return nil, err
	}
	reporter(1.0)
	return result, nil
}
