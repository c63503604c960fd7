package evaluate

import "math"

// Cache owns the memoized lg(k!) table the bit-cost formula leans on for
// every vertex's row-probability term. Share one Cache across an entire
// discovery run — candidates are evaluated by the thousand, and k! for a
// given small k is the same number every time it's asked for.
type Cache struct {
	log2Factorial []float64 // log2Factorial[i] == lg(i!); index 0 and 1 both 0
}

// NewCache returns a Cache with lg(0!) and lg(1!) seeded (both 0).
func NewCache() *Cache {
	return &Cache{log2Factorial: []float64{0, 0}}
}

// log2FactorialOf returns lg(n!), growing the memo table on demand.
func (c *Cache) log2FactorialOf(n int) float64 {
	if n < 0 {
		return 0
	}
	for len(c.log2Factorial) <= n {
		i := len(c.log2Factorial)
		c.log2Factorial = append(c.log2Factorial, c.log2Factorial[i-1]+log2(i))
	}

	return c.log2Factorial[n]
}

// log2 is lg(n), by convention 0 for n <= 0 rather than -Inf.
func log2(n int) float64 {
	if n <= 0 {
		return 0
	}

	return math.Log2(float64(n))
}

// log2Choose returns lg C(n, k) via the cached factorial table.
func (c *Cache) log2Choose(n, k int) float64 {
	return c.log2FactorialOf(n) - c.log2FactorialOf(k) - c.log2FactorialOf(n-k)
}
