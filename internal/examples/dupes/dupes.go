// Package dupes declares the same fixture name twice.
package dupes

// Counter counts.
type Counter struct {
	n int
}

// NewCounter creates a counter.
//
//sure:fixture [1]
//sure:fixture [2]
func NewCounter(n int) *Counter {
	return &Counter{n: n}
}

// Value returns the count.
//
//sure:scenario expect=1
func (c *Counter) Value() int {
	return c.n
}
