// Package bench times short Go functions the way IPython's %timeit does:
// several rounds of a fixed number of loops, summarized as the mean and
// population standard deviation of the per-loop time.
package bench
