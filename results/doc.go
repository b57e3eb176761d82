// Package results keeps a CSV log of benchmark timings and compares them.
//
// ⚙️ File format:
//
//	timestamp,hostname,test,timeit_avg,timeit_std
//	2026-10-19 09:12:44.120331,node-07,stencil2d-numpy,4.21e-02,1.30e-03
//
// Timestamps are UTC. Averages and standard deviations use two-decimal
// scientific notation, so reading a row back yields the rounded value.
//
// ⚙️ Usage:
//
//	timing := results.Timing{Average: 0.0421, Stdev: 0.0013}
//	if err := results.Save("results.csv", "stencil2d-go", &timing); err != nil { ... }
//
//	recs, err := results.Read("results.csv", results.Query{Tests: []string{"stencil2d-go"}})
//	speedup, err := results.Compare(goMean, numpyMean, results.Faster) // "~3.4"
package results
