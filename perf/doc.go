// Package perf collects performance counters for a dataization run:
// per-transition guard evaluations (ticks) and state changes (hits),
// per-atom invocation counts, the number of driver cycles, and the peak
// number of live baskets.
//
// The driver uses total hits to observe forward progress (stuck detection);
// tests use atom counts to bound re-evaluation of primitives.
package perf
