// Package orchestration coordinates the concurrent execution of multiple
// Fibonacci calculators, aggregates their progress, and cross-checks their
// results. The exact variants compute the same integer sequence, so any
// disagreement between them is a critical defect surfaced with a dedicated
// exit code; the approximate Binet variants are reported alongside but are
// exempt from the consistency check.
package orchestration
