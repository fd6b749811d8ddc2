// Package testutil provides seeded random data generation for tests and
// benchmarks.
package testutil
