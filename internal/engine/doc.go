// Package engine provides the parallel character-frequency engine.
// It splits a batch of lines into contiguous chunks, counts runes in one
// goroutine per chunk, and joins every worker before returning a single
// histogram. Counting is literal and case-sensitive.
package engine
