// Package runner implements the retry loop around the probe rounds and
// the terminal outcome of a run: either a winning connection is found
// and persisted, or the attempt budget is exhausted.
package runner
