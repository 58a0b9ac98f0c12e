// Package selection implements the winner-picking rule applied to a
// round of probe results: a fixed priority order first, then a
// deterministic fallback among the remaining successes.
package selection
