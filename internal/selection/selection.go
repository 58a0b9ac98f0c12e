package selection

import (
	"sort"

	"github.com/htx-audio/backend-probe/internal/probe"
)

// Select picks the winning connection among successful probe results.
// The first name of the priority list present among the successes wins.
// When only names outside the priority list succeeded, the
// lexicographically smallest of them is returned so repeated runs pick
// the same winner. The second return value is false when nothing
// succeeded.
func Select(results map[string]probe.Result, priority []string) (string, bool) {
	successes := make(map[string]struct{}, len(results))
	for name, result := range results {
		if result.Succeeded() {
			successes[name] = struct{}{}
		}
	}

	if len(successes) == 0 {
		return "", false
	}

	for _, name := range priority {
		if _, ok := successes[name]; ok {
			return name, true
		}
	}

	remaining := make([]string, 0, len(successes))
	for name := range successes {
		remaining = append(remaining, name)
	}
	sort.Strings(remaining)

	return remaining[0], true
}
