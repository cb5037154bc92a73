package repl

import (
	"fmt"
	"io"

	"src.calq.sh/pkg/calc"
)

// history is the ordered, append-only record of successful calculations in
// one session. When max is positive, the oldest entries are evicted to keep
// at most max entries.
type history struct {
	items []calc.Calculation
	max   int
}

func newHistory(max int) *history {
	return &history{max: max}
}

func (h *history) add(c calc.Calculation) {
	h.items = append(h.items, c)
	if h.max > 0 && len(h.items) > h.max {
		h.items = h.items[len(h.items)-h.max:]
	}
}

func (h *history) show(w io.Writer) {
	if len(h.items) == 0 {
		fmt.Fprintln(w, "No calculations performed yet.")
		return
	}
	fmt.Fprintln(w, "Calculation history:")
	for i, c := range h.items {
		// Stored calculations executed successfully before, and re-execution
		// is deterministic, so DisplayString can only fail here if a kind's
		// behavior is not pure. Fall back to the debug form in that case.
		s, err := c.DisplayString()
		if err != nil {
			s = c.DebugString()
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
}
