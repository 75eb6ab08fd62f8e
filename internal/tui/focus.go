package tui

// FocusTarget identifies which panel currently holds keyboard focus.
type FocusTarget int

const (
	FocusSidebar FocusTarget = iota // Left: filters, saved, history
	FocusEditor                     // Right top: query editor
	FocusResults                    // Right bottom: table or chart
)

const focusCount = 3

// Next returns the next focus target in forward tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % focusCount
}

// Prev returns the previous focus target in reverse tab order.
func (f FocusTarget) Prev() FocusTarget {
	return (f + focusCount - 1) % focusCount
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusSidebar:
		return "sidebar"
	case FocusEditor:
		return "editor"
	case FocusResults:
		return "results"
	default:
		return "unknown"
	}
}
