package tui

// exportDoneMsg reports the outcome of an export command. Path is empty when
// there was nothing to export.
type exportDoneMsg struct {
	Path string
	Err  error
}
