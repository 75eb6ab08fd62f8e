package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	footerErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus    string // "sidebar", "editor", "results"
	Status   string // last action outcome, e.g. the export path
	IsError  bool
	Expanded bool
}

// RenderFooter renders the context-sensitive footer bar.
// Left side: status. Right side: keybinding hints for current focus + global.
func RenderFooter(props FooterProps, width int) string {
	left := props.Status
	style := footerStyle
	if props.IsError {
		style = footerErrorStyle
	}

	right := panelHints(props.Focus) + "  ctrl+e:" + expandLabel(props.Expanded) + "  ctrl+o:schema  ctrl+x:export  ctrl+c:quit"

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return lipgloss.NewStyle().Width(width).MaxHeight(1).Render(
		style.Render(left) + strings.Repeat(" ", gap) + footerStyle.Render(right))
}

func expandLabel(expanded bool) string {
	if expanded {
		return "collapse"
	}
	return "expand"
}

// panelHints returns the context-sensitive keybinding hints for a given focus.
func panelHints(focus string) string {
	switch focus {
	case "sidebar":
		return "j/k:navigate  [/]:section  enter:load  s:save  tab:next panel"
	case "editor":
		return "alt+enter/ctrl+r:run  ctrl+l:clear  tab:next panel"
	case "results":
		return "t/c:table/chart  [/]:chart  j/k/h/l:scroll  tab:next panel"
	default:
		return "tab:next panel"
	}
}
