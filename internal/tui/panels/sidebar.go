package panels

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/results"
	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/tui/components"
)

// LoadQueryMsg is emitted when the user picks a query to load into the editor.
type LoadQueryMsg struct{ Text string }

// ToggleSavedMsg is emitted when the user presses 's' on a query.
type ToggleSavedMsg struct{ Text string }

// Section identifies one of the sidebar lists.
type Section int

const (
	SectionFilters Section = iota // Catalog quick filters
	SectionSaved                  // Persisted saved queries
	SectionHistory                // Recent executions, most recent first
)

var sectionLabels = []string{"Filters", "Saved", "History"}

var sectionEmpty = []string{"No quick filters", "No saved queries", "No queries run yet"}

// queryItem is one selectable query in a sidebar list.
type queryItem struct {
	title string
	text  string
	saved bool
}

func (q queryItem) Title() string       { return q.title }
func (q queryItem) Description() string { return q.text }
func (q queryItem) FilterValue() string { return q.text }

var (
	itemSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	starStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
)

// queryDelegate renders compact single-line query items.
type queryDelegate struct{}

func (d queryDelegate) Height() int                             { return 1 }
func (d queryDelegate) Spacing() int                            { return 0 }
func (d queryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d queryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	qi, ok := item.(queryItem)
	if !ok {
		return
	}
	star := "  "
	if qi.saved {
		star = starStyle.Render("★ ")
	}
	title := ansi.Truncate(qi.title, m.Width()-4, "…")
	if index == m.Index() {
		_, _ = fmt.Fprint(w, itemSelectedStyle.Render("> ")+star+itemSelectedStyle.Render(title))
		return
	}
	_, _ = fmt.Fprint(w, "  "+star+title)
}

// SidebarPanel shows the quick filters, saved queries and history as three
// tabbed lists. Methods that change a list clone the slice first so copies
// stay independent.
type SidebarPanel struct {
	tabs components.Tabs
	lists  []list.Model
	width  int
	height int
}

// NewSidebarPanel creates an empty sidebar with the Filters section active.
func NewSidebarPanel(w, h int) SidebarPanel {
	p := SidebarPanel{
		tabs: components.NewTabs(sectionLabels...).SetWidth(w),
		width:  w,
		height: h,
	}
	for range sectionLabels {
		l := list.New(nil, queryDelegate{}, w, listHeight(h))
		l.SetShowTitle(false)
		l.SetShowHelp(false)
		l.SetShowStatusBar(false)
		l.SetShowPagination(false)
		l.SetFilteringEnabled(false)
		p.lists = append(p.lists, l)
	}
	return p
}

func listHeight(h int) int {
	if h < 3 {
		return 1
	}
	return h - 2 // tab bar + blank line
}

// SetQueries replaces the contents of all three lists. isSaved marks saved
// entries in the filter and history lists.
func (p SidebarPanel) SetQueries(catalog []results.CatalogQuery, saved, history []string, isSaved func(string) bool) SidebarPanel {
	filters := make([]list.Item, len(catalog))
	for i, c := range catalog {
		filters[i] = queryItem{title: c.Name, text: c.Text, saved: isSaved(c.Text)}
	}
	savedItems := make([]list.Item, len(saved))
	for i, q := range saved {
		savedItems[i] = queryItem{title: results.Label(q), text: q, saved: true}
	}
	historyItems := make([]list.Item, len(history))
	for i, q := range history {
		historyItems[i] = queryItem{title: q, text: q, saved: isSaved(q)}
	}

	p.lists = slices.Clone(p.lists)
	p.lists[SectionFilters] = setItems(p.lists[SectionFilters], filters)
	p.lists[SectionSaved] = setItems(p.lists[SectionSaved], savedItems)
	p.lists[SectionHistory] = setItems(p.lists[SectionHistory], historyItems)
	return p
}

// setItems replaces the items and keeps the cursor in range.
func setItems(l list.Model, items []list.Item) list.Model {
	idx := l.Index()
	l.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		l.Select(idx)
	}
	return l
}

// Section returns the active section.
func (p SidebarPanel) Section() Section {
	return Section(p.tabs.Active())
}

// SetSection activates s.
func (p SidebarPanel) SetSection(s Section) SidebarPanel {
	p.tabs = p.tabs.SetActive(int(s))
	return p
}

// Selected returns the query under the cursor in the active section.
func (p SidebarPanel) Selected() (string, bool) {
	if item, ok := p.lists[p.Section()].SelectedItem().(queryItem); ok {
		return item.text, true
	}
	return "", false
}

// SetSize resizes the panel.
func (p SidebarPanel) SetSize(w, h int) SidebarPanel {
	p.width = w
	p.height = h
	p.tabs = p.tabs.SetWidth(w)
	p.lists = slices.Clone(p.lists)
	for i := range p.lists {
		p.lists[i].SetSize(w, listHeight(h))
	}
	return p
}

// Update handles key/mouse messages for the panel.
func (p SidebarPanel) Update(msg tea.Msg) (SidebarPanel, tea.Cmd) {
	sec := p.Section()
	p.lists = slices.Clone(p.lists)
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "]":
			p.tabs = p.tabs.Cycle(1)
		case "[":
			p.tabs = p.tabs.Cycle(-1)
		case "j", "down":
			p.lists[sec], cmd = p.lists[sec].Update(tea.KeyMsg{Type: tea.KeyDown})
		case "k", "up":
			p.lists[sec], cmd = p.lists[sec].Update(tea.KeyMsg{Type: tea.KeyUp})
		case "enter":
			if text, ok := p.Selected(); ok {
				return p, func() tea.Msg { return LoadQueryMsg{Text: text} }
			}
		case "s":
			if text, ok := p.Selected(); ok {
				return p, func() tea.Msg { return ToggleSavedMsg{Text: text} }
			}
		default:
			p.lists[sec], cmd = p.lists[sec].Update(msg)
		}
	default:
		p.lists[sec], cmd = p.lists[sec].Update(msg)
	}
	return p, cmd
}

// View renders the sidebar.
func (p SidebarPanel) View() string {
	sec := p.Section()
	var body string
	if len(p.lists[sec].Items()) == 0 {
		body = lipgloss.NewStyle().
			Width(p.width).Height(listHeight(p.height)).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#888888")).
			Render(sectionEmpty[sec])
	} else {
		body = p.lists[sec].View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.tabs.View(), "", body)
}
