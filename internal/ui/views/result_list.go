package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mattn/go-runewidth"

	"launchlist/internal/domain"
)

const defaultWidth = 60

// ResultList renders the results of the current query. Scrolling is
// driven from outside through ScrollTo; the list never scrolls on its own
// except to keep the selection visible after its props change.
type ResultList struct {
	styles   *Styles
	layout   domain.Layout
	viewport viewport.Model

	results  []domain.ResultItem
	selected int
	width    int
}

// NewResultList creates an empty list
func NewResultList(layout domain.Layout, theme domain.Theme) *ResultList {
	if layout.ItemLines <= 0 {
		layout.ItemLines = 1
	}
	l := &ResultList{
		styles:   NewStyles(theme),
		layout:   layout,
		viewport: viewport.New(defaultWidth, 0),
		width:    defaultWidth,
	}
	l.viewport.MouseWheelEnabled = false
	return l
}

// SetProps replaces what the list shows
func (l *ResultList) SetProps(results []domain.ResultItem, selected int) {
	l.results = results
	l.selected = selected
	l.render()
	l.ensureSelectedVisible()
}

// SetTheme restyles the list
func (l *ResultList) SetTheme(theme domain.Theme) {
	l.styles = NewStyles(theme)
	l.render()
}

// SetWidth sets the outer width, border included
func (l *ResultList) SetWidth(width int) {
	if width <= 4 {
		return
	}
	l.width = width
	l.render()
}

// ScrollTo scrolls so the top of the viewport sits at offset, in layout units
func (l *ResultList) ScrollTo(offset int) {
	row := 0
	if l.layout.ItemHeight > 0 {
		row = offset / l.layout.ItemHeight
	}
	l.viewport.SetYOffset(row * l.layout.ItemLines)
}

// ScrollOffset returns the current scroll position in layout units
func (l *ResultList) ScrollOffset() int {
	return l.TopRow() * l.layout.ItemHeight
}

// TopRow returns the index of the first visible result
func (l *ResultList) TopRow() int {
	return l.viewport.YOffset / l.layout.ItemLines
}

// VisibleRows returns how many results fit on screen at once
func (l *ResultList) VisibleRows() int {
	if len(l.results) < l.layout.VisibleItems {
		return len(l.results)
	}
	return l.layout.VisibleItems
}

// View renders the list; nothing at all when there are no results
func (l *ResultList) View() string {
	if len(l.results) == 0 {
		return ""
	}

	body := l.viewport.View()
	if hidden := len(l.results) - l.TopRow() - l.VisibleRows(); hidden > 0 {
		body += "\n" + l.styles.Scroll.Render(fmt.Sprintf("↓ %d more", hidden))
	}
	return l.styles.List.Render(body)
}

func (l *ResultList) innerWidth() int {
	return l.width - l.styles.List.GetHorizontalFrameSize()
}

func (l *ResultList) render() {
	l.viewport.Width = l.innerWidth()
	l.viewport.Height = l.VisibleRows() * l.layout.ItemLines

	lines := make([]string, 0, len(l.results)*l.layout.ItemLines)
	for i, item := range l.results {
		lines = append(lines, l.renderItem(item, i == l.selected)...)
	}
	l.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderItem returns exactly ItemLines lines for one result
func (l *ResultList) renderItem(item domain.ResultItem, selected bool) []string {
	width := l.innerWidth()
	titleStyle, subStyle := l.styles.Title, l.styles.Subtitle
	if selected {
		titleStyle, subStyle = l.styles.Selected, l.styles.SelectedSub
	}

	prefix := "  "
	if item.Icon != "" {
		prefix = runewidth.Truncate(item.Icon, 2, "") + " "
	}
	title := prefix + oneLine(item.DisplayTitle())

	lines := make([]string, l.layout.ItemLines)
	lines[0] = titleStyle.Width(width).Render(fit(title, width))
	if l.layout.ItemLines > 1 {
		lines[1] = subStyle.Width(width).Render(fit("   "+oneLine(item.Subtitle), width))
	}
	for i := 2; i < len(lines); i++ {
		lines[i] = subStyle.Width(width).Render("")
	}
	return lines
}

func (l *ResultList) ensureSelectedVisible() {
	top := l.TopRow()
	switch {
	case l.selected < top:
		l.viewport.SetYOffset(l.selected * l.layout.ItemLines)
	case l.selected >= top+l.VisibleRows() && l.VisibleRows() > 0:
		l.viewport.SetYOffset((l.selected - l.VisibleRows() + 1) * l.layout.ItemLines)
	}
}

// oneLine collapses all whitespace, newlines included, to single spaces
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// fit truncates s to width terminal cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
