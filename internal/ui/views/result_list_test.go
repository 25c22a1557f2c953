package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchlist/internal/domain"
)

func testTheme() domain.Theme {
	return domain.Theme{Title: "252", Subtitle: "241", Selected: "226", SelectedBg: "238", Border: "99"}
}

func makeResults(n int) []domain.ResultItem {
	out := make([]domain.ResultItem, n)
	for i := range out {
		out[i] = domain.ResultItem{
			ID:       fmt.Sprintf("r%d", i),
			Title:    fmt.Sprintf("Result %02d", i),
			Subtitle: fmt.Sprintf("subtitle %02d", i),
		}
	}
	return out
}

func TestEmptyListRendersNothing(t *testing.T) {
	l := NewResultList(domain.DefaultLayout(), testTheme())
	assert.Empty(t, l.View())

	l.SetProps(makeResults(2), 0)
	require.NotEmpty(t, l.View())

	l.SetProps(nil, 0)
	assert.Empty(t, l.View())
}

func TestViewShowsFirstScreen(t *testing.T) {
	l := NewResultList(domain.DefaultLayout(), testTheme())
	l.SetProps(makeResults(12), 0)

	out := ansi.Strip(l.View())
	assert.Contains(t, out, "Result 00")
	assert.Contains(t, out, "subtitle 09")
	assert.NotContains(t, out, "Result 10")
	assert.Contains(t, out, "↓ 2 more")
	assert.Equal(t, 10, l.VisibleRows())
}

func TestScrollToMovesByRows(t *testing.T) {
	l := NewResultList(domain.DefaultLayout(), testTheme())
	l.SetProps(makeResults(20), 0)

	l.ScrollTo(120)
	assert.Equal(t, 2, l.TopRow())
	assert.Equal(t, 120, l.ScrollOffset())

	out := ansi.Strip(l.View())
	assert.NotContains(t, out, "Result 01")
	assert.Contains(t, out, "Result 02")
	assert.Contains(t, out, "Result 11")

	l.ScrollTo(0)
	assert.Zero(t, l.TopRow())
}

func TestScrollToIsClampedToContent(t *testing.T) {
	l := NewResultList(domain.DefaultLayout(), testTheme())
	l.SetProps(makeResults(12), 0)

	l.ScrollTo(60 * 50)
	assert.Equal(t, 2, l.TopRow())
}

func TestNewResultsBringSelectionBackIntoView(t *testing.T) {
	l := NewResultList(domain.DefaultLayout(), testTheme())
	l.SetProps(makeResults(30), 25)
	l.ScrollTo(domain.DefaultLayout().ScrollOffset(25))
	require.Equal(t, 16, l.TopRow())

	l.SetProps(makeResults(30), 0)
	assert.Zero(t, l.TopRow())
}

func TestLongTitlesAreTruncated(t *testing.T) {
	l := NewResultList(domain.DefaultLayout(), testTheme())
	l.SetWidth(24)
	l.SetProps([]domain.ResultItem{{Title: strings.Repeat("very long title ", 10), Subtitle: "line\nbreak"}}, 0)

	for _, line := range strings.Split(ansi.Strip(l.View()), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 24, line)
	}
	assert.Contains(t, ansi.Strip(l.View()), "line break")
}
