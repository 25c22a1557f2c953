package state

import (
	"launchlist/internal/domain"
)

// AppState contains the result list state
type AppState struct {
	Results       []domain.ResultItem // results of the current query, in display order
	SelectedIndex int                 // currently selected result
}

// NewAppState creates an empty application state
func NewAppState() AppState {
	return AppState{Results: []domain.ResultItem{}}
}

// HasResults reports whether there is anything to show
func (s AppState) HasResults() bool {
	return len(s.Results) > 0
}

// SelectedItem returns the selected result, false when the list is empty
func (s AppState) SelectedItem() (domain.ResultItem, bool) {
	return s.ItemAt(s.SelectedIndex)
}

// ItemAt returns the result at index, false when out of range
func (s AppState) ItemAt(index int) (domain.ResultItem, bool) {
	if index < 0 || index >= len(s.Results) {
		return domain.ResultItem{}, false
	}
	return s.Results[index], true
}

// CanSelectPrevious reports whether the selection can move up
func (s AppState) CanSelectPrevious() bool {
	return s.SelectedIndex > 0
}

// CanSelectNext reports whether the selection can move down
func (s AppState) CanSelectNext() bool {
	return s.SelectedIndex < len(s.Results)-1
}

// clampIndex keeps index inside the bounds of n results
func clampIndex(index, n int) int {
	if n == 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
