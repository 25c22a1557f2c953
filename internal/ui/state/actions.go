package state

import "launchlist/internal/domain"

// Action is a state change request dispatched to the Store
type Action interface {
	Type() string
}

// UpdateResultsAction replaces the results and selects the first one
type UpdateResultsAction struct {
	Results []domain.ResultItem
}

func (a UpdateResultsAction) Type() string { return "update_results" }

// ResetResultsAction empties the list
type ResetResultsAction struct{}

func (a ResetResultsAction) Type() string { return "reset_results" }

// SelectItemAction selects the result at Index
type SelectItemAction struct {
	Index int
}

func (a SelectItemAction) Type() string { return "select_item" }

// SelectNextItemAction moves the selection down by one
type SelectNextItemAction struct{}

func (a SelectNextItemAction) Type() string { return "select_next_item" }

// SelectPreviousItemAction moves the selection up by one
type SelectPreviousItemAction struct{}

func (a SelectPreviousItemAction) Type() string { return "select_previous_item" }

// Reduce returns the state after applying action. The selection is clamped,
// so no action moves it out of range.
func Reduce(s AppState, action Action) AppState {
	switch a := action.(type) {
	case UpdateResultsAction:
		results := make([]domain.ResultItem, len(a.Results))
		copy(results, a.Results)
		return AppState{Results: results}

	case ResetResultsAction:
		return NewAppState()

	case SelectItemAction:
		s.SelectedIndex = clampIndex(a.Index, len(s.Results))

	case SelectNextItemAction:
		s.SelectedIndex = clampIndex(s.SelectedIndex+1, len(s.Results))

	case SelectPreviousItemAction:
		s.SelectedIndex = clampIndex(s.SelectedIndex-1, len(s.Results))
	}
	return s
}
