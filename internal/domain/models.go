package domain

import (
	"bytes"
	"encoding/json"
)

// Action is the opaque instruction the backing process attaches to a result.
// The list never interprets it, it only hands it back on execute.
type Action = json.RawMessage

// ResultItem represents a single entry of a query result
type ResultItem struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Value    string `json:"value,omitempty"` // copied by copy-current-item
	Action   Action `json:"action,omitempty"`

	raw json.RawMessage // payload as received, fields we don't know included
}

// UnmarshalJSON decodes the known fields and keeps the original payload
func (r *ResultItem) UnmarshalJSON(data []byte) error {
	type plain ResultItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = ResultItem(p)
	r.raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	return nil
}

// MarshalJSON re-emits the payload the item was decoded from, so fields
// owned by the backing process survive the round trip.
func (r ResultItem) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	type plain ResultItem
	return json.Marshal(plain(r))
}

// DisplayTitle returns the title shown in the list
func (r ResultItem) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	if r.Value != "" {
		return r.Value
	}
	return r.ID
}

// Theme holds the colours the result list is rendered with
type Theme struct {
	Title      string `toml:"title"`
	Subtitle   string `toml:"subtitle"`
	Selected   string `toml:"selected"`
	SelectedBg string `toml:"selected_bg"`
	Border     string `toml:"border"`
}

// Layout holds the geometry the list is laid out with. Heights are in
// launcher window units (pixels on the desktop front-end).
type Layout struct {
	ItemHeight   int `toml:"item_height"`   // height of one result row
	ListPadding  int `toml:"list_padding"`  // added to the window height around the rows
	VisibleItems int `toml:"visible_items"` // rows shown before the list starts scrolling
	ItemLines    int `toml:"item_lines"`    // terminal lines one row takes
}

// DefaultLayout returns the launcher's stock geometry
func DefaultLayout() Layout {
	return Layout{
		ItemHeight:   60,
		ListPadding:  30,
		VisibleItems: 10,
		ItemLines:    2,
	}
}

// WindowHeight returns the window height needed to show count results
func (l Layout) WindowHeight(count int) int {
	return count*l.ItemHeight + l.ListPadding
}

// ScrollOffset returns the scroll position that keeps the row at index in
// view: zero while it fits on the first screen, then one row per step.
func (l Layout) ScrollOffset(index int) int {
	if index < l.VisibleItems {
		return 0
	}
	return (index-l.VisibleItems)*l.ItemHeight + l.ItemHeight
}
