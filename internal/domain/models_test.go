package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultItemKeepsUnknownFields(t *testing.T) {
	payload := `{"id":"calc","title":"42","value":"42","action":{"type":"copy"},"score":0.9,"meta":{"plugin":"calculator"}}`

	var item ResultItem
	require.NoError(t, json.Unmarshal([]byte(payload), &item))

	assert.Equal(t, "calc", item.ID)
	assert.Equal(t, "42", item.Value)
	assert.JSONEq(t, `{"type":"copy"}`, string(item.Action))

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestResultItemMarshalWithoutSource(t *testing.T) {
	item := ResultItem{ID: "a", Title: "Alpha"}

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","title":"Alpha"}`, string(out))
}

func TestDisplayTitleFallsBack(t *testing.T) {
	assert.Equal(t, "Alpha", ResultItem{Title: "Alpha", Value: "a"}.DisplayTitle())
	assert.Equal(t, "a", ResultItem{Value: "a", ID: "x"}.DisplayTitle())
	assert.Equal(t, "x", ResultItem{ID: "x"}.DisplayTitle())
}
