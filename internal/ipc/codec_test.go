package ipc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchlist/internal/domain"
)

func TestDecodeQueryResults(t *testing.T) {
	env := Envelope{
		Channel: "query-results",
		Payload: json.RawMessage(`[{"id":"a","title":"Alpha","action":{"type":"open"}},{"id":"b","value":"bee"}]`),
	}

	event, err := Decode(env)
	require.NoError(t, err)

	qr, ok := event.(domain.QueryResultsEvent)
	require.True(t, ok)
	require.Len(t, qr.Results, 2)
	assert.Equal(t, "Alpha", qr.Results[0].Title)
	assert.Equal(t, "bee", qr.Results[1].Value)
}

func TestDecodeEmptyQueryResults(t *testing.T) {
	for _, payload := range []string{"", "null", "[]"} {
		event, err := Decode(Envelope{Channel: "query-results", Payload: json.RawMessage(payload)})
		require.NoError(t, err, "payload %q", payload)
		assert.Empty(t, event.(domain.QueryResultsEvent).Results)
	}
}

func TestDecodeRejectsMalformedQueryResults(t *testing.T) {
	for _, payload := range []string{`{"id":"a"}`, `"a"`, `[1,2]`, `[{"id":`} {
		_, err := Decode(Envelope{Channel: "query-results", Payload: json.RawMessage(payload)})
		assert.ErrorIs(t, err, ErrMalformedPayload, "payload %q", payload)
	}
}

func TestDecodeUnknownChannel(t *testing.T) {
	_, err := Decode(Envelope{Channel: "open-devtools"})
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestDecodeIgnoresPayloadOfCommandMessages(t *testing.T) {
	event, err := Decode(Envelope{Channel: "select-next-item", Payload: json.RawMessage(`{"whatever":1}`)})
	require.NoError(t, err)
	assert.Equal(t, domain.SelectNextItemEvent{}, event)
}

func TestEncodeOutboundPayloads(t *testing.T) {
	var item domain.ResultItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","value":"v","action":{"type":"open","url":"x"},"extra":true}`), &item))

	env, err := Encode(domain.WindowResizeEvent{Height: 210})
	require.NoError(t, err)
	assert.Equal(t, "window-resize", env.Channel)
	assert.JSONEq(t, `{"height":210}`, string(env.Payload))

	env, err = Encode(domain.CopyCurrentItemEvent{Item: item})
	require.NoError(t, err)
	assert.Equal(t, "copy-current-item", env.Channel)
	assert.JSONEq(t, `{"id":"a","value":"v","action":{"type":"open","url":"x"},"extra":true}`, string(env.Payload))

	env, err = Encode(domain.ItemDetailsRequestEvent{Item: item})
	require.NoError(t, err)
	assert.Equal(t, "item-details-request", env.Channel)

	env, err = Encode(domain.ExecuteItemEvent{Action: item.Action, Item: item})
	require.NoError(t, err)
	assert.Equal(t, "execute-item", env.Channel)
	assert.JSONEq(t, `{"action":{"type":"open","url":"x"},"item":{"id":"a","value":"v","action":{"type":"open","url":"x"},"extra":true}}`, string(env.Payload))
}

func TestEncodeCommandHasNoPayload(t *testing.T) {
	env, err := Encode(domain.ExecuteCurrentItemEvent{})
	require.NoError(t, err)
	assert.Equal(t, "execute-current-item", env.Channel)
	assert.Empty(t, env.Payload)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"channel":"execute-current-item"}`, string(data))
}

func TestEncodeNilResultsAsEmptyArray(t *testing.T) {
	env, err := Encode(domain.QueryResultsEvent{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(env.Payload))
}

func TestEncodeUnknownEvent(t *testing.T) {
	_, err := Encode(domain.ConfigSavedEvent{})
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestIsInbound(t *testing.T) {
	for _, in := range domain.InboundEvents {
		assert.True(t, IsInbound(in), in)
	}
	for _, out := range domain.OutboundEvents {
		assert.False(t, IsInbound(out), out)
	}
}
