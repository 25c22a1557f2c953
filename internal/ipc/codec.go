// Package ipc carries list messages between the result list and the
// launcher's backing process.
//
// Messages travel as newline-delimited JSON envelopes over a Unix domain
// socket:
//
//	{"channel":"query-results","payload":[{"id":"a","title":"Alpha","action":{...}}]}
//	{"channel":"select-next-item"}
//	{"channel":"window-resize","payload":{"height":210}}
package ipc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"launchlist/internal/domain"
)

var (
	// ErrUnknownChannel is returned for envelopes naming a channel the list doesn't speak
	ErrUnknownChannel = errors.New("unknown channel")
	// ErrMalformedPayload is returned when the payload doesn't fit its channel
	ErrMalformedPayload = errors.New("malformed payload")
)

// Envelope is one message on the wire
type Envelope struct {
	Channel string          `json:"channel"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type windowResizePayload struct {
	Height int `json:"height"`
}

type executeItemPayload struct {
	Action domain.Action     `json:"action"`
	Item   domain.ResultItem `json:"item"`
}

// Decode turns an envelope into its domain event
func Decode(env Envelope) (domain.DomainEvent, error) {
	switch domain.EventType(env.Channel) {
	case domain.EventQueryResults:
		results, err := decodeResults(env.Payload)
		if err != nil {
			return nil, err
		}
		return domain.QueryResultsEvent{Results: results}, nil

	case domain.EventSelectPreviousItem:
		return domain.SelectPreviousItemEvent{}, nil
	case domain.EventSelectNextItem:
		return domain.SelectNextItemEvent{}, nil
	case domain.EventCopyCurrentItemKey:
		return domain.CopyCurrentItemKeyEvent{}, nil
	case domain.EventExecuteCurrentItem:
		return domain.ExecuteCurrentItemEvent{}, nil

	case domain.EventWindowResize:
		var p windowResizePayload
		if err := decodeObject(env.Payload, &p); err != nil {
			return nil, err
		}
		return domain.WindowResizeEvent{Height: p.Height}, nil

	case domain.EventItemDetailsRequest:
		var item domain.ResultItem
		if err := decodeObject(env.Payload, &item); err != nil {
			return nil, err
		}
		return domain.ItemDetailsRequestEvent{Item: item}, nil

	case domain.EventCopyCurrentItem:
		var item domain.ResultItem
		if err := decodeObject(env.Payload, &item); err != nil {
			return nil, err
		}
		return domain.CopyCurrentItemEvent{Item: item}, nil

	case domain.EventExecuteItem:
		var p executeItemPayload
		if err := decodeObject(env.Payload, &p); err != nil {
			return nil, err
		}
		return domain.ExecuteItemEvent{Action: p.Action, Item: p.Item}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, env.Channel)
}

// Encode turns a domain event into an envelope
func Encode(event domain.DomainEvent) (Envelope, error) {
	env := Envelope{Channel: string(event.Type())}

	var payload any
	switch e := event.(type) {
	case domain.QueryResultsEvent:
		results := e.Results
		if results == nil {
			results = []domain.ResultItem{}
		}
		payload = results
	case domain.SelectPreviousItemEvent, domain.SelectNextItemEvent,
		domain.CopyCurrentItemKeyEvent, domain.ExecuteCurrentItemEvent:
		return env, nil
	case domain.WindowResizeEvent:
		payload = windowResizePayload{Height: e.Height}
	case domain.ItemDetailsRequestEvent:
		payload = e.Item
	case domain.CopyCurrentItemEvent:
		payload = e.Item
	case domain.ExecuteItemEvent:
		payload = executeItemPayload{Action: e.Action, Item: e.Item}
	default:
		return Envelope{}, fmt.Errorf("%w: %q", ErrUnknownChannel, event.Type())
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode %s payload: %w", event.Type(), err)
	}
	env.Payload = data
	return env, nil
}

// IsInbound reports whether t is a message the backing process may send to the list
func IsInbound(t domain.EventType) bool {
	for _, in := range domain.InboundEvents {
		if in == t {
			return true
		}
	}
	return false
}

// decodeResults accepts an array of items; a missing or null payload is an empty result set
func decodeResults(payload json.RawMessage) ([]domain.ResultItem, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []domain.ResultItem{}, nil
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: query-results wants an array", ErrMalformedPayload)
	}
	var results []domain.ResultItem
	if err := json.Unmarshal(trimmed, &results); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return results, nil
}

func decodeObject(payload json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: want an object", ErrMalformedPayload)
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}
