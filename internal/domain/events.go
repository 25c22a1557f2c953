package domain

// EventType represents the type of domain event. Message events use the
// channel name they travel under on the wire.
type EventType string

// Inbound messages, sent by the backing process to the list
const (
	EventQueryResults       EventType = "query-results"
	EventSelectPreviousItem EventType = "select-previous-item"
	EventSelectNextItem     EventType = "select-next-item"
	EventCopyCurrentItemKey EventType = "copy-current-item-key"
	EventExecuteCurrentItem EventType = "execute-current-item"
)

// Outbound messages, sent by the list to the backing process
const (
	EventWindowResize       EventType = "window-resize"
	EventItemDetailsRequest EventType = "item-details-request"
	EventCopyCurrentItem    EventType = "copy-current-item"
	EventExecuteItem        EventType = "execute-item"
)

// Local events
const (
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventConfigChanged EventType = "ConfigChanged"
	EventError         EventType = "Error"
)

// InboundEvents lists every message the list subscribes to
var InboundEvents = []EventType{
	EventQueryResults,
	EventSelectPreviousItem,
	EventSelectNextItem,
	EventCopyCurrentItemKey,
	EventExecuteCurrentItem,
}

// OutboundEvents lists every message the list sends
var OutboundEvents = []EventType{
	EventWindowResize,
	EventItemDetailsRequest,
	EventCopyCurrentItem,
	EventExecuteItem,
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryResultsEvent carries a fresh result set for the current query
type QueryResultsEvent struct {
	Results []ResultItem
}

func (e QueryResultsEvent) Type() EventType { return EventQueryResults }

// SelectPreviousItemEvent asks the list to move the selection up
type SelectPreviousItemEvent struct{}

func (e SelectPreviousItemEvent) Type() EventType { return EventSelectPreviousItem }

// SelectNextItemEvent asks the list to move the selection down
type SelectNextItemEvent struct{}

func (e SelectNextItemEvent) Type() EventType { return EventSelectNextItem }

// CopyCurrentItemKeyEvent asks the list to copy the selected item
type CopyCurrentItemKeyEvent struct{}

func (e CopyCurrentItemKeyEvent) Type() EventType { return EventCopyCurrentItemKey }

// ExecuteCurrentItemEvent asks the list to execute the selected item
type ExecuteCurrentItemEvent struct{}

func (e ExecuteCurrentItemEvent) Type() EventType { return EventExecuteCurrentItem }

// WindowResizeEvent requests a new launcher window height
type WindowResizeEvent struct {
	Height int `json:"height"`
}

func (e WindowResizeEvent) Type() EventType { return EventWindowResize }

// ItemDetailsRequestEvent asks the backing process for an item's extended details
type ItemDetailsRequestEvent struct {
	Item ResultItem
}

func (e ItemDetailsRequestEvent) Type() EventType { return EventItemDetailsRequest }

// CopyCurrentItemEvent asks the backing process to copy an item
type CopyCurrentItemEvent struct {
	Item ResultItem
}

func (e CopyCurrentItemEvent) Type() EventType { return EventCopyCurrentItem }

// ExecuteItemEvent asks the backing process to run an item's action
type ExecuteItemEvent struct {
	Action Action     `json:"action"`
	Item   ResultItem `json:"item"`
}

func (e ExecuteItemEvent) Type() EventType { return EventExecuteItem }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when the configuration file changed on disk
type ConfigChangedEvent struct {
	Theme Theme
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
