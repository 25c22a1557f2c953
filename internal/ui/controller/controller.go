// Package controller binds the result list to the store and the IPC channel.
//
// The controller reacts to the five inbound list messages. Navigation goes
// through the store and scrolls the list view through its Scroller handle;
// copy and execute read the current selection and send the matching
// outbound message. Handlers read the store on every call, so they always
// act on the current selection.
package controller

import (
	"sync"

	"github.com/sirupsen/logrus"

	"launchlist/internal/domain"
	"launchlist/internal/eventbus"
	"launchlist/internal/ui/state"
)

// Publisher sends outbound messages. Sends are fire and forget.
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Scroller is the imperative handle the list view exposes for scrolling
type Scroller interface {
	ScrollTo(offset int)
}

// Controller handles list messages
type Controller struct {
	store  *state.Store
	out    Publisher
	layout domain.Layout
	log    logrus.FieldLogger

	mu     sync.Mutex
	list   Scroller
	unsubs []func()
}

// New creates a controller dispatching to store and sending on out
func New(store *state.Store, out Publisher, layout domain.Layout, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		store:  store,
		out:    out,
		layout: layout,
		log:    log.WithField("component", "result-list"),
	}
}

// SetScroller attaches the list view handle; nil detaches it
func (c *Controller) SetScroller(s Scroller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = s
}

// Mount subscribes to the inbound messages on bus. Each event is passed to
// deliver, which must eventually call Handle; a nil deliver handles events
// directly on the bus goroutine. Mounting twice is a no-op.
func (c *Controller) Mount(bus eventbus.EventBus, deliver func(domain.DomainEvent)) {
	if deliver == nil {
		deliver = c.Handle
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.unsubs) > 0 {
		return
	}
	for _, t := range domain.InboundEvents {
		c.unsubs = append(c.unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			deliver(e)
		}))
	}
}

// Dispose removes every subscription made by Mount
func (c *Controller) Dispose() {
	c.mu.Lock()
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
}

// Mounted reports whether the controller is subscribed
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.unsubs) > 0
}

// Handle runs the handler for one inbound message to completion
func (c *Controller) Handle(event domain.DomainEvent) {
	switch e := event.(type) {
	case domain.QueryResultsEvent:
		c.OnQueryResults(e.Results)
	case domain.SelectPreviousItemEvent:
		c.OnSelectPrevious()
	case domain.SelectNextItemEvent:
		c.OnSelectNext()
	case domain.CopyCurrentItemKeyEvent:
		c.OnCopyCurrent()
	case domain.ExecuteCurrentItemEvent:
		c.OnExecuteCurrent()
	default:
		c.log.WithField("event", event.Type()).Warn("ignoring unexpected event")
	}
}

// OnQueryResults shows a new result set. A non-empty set first asks the
// launcher to resize its window to fit; an empty one clears the list.
func (c *Controller) OnQueryResults(results []domain.ResultItem) {
	if len(results) > 0 {
		height := c.layout.WindowHeight(len(results))
		c.out.Publish(domain.WindowResizeEvent{Height: height})
	}

	if len(results) > 0 {
		c.store.Dispatch(state.UpdateResultsAction{Results: results})
	} else {
		c.store.Dispatch(state.ResetResultsAction{})
	}
	c.log.WithField("count", len(results)).Debug("results updated")
}

// OnSelectPrevious moves the selection up unless the first item is selected
func (c *Controller) OnSelectPrevious() {
	if !c.store.State().CanSelectPrevious() {
		return
	}
	next := c.store.Dispatch(state.SelectPreviousItemAction{})
	c.scrollToItem(next.SelectedIndex)
	c.retrieveDetails(next.SelectedIndex)
}

// OnSelectNext moves the selection down unless the last item is selected
func (c *Controller) OnSelectNext() {
	if !c.store.State().CanSelectNext() {
		return
	}
	next := c.store.Dispatch(state.SelectNextItemAction{})
	c.scrollToItem(next.SelectedIndex)
	c.retrieveDetails(next.SelectedIndex)
}

// OnCopyCurrent asks the launcher to copy the selected item
func (c *Controller) OnCopyCurrent() {
	item, ok := c.store.State().SelectedItem()
	if !ok {
		c.log.Warn("copy requested with no results, dropping")
		return
	}
	c.out.Publish(domain.CopyCurrentItemEvent{Item: item})
}

// OnExecuteCurrent asks the launcher to run the selected item's action
func (c *Controller) OnExecuteCurrent() {
	item, ok := c.store.State().SelectedItem()
	if !ok {
		c.log.Warn("execute requested with no results, dropping")
		return
	}
	c.out.Publish(domain.ExecuteItemEvent{Action: item.Action, Item: item})
}

// scrollToItem scrolls the list view so the item at index is visible
func (c *Controller) scrollToItem(index int) {
	offset := c.layout.ScrollOffset(index)

	c.mu.Lock()
	list := c.list
	c.mu.Unlock()
	if list == nil {
		return
	}
	list.ScrollTo(offset)
}

// retrieveDetails requests the extended details of the item at index
func (c *Controller) retrieveDetails(index int) {
	item, ok := c.store.State().ItemAt(index)
	if !ok {
		return
	}
	c.out.Publish(domain.ItemDetailsRequestEvent{Item: item})
}
