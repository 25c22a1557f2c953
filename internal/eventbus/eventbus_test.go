package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchlist/internal/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (r *recorder) handle(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) snapshot() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(domain.EventWindowResize, rec.handle)

	for i := 1; i <= 50; i++ {
		b.Publish(domain.WindowResizeEvent{Height: i})
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 50 }, time.Second, 5*time.Millisecond)
	for i, e := range rec.snapshot() {
		assert.Equal(t, i+1, e.(domain.WindowResizeEvent).Height)
	}
}

func TestSubscribeOnlyReceivesItsType(t *testing.T) {
	b := New()
	defer b.Close()

	next := &recorder{}
	prev := &recorder{}
	b.Subscribe(domain.EventSelectNextItem, next.handle)
	b.Subscribe(domain.EventSelectPreviousItem, prev.handle)

	b.Publish(domain.SelectNextItemEvent{})
	b.Publish(domain.SelectNextItemEvent{})
	b.Publish(domain.SelectPreviousItemEvent{})

	require.Eventually(t, func() bool {
		return len(next.snapshot()) == 2 && len(prev.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	kept := &recorder{}
	dropped := &recorder{}
	b.Subscribe(domain.EventSelectNextItem, kept.handle)
	unsubscribe := b.Subscribe(domain.EventSelectNextItem, dropped.handle)

	unsubscribe()
	unsubscribe()

	b.Publish(domain.SelectNextItemEvent{})

	require.Eventually(t, func() bool { return len(kept.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, dropped.snapshot())
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(domain.EventSelectNextItem, func(DomainEvent) { panic("boom") })
	b.Subscribe(domain.EventSelectNextItem, rec.handle)

	b.Publish(domain.SelectNextItemEvent{})
	b.Publish(domain.SelectNextItemEvent{})

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	rec := &recorder{}
	b.Subscribe(domain.EventSelectNextItem, rec.handle)
	b.Close()
	b.Close()

	b.Publish(domain.SelectNextItemEvent{})
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}
