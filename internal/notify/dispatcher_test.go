package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	fail   map[uint]bool
}

func (s *recordingSink) Deliver(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail[event.RecipientID] {
		return errors.New("sink unavailable")
	}
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 16, zap.NewNop())

	d.Dispatch(Event{RecipientID: 1, Type: EventLike, ActorID: 9, EntityID: 5, EntityType: EntityPost})
	d.Dispatch(Event{RecipientID: 2, Type: EventComment, ActorID: 9, EntityID: 6, EntityType: EntityComment})
	d.Close(time.Second)

	events := sink.Events()
	if assert.Len(t, events, 2) {
		assert.Equal(t, uint(1), events[0].RecipientID)
		assert.Equal(t, uint(2), events[1].RecipientID)
	}
}

func TestDispatcherSwallowsSinkFailures(t *testing.T) {
	sink := &recordingSink{fail: map[uint]bool{1: true}}
	d := NewDispatcher(sink, 16, zap.NewNop())

	// failing delivery must not stop later ones
	d.Dispatch(Event{RecipientID: 1, Type: EventLike})
	d.Dispatch(Event{RecipientID: 2, Type: EventLike})
	d.Close(time.Second)

	events := sink.Events()
	if assert.Len(t, events, 1) {
		assert.Equal(t, uint(2), events[0].RecipientID)
	}
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 16, zap.NewNop())
	d.Close(time.Second)

	// must neither panic nor block
	d.Dispatch(Event{RecipientID: 3, Type: EventLike})
	assert.Empty(t, sink.Events())
}

func TestDispatchNeverBlocksWhenQueueFull(t *testing.T) {
	block := make(chan struct{})
	sink := &blockingSink{release: block}
	d := NewDispatcher(sink, 1, zap.NewNop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Dispatch(Event{RecipientID: uint(i + 1), Type: EventLike})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
	close(block)
	d.Close(time.Second)
}

type blockingSink struct {
	release chan struct{}
}

func (s *blockingSink) Deliver(_ context.Context, _ Event) error {
	<-s.release
	return nil
}
