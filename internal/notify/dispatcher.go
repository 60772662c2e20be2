// Package notify delivers engagement events to the external notification
// transport. Delivery is best-effort and sits outside every transaction: a
// full queue or a failing sink is logged and otherwise invisible to callers.
package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// EventType classifies the engagement that produced an event
type EventType string

const (
	EventLike    EventType = "LIKE"
	EventComment EventType = "COMMENT"
)

// EntityType names the entity an event points at
type EntityType string

const (
	EntityPost    EntityType = "post"
	EntityComment EntityType = "comment"
)

// Event is one notification to one recipient
type Event struct {
	RecipientID uint       `json:"recipient_id"`
	Type        EventType  `json:"type"`
	ActorID     uint       `json:"actor_id"`
	EntityID    uint       `json:"entity_id"`
	EntityType  EntityType `json:"entity_type"`
	Message     string     `json:"message"`
}

// Sink is the external delivery transport. Implementations own retries,
// batching and client fan-out; the dispatcher only hands events over.
type Sink interface {
	Deliver(ctx context.Context, event Event) error
}

// Dispatcher queues events on a bounded channel and drains them to the sink
// from a single worker goroutine. Dispatch never blocks the request path.
type Dispatcher struct {
	sink    Sink
	events  chan Event
	logger  *zap.Logger
	wg      sync.WaitGroup
	closing chan struct{}
	once    sync.Once
}

// NewDispatcher creates a dispatcher with the given queue capacity and
// starts its worker
func NewDispatcher(sink Sink, queueSize int, logger *zap.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	d := &Dispatcher{
		sink:    sink,
		events:  make(chan Event, queueSize),
		logger:  logger,
		closing: make(chan struct{}),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Dispatch enqueues an event. When the dispatcher is closing or the queue is
// full the event is dropped with a warning; notification is a side channel,
// not part of the transactional contract.
func (d *Dispatcher) Dispatch(event Event) {
	select {
	case <-d.closing:
		d.logger.Warn("notification dropped, dispatcher closing",
			zap.Uint("recipient_id", event.RecipientID),
			zap.String("type", string(event.Type)))
		return
	default:
	}
	select {
	case d.events <- event:
	default:
		d.logger.Warn("notification dropped, queue full",
			zap.Uint("recipient_id", event.RecipientID),
			zap.String("type", string(event.Type)))
	}
}

// Close stops accepting events and drains the queue, waiting up to the given
// timeout for in-flight deliveries
func (d *Dispatcher) Close(timeout time.Duration) {
	d.once.Do(func() {
		close(d.closing)
	})
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		d.logger.Warn("dispatcher close timed out with events still queued")
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case event := <-d.events:
			d.deliver(event)
		case <-d.closing:
			for {
				select {
				case event := <-d.events:
					d.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.sink.Deliver(ctx, event); err != nil {
		d.logger.Error("notification delivery failed",
			zap.Uint("recipient_id", event.RecipientID),
			zap.String("type", string(event.Type)),
			zap.Uint("entity_id", event.EntityID),
			zap.Error(err))
	}
}
