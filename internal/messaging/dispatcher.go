// Package messaging implements the in-process event dispatcher that
// carries domain events from command handlers to subscribers such as the
// audit log.
package messaging

import (
	"sync"

	"github.com/alem-hub/alem-lms/internal/domain/shared"
	"github.com/alem-hub/alem-lms/pkg/logger"
)

// Dispatcher is a synchronous in-process event dispatcher. Execution in
// this system is strictly sequential, so handlers run inline on the
// publishing goroutine; the mutex only guards subscription bookkeeping.
type Dispatcher struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	log         *logger.Logger
}

// NewDispatcher creates a dispatcher. A nil logger falls back to the
// default stderr logger.
func NewDispatcher(log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Default()
	}
	return &Dispatcher{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		log:      log,
	}
}

// Subscribe registers a handler for a specific event type.
func (d *Dispatcher) Subscribe(eventType shared.EventType, handler shared.EventHandler) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// SubscribeAll registers a handler for every event.
func (d *Dispatcher) SubscribeAll(handler shared.EventHandler) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.allHandlers = append(d.allHandlers, handler)
}

// Publish delivers the event to all matching subscribers, in
// subscription order. Implements shared.EventPublisher.
func (d *Dispatcher) Publish(event shared.Event) {
	if event == nil {
		return
	}

	d.mu.RLock()
	typed := d.handlers[event.EventType()]
	global := d.allHandlers
	d.mu.RUnlock()

	d.log.Debug("publishing event", logger.String("event_type", string(event.EventType())))

	for _, h := range typed {
		h(event)
	}
	for _, h := range global {
		h(event)
	}
}

// NewAuditHandler returns a handler that writes every event it receives
// to the structured log. Subscribed via SubscribeAll in the bootstrap.
func NewAuditHandler(log *logger.Logger) shared.EventHandler {
	audit := log.With(logger.String("component", "audit"))
	return func(event shared.Event) {
		fields := []logger.Field{
			logger.String("event_type", string(event.EventType())),
			logger.String("aggregate_id", event.AggregateID()),
		}
		for k, v := range event.Payload() {
			fields = append(fields, logger.Field{Key: k, Value: v})
		}
		audit.Info("domain event", fields...)
	}
}
