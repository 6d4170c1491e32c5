package realtime

import (
	"sync"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
)

// dispatcher multiplexes pushed events to named-event subscribers. Each
// callback invocation is isolated: a panicking subscriber never prevents
// delivery to the remaining subscribers of the same event.
type dispatcher struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]func(models.Event)

	logger *logger.Logger
}

func newDispatcher(log *logger.Logger) *dispatcher {
	return &dispatcher{
		subs:   make(map[string]map[int]func(models.Event)),
		logger: log,
	}
}

// on registers cb for the named event and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (d *dispatcher) on(event string, cb func(models.Event)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.subs[event] == nil {
		d.subs[event] = make(map[int]func(models.Event))
	}

	id := d.nextID
	d.nextID++
	d.subs[event][id] = cb

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.subs[event], id)
	}
}

// dispatch delivers ev to every subscriber registered for ev.Type.
func (d *dispatcher) dispatch(ev models.Event) {
	d.mu.RLock()
	callbacks := make([]func(models.Event), 0, len(d.subs[ev.Type]))
	for _, cb := range d.subs[ev.Type] {
		callbacks = append(callbacks, cb)
	}
	d.mu.RUnlock()

	for _, cb := range callbacks {
		d.invoke(ev, cb)
	}
}

func (d *dispatcher) invoke(ev models.Event, cb func(models.Event)) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Str("event", ev.Type).
				Interface("panic", r).
				Msg("subscriber callback panicked")
		}
	}()

	cb(ev)
}

// clear drops every subscription.
func (d *dispatcher) clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = make(map[string]map[int]func(models.Event))
}
