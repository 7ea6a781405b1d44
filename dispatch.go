package main

import (
	"sync"

	"github.com/shu-go/nmfmt"
)

type event int

const (
	toggleRequested event = iota + 1
	exitRequested
	statusRequested
)

func (e event) String() string {
	switch e {
	case toggleRequested:
		return "toggle"
	case exitRequested:
		return "exit"
	case statusRequested:
		return "status"
	default:
		return "unknown"
	}
}

// dispatcher routes events from the hotkey and tray threads to handlers.
type dispatcher struct {
	mu       sync.RWMutex
	handlers map[event]func()
	log      logger
}

func newDispatcher(log logger) *dispatcher {
	return &dispatcher{
		handlers: make(map[event]func()),
		log:      log,
	}
}

// Handle registers fn for ev, replacing any previous handler.
func (d *dispatcher) Handle(ev event, fn func()) {
	d.mu.Lock()
	d.handlers[ev] = fn
	d.mu.Unlock()
}

// Dispatch calls the handler of ev and reports whether there was one.
// A panicking handler is logged and does not propagate.
func (d *dispatcher) Dispatch(ev event) (found bool) {
	d.mu.RLock()
	fn, found := d.handlers[ev]
	d.mu.RUnlock()

	if !found || fn == nil {
		d.log.debugf("no handler for $ev", nmfmt.M{"ev": ev})
		return false
	}

	d.log.debugf("dispatch $ev", nmfmt.M{"ev": ev})

	defer func() {
		if r := recover(); r != nil {
			d.log.printf("$ev handler panicked: $r", nmfmt.M{"ev": ev, "r": r})
		}
	}()
	fn()
	return found
}
