package main

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/shu-go/nmfmt"
)

const unknownTitle = "unknown window"

// statusSink shows the latest status line to the user (the tray tooltip).
type statusSink interface {
	SetTooltip(text string)
	Close()
}

type nopSink struct{}

func (nopSink) SetTooltip(string) {}
func (nopSink) Close() {}

// pinner owns the pinned set and every operation that touches it.
type pinner struct {
	name   string
	api    windowAPI
	pinned *registry
	log    logger

	// retain keeps handles of closed windows instead of pruning them.
	retain bool
	exit   func(code int)

	// opMu serializes toggles, reassertion of a single handle and shutdown.
	opMu   sync.Mutex
	closed bool

	statusMu sync.Mutex
	status   string
	sink     statusSink

	stop     context.CancelFunc
	loopDone chan struct{}
	shutdown sync.Once
}

func newPinner(name string, api windowAPI, log logger) *pinner {
	return &pinner{
		name:   name,
		api:    api,
		pinned: newRegistry(),
		log:    log,
		exit:   os.Exit,
		status: "ready",
		sink:   nopSink{},
	}
}

// SetSink attaches the status surface and shows the current status on it.
func (p *pinner) SetSink(s statusSink) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()

	if s == nil {
		s = nopSink{}
	}
	p.sink = s
	p.sink.SetTooltip(tooltipText(p.name, p.status))
}

func (p *pinner) Status() string {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()

	return p.status
}

func (p *pinner) setStatus(msg string) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()

	p.status = msg
	p.sink.SetTooltip(tooltipText(p.name, msg))
	p.log.println(msg)
}

// Toggle flips the pin state of the foreground window.
// Without a foreground window it does nothing.
func (p *pinner) Toggle() {
	h := p.api.Foreground()
	if h == 0 {
		p.log.debugf("toggle: no foreground window", nil)
		return
	}
	p.ToggleHandle(h)
}

// ToggleHandle flips the pin state of h. The registry changes only when the OS
// accepted the request.
func (p *pinner) ToggleHandle(h Handle) {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	if p.closed {
		return
	}

	title := p.api.Title(h)
	if title == "" {
		title = unknownTitle
	}

	if p.pinned.Contains(h) {
		if err := p.api.ClearTopmost(h); err != nil {
			p.log.printf("un-pin failed: $title ($err)", nmfmt.M{"title": title, "err": err})
			return
		}
		p.pinned.Remove(h)
		p.setStatus("un-pinned: " + title)
		return
	}

	if err := p.api.SetTopmost(h); err != nil {
		p.log.printf("pin failed: $title ($err)", nmfmt.M{"title": title, "err": err})
		return
	}
	p.pinned.Add(h)
	p.setStatus("pinned: " + title)
}

func (p *pinner) OnToggleRequested() {
	p.Toggle()
}

func (p *pinner) OnStatusRequested() {
	p.setStatus("pinned count: " + strconv.Itoa(p.pinned.Len()))
}

// OnExitRequested un-pins everything and terminates the process with 0.
func (p *pinner) OnExitRequested() {
	p.Shutdown()
	p.exit(0)
}

// Shutdown stops the reassertion loop and clears the topmost flag of every
// pinned window. Individual failures are logged and skipped.
// Later calls do nothing.
func (p *pinner) Shutdown() {
	p.shutdown.Do(func() {
		if p.stop != nil {
			p.stop()
			<-p.loopDone
		}

		p.opMu.Lock()
		p.closed = true
		hs := p.pinned.Clear()
		p.opMu.Unlock()

		for _, h := range hs {
			if err := p.api.ClearTopmost(h); err != nil {
				p.log.printf("un-pin on exit failed: $h ($err)", nmfmt.M{"h": h, "err": err})
			}
		}

		p.statusMu.Lock()
		p.sink.Close()
		p.statusMu.Unlock()
	})
}

// Start runs the reassertion loop in the background until Shutdown or until
// ctx is done.
func (p *pinner) Start(ctx context.Context, interval time.Duration) {
	ctx, p.stop = context.WithCancel(ctx)
	p.loopDone = make(chan struct{})

	go func() {
		defer close(p.loopDone)
		p.RunReassert(ctx, interval)
	}()
}
