package main

import (
	"errors"
	"fmt"
	"sync"
)

type fakeAPI struct {
	mu sync.Mutex

	foreground Handle
	titles     map[Handle]string
	closed     map[Handle]bool
	failSet    map[Handle]bool
	failClear  map[Handle]bool

	sets   []Handle
	clears []Handle
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		titles:    make(map[Handle]string),
		closed:    make(map[Handle]bool),
		failSet:   make(map[Handle]bool),
		failClear: make(map[Handle]bool),
	}
}

var errAccessDenied = errors.New("access denied")

func (f *fakeAPI) focus(h Handle, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.foreground = h
	f.titles[h] = title
}

func (f *fakeAPI) Foreground() Handle {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.foreground
}

func (f *fakeAPI) Title(h Handle) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.titles[h]
}

func (f *fakeAPI) IsWindow(h Handle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !f.closed[h]
}

func (f *fakeAPI) SetTopmost(h Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSet[h] {
		return fmt.Errorf("USER32.SetWindowPos: %w", errAccessDenied)
	}
	f.sets = append(f.sets, h)
	return nil
}

func (f *fakeAPI) ClearTopmost(h Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.clears = append(f.clears, h)
	if f.failClear[h] {
		return fmt.Errorf("USER32.SetWindowPos: %w", errAccessDenied)
	}
	return nil
}

func (f *fakeAPI) setCalls() []Handle {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Handle(nil), f.sets...)
}

func (f *fakeAPI) clearCalls() []Handle {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Handle(nil), f.clears...)
}

func count(hs []Handle, h Handle) int {
	n := 0
	for _, x := range hs {
		if x == h {
			n++
		}
	}
	return n
}

type fakeSink struct {
	mu       sync.Mutex
	tooltips []string
	closed   bool
}

func (s *fakeSink) SetTooltip(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tooltips = append(s.tooltips, text)
}

func (s *fakeSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

func (s *fakeSink) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tooltips) == 0 {
		return ""
	}
	return s.tooltips[len(s.tooltips)-1]
}

// captureLog collects log lines in memory.
type captureLog struct {
	mu    sync.Mutex
	lines []string
}

func (c *captureLog) logger(debug bool) logger {
	return logger{
		debug: debug,
		print: func(v ...interface{}) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.lines = append(c.lines, fmt.Sprint(v...))
		},
	}
}

func (c *captureLog) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.lines...)
}

func newTestPinner(api windowAPI) (*pinner, *fakeSink, *captureLog) {
	cl := &captureLog{}
	p := newPinner(appName, api, cl.logger(true))
	p.exit = func(int) {}
	sink := &fakeSink{}
	p.SetSink(sink)
	return p, sink, cl
}
