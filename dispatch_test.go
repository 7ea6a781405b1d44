package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	d := newDispatcher(logger{})

	var got []event
	d.Handle(toggleRequested, func() { got = append(got, toggleRequested) })
	d.Handle(statusRequested, func() { got = append(got, statusRequested) })

	assert.True(t, d.Dispatch(toggleRequested))
	assert.True(t, d.Dispatch(statusRequested))
	assert.False(t, d.Dispatch(exitRequested))
	assert.Equal(t, []event{toggleRequested, statusRequested}, got)
}

func TestDispatchReplace(t *testing.T) {
	d := newDispatcher(logger{})

	n := 0
	d.Handle(exitRequested, func() { n += 1 })
	d.Handle(exitRequested, func() { n += 10 })
	d.Dispatch(exitRequested)

	assert.Equal(t, 10, n)
}

func TestDispatchRecoversPanic(t *testing.T) {
	cl := &captureLog{}
	d := newDispatcher(cl.logger(false))
	d.Handle(toggleRequested, func() { panic("boom") })

	assert.NotPanics(t, func() {
		assert.True(t, d.Dispatch(toggleRequested))
	})
	assert.Len(t, cl.all(), 1)
}

func TestDispatchToPinner(t *testing.T) {
	api := newFakeAPI()
	api.focus(42, "browser")
	p, sink, _ := newTestPinner(api)

	d := newDispatcher(logger{})
	d.Handle(toggleRequested, p.OnToggleRequested)
	d.Handle(statusRequested, p.OnStatusRequested)

	d.Dispatch(toggleRequested)
	d.Dispatch(statusRequested)

	assert.Equal(t, "vvpin - pinned count: 1", sink.last())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "toggle", toggleRequested.String())
	assert.Equal(t, "exit", exitRequested.String())
	assert.Equal(t, "status", statusRequested.String())
	assert.Equal(t, "unknown", event(0).String())
}
