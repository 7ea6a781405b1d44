package main

import (
	"context"
	"time"

	"github.com/shu-go/nmfmt"
)

const defaultInterval = 100 * time.Millisecond

// RunReassert re-applies the topmost flag to every pinned window once per
// interval until ctx is done.
func (p *pinner) RunReassert(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultInterval
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
			//nop
		}

		p.Reassert()

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

// Reassert runs one reassertion cycle. Windows that no longer exist are
// dropped from the pinned set unless p.retain is set.
func (p *pinner) Reassert() {
	for _, h := range p.pinned.Snapshot() {
		p.reassertOne(h)
	}
}

func (p *pinner) reassertOne(h Handle) {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	// un-pinned or shut down since the snapshot was taken
	if p.closed || !p.pinned.Contains(h) {
		return
	}

	if !p.api.IsWindow(h) {
		if p.retain {
			return
		}
		p.pinned.Remove(h)
		p.log.debugf("pruned closed window $h", nmfmt.M{"h": h})
		return
	}

	if err := p.api.SetTopmost(h); err != nil {
		p.log.debugf("reassert $h failed ($err)", nmfmt.M{"h": h, "err": err})
	}
}
