//go:build windows

package main

import (
	"fmt"
	"runtime"

	"github.com/lxn/win"
)

const wmHotkey = 0x0312

// runHotkeys registers the bindings on the calling thread and dispatches
// WM_HOTKEY until the thread receives WM_QUIT.
func runHotkeys(bindings []hotkeyBinding, d *dispatcher) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for i, b := range bindings {
		r, _, err := registerHotKey.Call(0, uintptr(i+1), uintptr(b.key.Mods|modNoRepeat), uintptr(b.key.Key))
		if r == 0 {
			unregisterHotkeys(i)
			return fmt.Errorf("USER32.RegisterHotKey(%v): %w", b.key, err)
		}
	}
	defer unregisterHotkeys(len(bindings))

	var msg win.MSG
	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		if msg.Message != wmHotkey {
			continue
		}

		id := int(msg.WParam)
		if id < 1 || len(bindings) < id {
			continue
		}
		d.Dispatch(bindings[id-1].ev)
	}

	return nil
}

func unregisterHotkeys(n int) {
	for id := 1; id <= n; id++ {
		unregisterHotKey.Call(0, uintptr(id))
	}
}
