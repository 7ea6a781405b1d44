//go:build !windows

package main

func runHotkeys(bindings []hotkeyBinding, d *dispatcher) error {
	return errUnsupported
}
