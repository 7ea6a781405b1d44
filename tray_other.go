//go:build !windows

package main

type tray struct{}

func startTray(tip string, d *dispatcher, log logger) (*tray, error) {
	return nil, errUnsupported
}

func (*tray) SetTooltip(text string) {}
func (*tray) Close() {}
