//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32              = windows.NewLazySystemDLL("user32.dll")
	getForegroundWindow = user32.NewProc("GetForegroundWindow")
	getWindowText       = user32.NewProc("GetWindowTextW")
	getWindowTextLength = user32.NewProc("GetWindowTextLengthW")
	isWindow            = user32.NewProc("IsWindow")
	setWindowPos        = user32.NewProc("SetWindowPos")
	registerHotKey      = user32.NewProc("RegisterHotKey")
	unregisterHotKey    = user32.NewProc("UnregisterHotKey")
	appendMenu          = user32.NewProc("AppendMenuW")
	trackPopupMenu      = user32.NewProc("TrackPopupMenu")

	shell32          = windows.NewLazySystemDLL("shell32.dll")
	shellNotifyIcon  = shell32.NewProc("Shell_NotifyIconW")
	requiredFeatures = []*windows.LazyProc{
		getForegroundWindow,
		getWindowText,
		getWindowTextLength,
		isWindow,
		setWindowPos,
		registerHotKey,
		unregisterHotKey,
		appendMenu,
		trackPopupMenu,
		shellNotifyIcon,
	}
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010

	hwndTopmost   = ^uintptr(0)
	hwndNoTopmost = ^uintptr(1)
)

func checkDependencies() error {
	for _, p := range requiredFeatures {
		if err := p.Find(); err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
	}
	return nil
}

type user32API struct{}

func newWindowAPI() windowAPI {
	return user32API{}
}

func (user32API) Foreground() Handle {
	h, _, _ := getForegroundWindow.Call()
	return Handle(h)
}

func (user32API) Title(h Handle) string {
	tlen, _, _ := getWindowTextLength.Call(uintptr(h))
	if tlen == 0 {
		return ""
	}

	tlen++
	buff := make([]uint16, tlen)
	getWindowText.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buff[0])),
		uintptr(tlen),
	)
	return windows.UTF16ToString(buff)
}

func (user32API) IsWindow(h Handle) bool {
	b, _, _ := isWindow.Call(uintptr(h))
	return b != 0
}

func (user32API) SetTopmost(h Handle) error {
	return setZOrder(h, hwndTopmost)
}

func (user32API) ClearTopmost(h Handle) error {
	return setZOrder(h, hwndNoTopmost)
}

func setZOrder(h Handle, hwndInsertAfter uintptr) error {
	r, _, err := setWindowPos.Call(
		uintptr(h),
		hwndInsertAfter,
		0,
		0,
		0,
		0,
		swpNoSize|swpNoMove|swpNoActivate)
	if r == 0 {
		return fmt.Errorf("USER32.SetWindowPos: %w", err)
	}
	return nil
}
