//go:build windows

package main

import (
	"errors"
	"runtime"
	"sync"
	"unsafe"

	"github.com/lxn/win"
	"github.com/shu-go/nmfmt"
	"golang.org/x/sys/windows"
)

const (
	wmApp          = 0x8000
	wmAppTrayMsg   = wmApp + 1
	wmNull         = 0x0000
	wmLButtonUp    = 0x0202
	wmRButtonUp    = 0x0205
	ninSelect      = win.WM_USER + 0
	ninKeySelect   = win.WM_USER + 1
	nifShowTip     = 0x00000080
	menuIDStatus   = 1
	menuIDExit     = 2
	trayClassName  = "vvpinTrayClass"
	trayWindowName = "vvpin tray"
)

type tray struct {
	d   *dispatcher
	log logger

	mu             sync.Mutex
	hwnd           win.HWND
	nid            win.NOTIFYICONDATA
	taskbarCreated uint32
}

// startTray creates the notification icon on its own thread and returns once
// the icon is shown. The thread keeps pumping messages for the process
// lifetime.
func startTray(tip string, d *dispatcher, log logger) (*tray, error) {
	t := &tray{d: d, log: log}

	ready := make(chan error, 1)
	go t.run(tip, ready)

	if err := <-ready; err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tray) run(tip string, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := t.create(tip); err != nil {
		ready <- err
		return
	}
	ready <- nil

	var msg win.MSG
	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

func (t *tray) create(tip string) error {
	hInst := win.GetModuleHandle(nil)
	className, _ := windows.UTF16PtrFromString(trayClassName)
	windowName, _ := windows.UTF16PtrFromString(trayWindowName)
	taskbarCreated, _ := windows.UTF16PtrFromString("TaskbarCreated")

	wc := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		LpfnWndProc:   windows.NewCallback(t.wndProc),
		HInstance:     hInst,
		LpszClassName: className,
	}
	if win.RegisterClassEx(&wc) == 0 {
		return errors.New("USER32.RegisterClassExW returned 0")
	}

	hwnd := win.CreateWindowEx(0, className, windowName, 0, 0, 0, 0, 0, 0, 0, hInst, nil)
	if hwnd == 0 {
		return errors.New("USER32.CreateWindowExW returned NULL")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.hwnd = hwnd
	t.taskbarCreated = win.RegisterWindowMessage(taskbarCreated)

	t.nid = win.NOTIFYICONDATA{}
	t.nid.CbSize = uint32(unsafe.Sizeof(t.nid))
	t.nid.HWnd = hwnd
	t.nid.UID = 1
	t.nid.UFlags = win.NIF_ICON | win.NIF_MESSAGE | win.NIF_TIP
	t.nid.UCallbackMessage = wmAppTrayMsg
	t.nid.HIcon = createTrayIcon()
	copy(t.nid.SzTip[:], tooltipUTF16(tip))

	if !win.Shell_NotifyIcon(win.NIM_ADD, &t.nid) {
		return errors.New("SHELL32.Shell_NotifyIconW(NIM_ADD) returned FALSE")
	}
	t.nid.UVersion = win.NOTIFYICON_VERSION_4
	win.Shell_NotifyIcon(win.NIM_SETVERSION, &t.nid)

	return nil
}

func (t *tray) SetTooltip(text string) {
	tip := tooltipUTF16(text)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hwnd == 0 {
		return
	}

	for i := range t.nid.SzTip {
		t.nid.SzTip[i] = 0
	}
	copy(t.nid.SzTip[:], tip)

	t.nid.UFlags = win.NIF_TIP | nifShowTip
	if !win.Shell_NotifyIcon(win.NIM_MODIFY, &t.nid) {
		t.log.debugf("tooltip update failed: $tip", nmfmt.M{"tip": text})
	}
	t.nid.UFlags = win.NIF_ICON | win.NIF_MESSAGE | win.NIF_TIP
}

// Close removes the icon from the notification area.
func (t *tray) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hwnd == 0 {
		return
	}
	win.Shell_NotifyIcon(win.NIM_DELETE, &t.nid)
	t.hwnd = 0
}

func (t *tray) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == t.taskbarCreated && msg != 0 {
		// explorer restarted
		t.mu.Lock()
		if t.hwnd != 0 {
			win.Shell_NotifyIcon(win.NIM_ADD, &t.nid)
			t.nid.UVersion = win.NOTIFYICON_VERSION_4
			win.Shell_NotifyIcon(win.NIM_SETVERSION, &t.nid)
		}
		t.mu.Unlock()
		return 0
	}

	if msg == wmAppTrayMsg {
		switch uint32(lParam) & 0xFFFF {
		case ninSelect, ninKeySelect, wmLButtonUp:
			t.d.Dispatch(statusRequested)
		case wmRButtonUp, win.WM_CONTEXTMENU:
			t.showMenu(hwnd)
		}
		return 0
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (t *tray) showMenu(hwnd win.HWND) {
	hMenu := win.CreatePopupMenu()
	if hMenu == 0 {
		return
	}
	defer win.DestroyMenu(hMenu)

	statusItem, _ := windows.UTF16PtrFromString(menuShowStatus)
	appendMenu.Call(uintptr(hMenu), uintptr(win.MF_STRING), menuIDStatus, uintptr(unsafe.Pointer(statusItem)))
	exitItem, _ := windows.UTF16PtrFromString(menuExit)
	appendMenu.Call(uintptr(hMenu), uintptr(win.MF_STRING), menuIDExit, uintptr(unsafe.Pointer(exitItem)))

	var pt win.POINT
	win.GetCursorPos(&pt)
	win.SetForegroundWindow(hwnd)

	cmd, _, _ := trackPopupMenu.Call(
		uintptr(hMenu),
		uintptr(win.TPM_RETURNCMD|win.TPM_RIGHTBUTTON),
		uintptr(pt.X),
		uintptr(pt.Y),
		0,
		uintptr(hwnd),
		0,
	)
	win.PostMessage(hwnd, wmNull, 0, 0)

	switch cmd {
	case menuIDStatus:
		t.d.Dispatch(statusRequested)
	case menuIDExit:
		t.d.Dispatch(exitRequested)
	}
}

func createTrayIcon() win.HICON {
	bits := bgraBits(trayIconImage())

	hColor := win.CreateBitmap(iconSize, iconSize, 1, 32, unsafe.Pointer(&bits[0]))
	if hColor == 0 {
		return defaultIcon()
	}
	defer win.DeleteObject(win.HGDIOBJ(hColor))

	hMask := win.CreateBitmap(iconSize, iconSize, 1, 1, nil)
	if hMask == 0 {
		return defaultIcon()
	}
	defer win.DeleteObject(win.HGDIOBJ(hMask))

	var ii win.ICONINFO
	ii.FIcon = 1
	ii.HbmColor = hColor
	ii.HbmMask = hMask

	if h := win.CreateIconIndirect(&ii); h != 0 {
		return h
	}
	return defaultIcon()
}

func defaultIcon() win.HICON {
	return win.LoadIcon(0, win.MAKEINTRESOURCE(win.IDI_APPLICATION))
}
