//go:build !windows

package main

import (
	"fmt"
	"runtime"
)

var errUnsupported = fmt.Errorf("user32.dll is not available on %s/%s", runtime.GOOS, runtime.GOARCH)

func checkDependencies() error {
	return errUnsupported
}

type unsupportedAPI struct{}

func newWindowAPI() windowAPI {
	return unsupportedAPI{}
}

func (unsupportedAPI) Foreground() Handle { return 0 }
func (unsupportedAPI) Title(h Handle) string { return "" }
func (unsupportedAPI) IsWindow(h Handle) bool { return false }
func (unsupportedAPI) SetTopmost(h Handle) error { return errUnsupported }
func (unsupportedAPI) ClearTopmost(h Handle) error { return errUnsupported }
