//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	dwmapi                    = windows.NewLazySystemDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	// DWMWA_SYSTEMBACKDROP_TYPE, available from Windows 11 22H2.
	dwmwaSystemBackdropType = 38
	// DWMSBT_MAINWINDOW is the mica material.
	dwmsbtMainWindow = 2
)

// setNativeMica asks DWM to draw the mica material behind hwnd.
func setNativeMica(hwnd uintptr) error {
	if hwnd == 0 {
		return fmt.Errorf("apply mica: %w", ErrBackdropUnsupported)
	}
	if err := procDwmSetWindowAttribute.Find(); err != nil {
		return fmt.Errorf("apply mica: %w", err)
	}

	value := int32(dwmsbtMainWindow)
	hr, _, _ := procDwmSetWindowAttribute.Call(
		hwnd,
		dwmwaSystemBackdropType,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
	if hr != 0 {
		return fmt.Errorf("apply mica: DwmSetWindowAttribute HRESULT 0x%08x", uint32(hr))
	}
	return nil
}
