//go:build windows

// Package gdi captures the primary display through the Win32 GDI.
package gdi

import (
	"fmt"
	"syscall"
	"unsafe"

	winapi "github.com/lxn/win"

	"screengrab/internal/capture"
)

var (
	libUser32, _            = syscall.LoadLibrary("user32.dll")
	funcGetDesktopWindow, _ = syscall.GetProcAddress(syscall.Handle(libUser32), "GetDesktopWindow")
)

// CAPTUREBLT includes layered (composited) windows in the copy. Without
// it, BitBlt leaves holes where overlay content sits on modern desktops.
const captureBlt = 0x40000000

// Grab copies the primary display into a freshly allocated BGRA buffer.
// The bitmap header asks for a negative height, so the rows arrive
// top-down and need no reordering. Every GDI handle acquired here is
// released before returning, error paths included.
func Grab() (capture.RawCapture, error) {
	hwnd := getDesktopWindow()
	hdcScreen := winapi.GetDC(hwnd)
	if hdcScreen == 0 {
		return capture.RawCapture{}, fmt.Errorf("gdi: GetDC: %w", capture.ErrDeviceUnavailable)
	}
	defer winapi.ReleaseDC(hwnd, hdcScreen)

	width := int(winapi.GetSystemMetrics(winapi.SM_CXSCREEN))
	height := int(winapi.GetSystemMetrics(winapi.SM_CYSCREEN))
	if width <= 0 || height <= 0 {
		return capture.RawCapture{Order: capture.TopDown}, nil
	}

	hdcMem := winapi.CreateCompatibleDC(hdcScreen)
	if hdcMem == 0 {
		return capture.RawCapture{}, fmt.Errorf("gdi: CreateCompatibleDC: %w", capture.ErrDeviceUnavailable)
	}
	defer winapi.DeleteDC(hdcMem)

	bitmap := winapi.CreateCompatibleBitmap(hdcScreen, int32(width), int32(height))
	if bitmap == 0 {
		return capture.RawCapture{}, fmt.Errorf("gdi: CreateCompatibleBitmap: %w", capture.ErrDeviceUnavailable)
	}
	defer winapi.DeleteObject(winapi.HGDIOBJ(bitmap))

	old := winapi.SelectObject(hdcMem, winapi.HGDIOBJ(bitmap))
	if old == 0 {
		return capture.RawCapture{}, fmt.Errorf("gdi: SelectObject: %w", capture.ErrDeviceUnavailable)
	}
	defer winapi.SelectObject(hdcMem, old)

	if !winapi.BitBlt(hdcMem, 0, 0, int32(width), int32(height), hdcScreen, 0, 0, winapi.SRCCOPY|captureBlt) {
		return capture.RawCapture{}, fmt.Errorf("gdi: BitBlt (last error %d): %w",
			winapi.GetLastError(), capture.ErrBlitFailed)
	}

	var header winapi.BITMAPINFOHEADER
	header.BiSize = uint32(unsafe.Sizeof(header))
	header.BiPlanes = 1
	header.BiBitCount = 32
	header.BiWidth = int32(width)
	header.BiHeight = int32(-height) // top-down rows
	header.BiCompression = winapi.BI_RGB
	header.BiSizeImage = 0

	// GetDIBits balks at using Go memory on some systems. The MSDN
	// example stages the rows through GlobalAlloc, so we do too. See:
	// https://docs.microsoft.com/en-gb/windows/desktop/gdi/capturing-an-image
	size := width * height * 4
	hmem := winapi.GlobalAlloc(winapi.GMEM_MOVEABLE, uintptr(size))
	defer winapi.GlobalFree(hmem)
	memptr := winapi.GlobalLock(hmem)
	defer winapi.GlobalUnlock(hmem)

	if winapi.GetDIBits(hdcMem, bitmap, 0, uint32(height), (*uint8)(memptr),
		(*winapi.BITMAPINFO)(unsafe.Pointer(&header)), winapi.DIB_RGB_COLORS) == 0 {
		return capture.RawCapture{}, fmt.Errorf("gdi: GetDIBits (last error %d): %w",
			winapi.GetLastError(), capture.ErrBlitFailed)
	}

	buf := make([]byte, size)
	copy(buf, unsafe.Slice((*byte)(memptr), size))

	return capture.RawCapture{
		Bytes:  buf,
		Width:  width,
		Height: height,
		Order:  capture.TopDown,
	}, nil
}

func getDesktopWindow() winapi.HWND {
	ret, _, _ := syscall.Syscall(funcGetDesktopWindow, 0, 0, 0, 0)
	return winapi.HWND(ret)
}
