//go:build darwin && cgo

// Package cg captures the main display through CoreGraphics.
package cg

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>

// grabMainDisplay draws a snapshot of the main display into a malloc'd
// 32-bit little-endian BGRA buffer with its origin at the top left.
// Returns NULL on failure; *blitFailed distinguishes a draw failure
// from an acquisition failure.
static void* grabMainDisplay(size_t* width, size_t* height, int* blitFailed) {
	*blitFailed = 0;

	CGImageRef image = CGDisplayCreateImage(CGMainDisplayID());
	if (!image) {
		return NULL;
	}

	size_t w = CGImageGetWidth(image);
	size_t h = CGImageGetHeight(image);
	size_t rowLen = w * 4;

	void* buf = malloc(rowLen * h);
	if (!buf) {
		CGImageRelease(image);
		*blitFailed = 1;
		return NULL;
	}

	CGColorSpaceRef space = CGColorSpaceCreateDeviceRGB();
	CGContextRef ctx = CGBitmapContextCreate(buf, w, h, 8, rowLen, space,
		kCGImageAlphaPremultipliedFirst | kCGBitmapByteOrder32Little);
	if (!ctx) {
		CGColorSpaceRelease(space);
		CGImageRelease(image);
		free(buf);
		*blitFailed = 1;
		return NULL;
	}

	CGContextDrawImage(ctx, CGRectMake(0, 0, w, h), image);
	CGContextRelease(ctx);
	CGColorSpaceRelease(space);
	CGImageRelease(image);

	*width = w;
	*height = h;
	return buf;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"screengrab/internal/capture"
)

// Grab copies the main display into a freshly allocated BGRA buffer.
// CoreGraphics hands the image back top-down, so no row correction is
// needed.
func Grab() (capture.RawCapture, error) {
	var w, h C.size_t
	var blitFailed C.int
	buf := C.grabMainDisplay(&w, &h, &blitFailed)
	if buf == nil {
		if blitFailed != 0 {
			return capture.RawCapture{}, fmt.Errorf("cg: draw display image: %w", capture.ErrBlitFailed)
		}
		return capture.RawCapture{}, fmt.Errorf("cg: create display image: %w", capture.ErrDeviceUnavailable)
	}
	defer C.free(buf)

	size := int(w) * int(h) * 4
	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(buf), size))

	return capture.RawCapture{
		Bytes:  data,
		Width:  int(w),
		Height: int(h),
		Order:  capture.TopDown,
	}, nil
}
