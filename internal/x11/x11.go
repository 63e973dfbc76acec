//go:build linux || freebsd || openbsd || netbsd

// Package x11 captures the primary X11 screen over the X protocol.
package x11

import (
	"fmt"

	"github.com/gen2brain/shm"
	"github.com/jezek/xgb"
	mshm "github.com/jezek/xgb/shm"
	"github.com/jezek/xgb/xinerama"
	"github.com/jezek/xgb/xproto"

	"screengrab/internal/capture"
)

// Grab connects to the X server, copies the primary screen into a
// freshly allocated BGRA buffer and closes the connection again. The
// MIT-SHM extension is used when the server offers it; otherwise the
// image travels over the wire via GetImage. ZPixmap data is top-down,
// so no row reordering is needed.
func Grab() (capture.RawCapture, error) {
	c, err := xgb.NewConn()
	if err != nil {
		return capture.RawCapture{}, fmt.Errorf("x11: connect: %v: %w", err, capture.ErrDeviceUnavailable)
	}
	defer c.Close()

	width, height := primaryScreenSize(c)
	if width == 0 || height == 0 {
		return capture.RawCapture{Order: capture.TopDown}, nil
	}

	screen := xproto.Setup(c).DefaultScreen(c)
	drawable := xproto.Drawable(screen.Root)

	var data []byte
	if mshm.Init(c) == nil {
		data, err = grabShm(c, drawable, width, height)
	} else {
		data, err = grabWire(c, drawable, width, height)
	}
	if err != nil {
		return capture.RawCapture{}, err
	}

	return capture.RawCapture{
		Bytes:  data,
		Width:  width,
		Height: height,
		Order:  capture.TopDown,
	}, nil
}

// primaryScreenSize prefers the xinerama screen list, which reflects
// the physical primary display; servers without the extension fall back
// to the default screen dimensions.
func primaryScreenSize(c *xgb.Conn) (int, int) {
	if err := xinerama.Init(c); err == nil {
		if reply, err := xinerama.QueryScreens(c).Reply(); err == nil && len(reply.ScreenInfo) > 0 {
			primary := reply.ScreenInfo[0]
			return int(primary.Width), int(primary.Height)
		}
	}
	screen := xproto.Setup(c).DefaultScreen(c)
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// grabShm copies the screen through a SysV shared memory segment. The
// segment is detached and removed before returning, error paths
// included.
func grabShm(c *xgb.Conn, drawable xproto.Drawable, width, height int) ([]byte, error) {
	size := width * height * 4
	shmID, err := shm.Get(shm.IPC_PRIVATE, size, shm.IPC_CREAT|0777)
	if err != nil {
		return nil, fmt.Errorf("x11: shmget: %v: %w", err, capture.ErrDeviceUnavailable)
	}
	defer shm.Rm(shmID)

	seg, err := mshm.NewSegId(c)
	if err != nil {
		return nil, fmt.Errorf("x11: shm segment id: %v: %w", err, capture.ErrDeviceUnavailable)
	}

	shmBuf, err := shm.At(shmID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("x11: shmat: %v: %w", err, capture.ErrDeviceUnavailable)
	}
	defer shm.Dt(shmBuf)

	mshm.Attach(c, seg, uint32(shmID), false)
	defer mshm.Detach(c, seg)

	_, err = mshm.GetImage(c, drawable, 0, 0, uint16(width), uint16(height), 0xffffffff,
		byte(xproto.ImageFormatZPixmap), seg, 0).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: shm get image: %v: %w", err, capture.ErrBlitFailed)
	}

	data := make([]byte, size)
	copy(data, shmBuf)
	return data, nil
}

// grabWire fetches the screen image through a plain GetImage request.
func grabWire(c *xgb.Conn, drawable xproto.Drawable, width, height int) ([]byte, error) {
	img, err := xproto.GetImage(c, xproto.ImageFormatZPixmap, drawable, 0, 0,
		uint16(width), uint16(height), 0xffffffff).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: get image: %v: %w", err, capture.ErrBlitFailed)
	}

	size := width * height * 4
	if len(img.Data) < size {
		return nil, fmt.Errorf("x11: short image: got %d bytes, want %d: %w",
			len(img.Data), size, capture.ErrBlitFailed)
	}

	data := make([]byte, size)
	copy(data, img.Data[:size])
	return data, nil
}
