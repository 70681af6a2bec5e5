//go:build !windows

package menu

import (
	"errors"
	"os"
	"syscall"
	"time"
)

const timedReadSupported = true

// readWithTimeout tries to read from f within the given duration by polling
// a non-blocking read. Returns the number of bytes read, 0 on timeout or
// read failure.
func readWithTimeout(f *os.File, buf []byte, timeout time.Duration) int {
	fd := int(f.Fd())

	syscall.SetNonblock(fd, true)
	defer syscall.SetNonblock(fd, false)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		n, err := f.Read(buf)
		if n > 0 {
			return n
		}
		if err != nil && !errors.Is(err, syscall.EAGAIN) {
			return 0
		}
		time.Sleep(5 * time.Millisecond)
	}
	return 0
}
