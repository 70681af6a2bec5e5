//go:build windows

package menu

import (
	"os"
	"time"
)

// Windows console reads cannot be polled with a deadline the way a unix fd
// can, so timed reads are unavailable and the strategy selector never picks
// the in-place tier there.
const timedReadSupported = false

func readWithTimeout(f *os.File, buf []byte, timeout time.Duration) int {
	return 0
}
