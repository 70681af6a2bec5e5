package menu

import (
	"fmt"
	"os"
	"time"
)

// Key is a classified input event.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyConfirm
	KeyCancel
)

// escContinuation bounds the wait for bytes following a lone ESC. Arrow
// keys deliver their continuation immediately; a human pressing Escape
// does not.
const escContinuation = 100 * time.Millisecond

const (
	keyEsc       = 0x1b
	keyCtrlC     = 0x03
	keyEnter     = '\r'
	keyLineFeed  = '\n'
	keyBackspace = 0x7f
)

// classifyByte maps a single non-escape byte to a key event. Anything not
// recognized is KeyOther and leaves the menu state untouched.
func classifyByte(b byte) Key {
	switch b {
	case keyEnter, keyLineFeed:
		return KeyConfirm
	case keyCtrlC, 'q', 'Q':
		return KeyCancel
	}
	return KeyOther
}

// classifyEscape maps the continuation bytes that followed an ESC. An empty
// or unrecognized sequence is KeyOther: a lone Escape press never cancels
// and never moves focus.
func classifyEscape(seq []byte) Key {
	if len(seq) >= 2 && seq[0] == '[' {
		switch seq[1] {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		}
	}
	return KeyOther
}

// keyReader produces one classified key per call.
type keyReader interface {
	ReadKey() (Key, error)
}

// timedReader reads one raw byte at a time and disambiguates escape
// sequences with a bounded continuation read. Requires timed-read support.
type timedReader struct {
	f       *os.File
	timeout time.Duration
}

func (r *timedReader) ReadKey() (Key, error) {
	buf := make([]byte, 1)
	n, err := r.f.Read(buf)
	if err != nil {
		return KeyOther, fmt.Errorf("read key: %w", err)
	}
	if n == 0 {
		return KeyConfirm, nil
	}
	if buf[0] != keyEsc {
		return classifyByte(buf[0]), nil
	}

	seq := make([]byte, 2)
	sn := readWithTimeout(r.f, seq, r.timeout)
	if sn == 0 {
		// Standalone Escape.
		return KeyOther, nil
	}
	if sn == 1 {
		sn += readWithTimeout(r.f, seq[1:], r.timeout)
	}
	return classifyEscape(seq[:sn]), nil
}

// burstReader reads up to three bytes per call and classifies the whole
// chunk. Arrow-key sequences normally arrive in a single read, so no timed
// continuation is needed; a lone ESC in the burst classifies as KeyOther.
// This is the reader for terminals without timed-read support.
type burstReader struct {
	f *os.File
}

func (r *burstReader) ReadKey() (Key, error) {
	buf := make([]byte, 3)
	n, err := r.f.Read(buf)
	if err != nil {
		return KeyOther, fmt.Errorf("read key: %w", err)
	}
	if n == 0 {
		return KeyConfirm, nil
	}
	if buf[0] == keyEsc {
		return classifyEscape(buf[1:n]), nil
	}
	return classifyByte(buf[0]), nil
}
