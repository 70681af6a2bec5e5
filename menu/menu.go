// Package menu implements a single-column, single-select terminal picker
// with keyboard navigation and graceful degradation across terminal
// capability tiers.
//
// Capabilities are detected once per invocation and drive two pure
// decisions: which styling codes to emit (ResolvePalette) and which of
// three implementations to run (chooseTier) — in-place redraw, clear-screen
// redraw, or a numbered line-input fallback that works even with piped
// input. The interactive tiers share one render/read loop and one focus
// state machine; only the frame painter differs.
//
// While a menu is active the terminal is held as a scoped resource (raw
// mode plus hidden cursor) that is restored on every exit path, including
// interrupt and terminate signals.
package menu

import (
	"errors"
	"io"
	"os"
)

// errRawMode marks a failed raw-mode acquisition so Select can degrade to
// the numbered tier instead of failing.
var errRawMode = errors.New("raw mode unavailable")

// Select shows the menu on the process terminal and returns the chosen
// option's value. Cancellation returns ErrCancelled; an empty option list
// returns ErrNoOptions before touching the terminal.
func Select(prompt string, options []Option) (string, error) {
	return SelectWith(os.Stdin, os.Stdout, Detect(), prompt, options)
}

// SelectWith is Select with the terminal binding and capability descriptor
// supplied by the caller. Tests inject a pipe and a fake descriptor.
func SelectWith(in *os.File, out io.Writer, caps Capabilities, prompt string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	pal := ResolvePalette(caps)
	sess := newSession(options)

	if t := chooseTier(caps); t != tierNumbered {
		idx, err := runInteractive(t, in, out, pal, sess, prompt)
		if err == nil {
			return options[idx].Value, nil
		}
		if !errors.Is(err, errRawMode) {
			return "", err
		}
		// The descriptor promised an interactive terminal but raw mode
		// failed; degrade to the numbered tier on a fresh session.
		sess = newSession(options)
	}

	idx, err := runNumbered(in, out, sess, prompt)
	if err != nil {
		return "", err
	}
	return options[idx].Value, nil
}

// runInteractive acquires the terminal, runs the shared loop with the
// tier's frame and reader, and guarantees restoration on every return.
func runInteractive(t tier, in *os.File, out io.Writer, pal Palette, sess *session, prompt string) (int, error) {
	var fr frame
	var keys keyReader
	if t == tierInPlace {
		fr = inPlaceFrame{}
		keys = &timedReader{f: in, timeout: escContinuation}
	} else {
		fr = clearScreenFrame{}
		keys = &burstReader{f: in}
	}

	g, err := acquireTerminal(int(in.Fd()), out, pal)
	if err != nil {
		return 0, errors.Join(errRawMode, err)
	}
	g.onRelease(func() { fr.clear(out, prompt, sess.options, pal) })
	defer g.release()

	return runLoop(sess, prompt, out, fr, keys, pal)
}
