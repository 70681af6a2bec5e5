package menu

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// termGuard owns the terminal while a menu is active: raw input mode plus a
// hidden cursor, acquired as one scoped resource. Release runs exactly once
// on every exit path, including SIGINT/SIGTERM delivered mid-session, so a
// killed process never leaves the terminal raw with the cursor hidden.
type termGuard struct {
	out     io.Writer
	pal     Palette
	restore func()
	cleanup func()

	once sync.Once
	sig  chan os.Signal
	done chan struct{}
}

// acquireTerminal switches the fd into raw mode, hides the cursor, and arms
// the signal handler. The caller must invoke release on every return path.
func acquireTerminal(fd int, out io.Writer, pal Palette) (*termGuard, error) {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	g := newTermGuard(out, pal, func() { term.Restore(fd, old) })
	return g, nil
}

func newTermGuard(out io.Writer, pal Palette, restore func()) *termGuard {
	g := &termGuard{
		out:     out,
		pal:     pal,
		restore: restore,
		sig:     make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	io.WriteString(g.out, g.pal.CursorHide)

	signal.Notify(g.sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-g.sig:
			g.release()
			os.Exit(130)
		case <-g.done:
		}
	}()
	return g
}

// onRelease registers extra cleanup that runs before the terminal mode is
// restored, while control codes still take effect. Used to clear the
// rendered menu region.
func (g *termGuard) onRelease(fn func()) {
	g.cleanup = fn
}

// release restores the terminal. Safe to call more than once; only the
// first call has any effect.
func (g *termGuard) release() {
	g.once.Do(func() {
		if g.cleanup != nil {
			g.cleanup()
		}
		io.WriteString(g.out, g.pal.CursorShow)
		g.restore()
		signal.Stop(g.sig)
		close(g.done)
	})
}
