package menu

import (
	"fmt"
	"io"
)

// tier is one of the capability-graded menu implementations.
type tier int

const (
	tierNumbered tier = iota
	tierClearScreen
	tierInPlace
)

var tierNames = [...]string{
	tierNumbered:    "numbered",
	tierClearScreen: "clear-screen",
	tierInPlace:     "in-place",
}

func (t tier) String() string { return tierNames[t] }

// chooseTier picks the richest implementation the environment supports.
// The in-place tier needs cursor addressing plus timed reads and is skipped
// under Apple Terminal, whose scrollback corrupts in-place redraws. Any
// interactive terminal can run the clear-screen tier; the numbered tier
// works everywhere, including piped input.
func chooseTier(caps Capabilities) tier {
	if !caps.Interactive {
		return tierNumbered
	}
	if caps.CursorAddressing && caps.TimedRead && caps.Host != HostAppleTerminal {
		return tierInPlace
	}
	return tierClearScreen
}

const navHint = "↑/↓ move · Enter select · q cancel"

// frame renders the option list for one of the interactive tiers.
type frame interface {
	// draw paints the prompt, options, and hint. redraw means a previous
	// frame is on screen and only the changing region should repaint.
	draw(w io.Writer, prompt string, options []Option, focus int, pal Palette, redraw bool)
	// clear removes the rendered menu from the display.
	clear(w io.Writer, prompt string, options []Option, pal Palette)
}

// drawBody writes the option lines and the hint line. Shared by both
// interactive frames. The focused line carries a marker as well as the
// highlight codes, so selection stays visible on a colorless palette.
func drawBody(w io.Writer, options []Option, focus int, pal Palette) {
	for i, opt := range options {
		io.WriteString(w, pal.ClearLine)
		if i == focus {
			fmt.Fprintf(w, "%s▸ %s%s\r\n", pal.HighlightOn, opt.Label, pal.HighlightOff)
		} else {
			fmt.Fprintf(w, "  %s\r\n", opt.Label)
		}
	}
	io.WriteString(w, pal.ClearLine)
	fmt.Fprintf(w, "%s\r\n", navHint)
}

// bodyLines is the number of lines drawBody emits.
func bodyLines(options []Option) int {
	return len(options) + 1
}

// inPlaceFrame repaints the option region by moving the cursor back up over
// the previous frame. Richest tier; requires working cursor addressing.
type inPlaceFrame struct{}

func (inPlaceFrame) draw(w io.Writer, prompt string, options []Option, focus int, pal Palette, redraw bool) {
	if redraw {
		io.WriteString(w, pal.CursorUp(bodyLines(options)))
	} else if prompt != "" {
		fmt.Fprintf(w, "%s%s%s\r\n", pal.HighlightOn, prompt, pal.HighlightOff)
	}
	drawBody(w, options, focus, pal)
}

func (inPlaceFrame) clear(w io.Writer, prompt string, options []Option, pal Palette) {
	total := bodyLines(options)
	if prompt != "" {
		total++
	}
	io.WriteString(w, pal.CursorUp(total))
	for i := 0; i < total; i++ {
		io.WriteString(w, pal.ClearLine)
		io.WriteString(w, "\r\n")
	}
	io.WriteString(w, pal.CursorUp(total))
}

// clearScreenFrame wipes the whole screen and reprints the list each frame.
// Wasteful but safe when cursor addressing is unreliable.
type clearScreenFrame struct{}

const clearScreen = "\033[2J\033[H"

func (clearScreenFrame) draw(w io.Writer, prompt string, options []Option, focus int, pal Palette, redraw bool) {
	io.WriteString(w, clearScreen)
	if prompt != "" {
		fmt.Fprintf(w, "%s%s%s\r\n", pal.HighlightOn, prompt, pal.HighlightOff)
	}
	drawBody(w, options, focus, pal)
}

func (clearScreenFrame) clear(w io.Writer, prompt string, options []Option, pal Palette) {
	io.WriteString(w, clearScreen)
}

// runLoop drives the shared render/read cycle for the interactive tiers.
// A frame is always drawn before the next read, so the displayed focus
// matches the state the incoming key applies to. KeyOther (including a
// lone Escape) repaints without changing state.
func runLoop(sess *session, prompt string, w io.Writer, fr frame, keys keyReader, pal Palette) (int, error) {
	fr.draw(w, prompt, sess.options, sess.focus, pal, false)
	for sess.state == outcomePending {
		k, err := keys.ReadKey()
		if err != nil {
			return 0, err
		}
		sess.apply(k)
		if sess.state == outcomePending {
			fr.draw(w, prompt, sess.options, sess.focus, pal, true)
		}
	}
	if sess.state == outcomeCancelled {
		return 0, ErrCancelled
	}
	return sess.focus, nil
}
