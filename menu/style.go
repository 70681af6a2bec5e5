package menu

import "fmt"

// Control sequences used by the interactive tiers.
const (
	sgrReset   = "\033[0m"
	sgrBold    = "\033[1m"
	sgrGreen   = "\033[32m"
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	clearLine  = "\r\033[K"
	cursorUpN  = "\033[%dA"
)

// Palette holds the resolved styling and cursor-control codes for one menu
// session. Every field is either a real control sequence or an empty string
// that renders as a no-op, so renderers never branch on capabilities.
type Palette struct {
	HighlightOn  string
	HighlightOff string
	CursorHide   string
	CursorShow   string
	ClearLine    string

	// CursorUpFormat is the fmt verb for moving the cursor up N lines.
	// Empty means in-place movement is unavailable.
	CursorUpFormat string
}

// CursorUp returns the code moving the cursor up n lines, or "" when
// movement is unsupported or n is not positive.
func (p Palette) CursorUp(n int) string {
	if p.CursorUpFormat == "" || n <= 0 {
		return ""
	}
	return fmt.Sprintf(p.CursorUpFormat, n)
}

// ResolvePalette maps a capability descriptor to a palette. Without ANSI
// color every field stays empty and the menu renders as plain text. The
// Apple Terminal host keeps color but loses cursor movement: its scrollback
// handling corrupts in-place redraws, so that tier is styled without them.
func ResolvePalette(caps Capabilities) Palette {
	if !caps.ANSIColor {
		return Palette{}
	}
	p := Palette{
		HighlightOn:    sgrBold + sgrGreen,
		HighlightOff:   sgrReset,
		CursorHide:     hideCursor,
		CursorShow:     showCursor,
		ClearLine:      clearLine,
		CursorUpFormat: cursorUpN,
	}
	if caps.Host == HostAppleTerminal {
		p.CursorUpFormat = ""
	}
	return p
}
