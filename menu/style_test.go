package menu

import "testing"

func TestResolvePaletteWithoutColorIsAllNoOps(t *testing.T) {
	p := ResolvePalette(Capabilities{Interactive: true})
	if p != (Palette{}) {
		t.Fatalf("expected empty palette without ANSI color, got %+v", p)
	}
	if p.CursorUp(3) != "" {
		t.Fatalf("expected no-op CursorUp on empty palette")
	}
}

func TestResolvePaletteWithColor(t *testing.T) {
	p := ResolvePalette(Capabilities{Interactive: true, ANSIColor: true})
	if p.HighlightOn == "" || p.HighlightOff == "" {
		t.Fatalf("expected highlight codes, got %+v", p)
	}
	if p.CursorHide != "\033[?25l" || p.CursorShow != "\033[?25h" {
		t.Fatalf("unexpected cursor codes: %+v", p)
	}
	if got := p.CursorUp(4); got != "\033[4A" {
		t.Fatalf("CursorUp(4) = %q", got)
	}
}

func TestResolvePaletteAppleTerminalDropsCursorMovement(t *testing.T) {
	p := ResolvePalette(Capabilities{Interactive: true, ANSIColor: true, Host: HostAppleTerminal})
	if p.HighlightOn == "" {
		t.Fatalf("apple terminal should keep highlight codes")
	}
	if p.CursorUp(2) != "" {
		t.Fatalf("apple terminal should not move the cursor in place")
	}
}

func TestCursorUpZeroIsNoOp(t *testing.T) {
	p := ResolvePalette(Capabilities{Interactive: true, ANSIColor: true})
	if p.CursorUp(0) != "" {
		t.Fatalf("CursorUp(0) should be empty")
	}
}
