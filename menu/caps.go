package menu

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// Platform identifies the operating environment the menu runs in.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformMacOS
	PlatformLinux
	PlatformWSL
	PlatformWindows
)

var platformNames = [...]string{
	PlatformOther:   "other",
	PlatformMacOS:   "macos",
	PlatformLinux:   "linux",
	PlatformWSL:     "wsl",
	PlatformWindows: "windows",
}

func (p Platform) String() string {
	if int(p) < len(platformNames) {
		return platformNames[p]
	}
	return "other"
}

// HostApp identifies the terminal application hosting the process.
type HostApp int

const (
	HostUnknown HostApp = iota
	HostAppleTerminal
	HostITerm2
	HostTmux
)

var hostNames = [...]string{
	HostUnknown:       "unknown",
	HostAppleTerminal: "apple-terminal",
	HostITerm2:        "iterm2",
	HostTmux:          "tmux",
}

func (h HostApp) String() string {
	if int(h) < len(hostNames) {
		return hostNames[h]
	}
	return "unknown"
}

// Capabilities describes what the current terminal can do. It is computed
// once per menu invocation and never mutated; the palette resolver and the
// strategy selector are pure functions over it.
type Capabilities struct {
	Interactive      bool
	ANSIColor        bool
	CursorAddressing bool
	TimedRead        bool
	Platform         Platform
	Host             HostApp
}

// Detect inspects the process environment and returns a capability
// descriptor. A failed probe is a missing capability, never an error.
func Detect() Capabilities {
	caps := Capabilities{
		Platform: detectPlatform(runtime.GOOS, readProcVersion()),
		Host:     detectHost(os.Getenv("TERM_PROGRAM"), os.Getenv("TMUX")),
	}
	caps.Interactive = term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	caps.ANSIColor = caps.Interactive && colorCapable(os.Getenv("TERM"))
	caps.CursorAddressing = caps.Interactive && (probeTput() || cursorCapable(os.Getenv("TERM")))
	caps.TimedRead = caps.Interactive && timedReadSupported
	return caps
}

// detectPlatform maps GOOS plus the /proc/version banner to a Platform.
// WSL kernels identify themselves with a "microsoft" marker.
func detectPlatform(goos, procVersion string) Platform {
	switch goos {
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	case "linux":
		if strings.Contains(strings.ToLower(procVersion), "microsoft") {
			return PlatformWSL
		}
		return PlatformLinux
	}
	return PlatformOther
}

// detectHost identifies the hosting terminal application. TERM_PROGRAM is
// checked before TMUX so the inner terminal wins when both are set by a
// multiplexer pane.
func detectHost(termProgram, tmux string) HostApp {
	switch termProgram {
	case "Apple_Terminal":
		return HostAppleTerminal
	case "iTerm.app":
		return HostITerm2
	case "tmux":
		return HostTmux
	}
	if tmux != "" {
		return HostTmux
	}
	return HostUnknown
}

// colorCapable reports whether TERM suggests ANSI color support.
func colorCapable(termEnv string) bool {
	return termEnv != "" && termEnv != "dumb"
}

// cursorCapable reports whether TERM suggests cursor addressing without
// consulting tput.
func cursorCapable(termEnv string) bool {
	for _, prefix := range []string{"xterm", "screen", "tmux", "vt100", "ansi", "linux", "rxvt", "alacritty"} {
		if strings.HasPrefix(termEnv, prefix) {
			return true
		}
	}
	return false
}

// probeTput asks the tput helper whether the terminal has a cursor-up
// capability. Any failure (missing binary, unknown terminal) means the
// capability is absent.
func probeTput() bool {
	if _, err := exec.LookPath("tput"); err != nil {
		return false
	}
	return exec.Command("tput", "cuu1").Run() == nil
}

// readProcVersion returns the kernel banner on Linux, empty elsewhere.
func readProcVersion() string {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return ""
	}
	return string(data)
}
