package menu

import "testing"

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		goos        string
		procVersion string
		want        Platform
	}{
		{"darwin", "", PlatformMacOS},
		{"windows", "", PlatformWindows},
		{"linux", "Linux version 6.8.0-generic", PlatformLinux},
		{"linux", "Linux version 5.15.90.1-microsoft-standard-WSL2", PlatformWSL},
		{"linux", "Linux version 4.4.0-Microsoft", PlatformWSL},
		{"plan9", "", PlatformOther},
	}
	for _, c := range cases {
		if got := detectPlatform(c.goos, c.procVersion); got != c.want {
			t.Errorf("detectPlatform(%q, %q) = %v, want %v", c.goos, c.procVersion, got, c.want)
		}
	}
}

func TestDetectHost(t *testing.T) {
	cases := []struct {
		termProgram string
		tmux        string
		want        HostApp
	}{
		{"Apple_Terminal", "", HostAppleTerminal},
		{"iTerm.app", "", HostITerm2},
		{"tmux", "", HostTmux},
		{"", "/tmp/tmux-501/default,1234,0", HostTmux},
		{"", "", HostUnknown},
		{"Apple_Terminal", "/tmp/tmux-501/default,1234,0", HostAppleTerminal},
	}
	for _, c := range cases {
		if got := detectHost(c.termProgram, c.tmux); got != c.want {
			t.Errorf("detectHost(%q, %q) = %v, want %v", c.termProgram, c.tmux, got, c.want)
		}
	}
}

func TestColorCapable(t *testing.T) {
	if colorCapable("") {
		t.Errorf("empty TERM should not be color capable")
	}
	if colorCapable("dumb") {
		t.Errorf("TERM=dumb should not be color capable")
	}
	if !colorCapable("xterm-256color") {
		t.Errorf("xterm-256color should be color capable")
	}
}

func TestChooseTier(t *testing.T) {
	cases := []struct {
		name string
		caps Capabilities
		want tier
	}{
		{
			name: "non-interactive falls to numbered",
			caps: Capabilities{},
			want: tierNumbered,
		},
		{
			name: "fully capable picks in-place",
			caps: Capabilities{Interactive: true, ANSIColor: true, CursorAddressing: true, TimedRead: true},
			want: tierInPlace,
		},
		{
			name: "apple terminal avoids in-place",
			caps: Capabilities{Interactive: true, ANSIColor: true, CursorAddressing: true, TimedRead: true, Host: HostAppleTerminal},
			want: tierClearScreen,
		},
		{
			name: "no timed read picks clear-screen",
			caps: Capabilities{Interactive: true, CursorAddressing: true},
			want: tierClearScreen,
		},
		{
			name: "no cursor addressing picks clear-screen",
			caps: Capabilities{Interactive: true, TimedRead: true},
			want: tierClearScreen,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := chooseTier(c.caps); got != c.want {
				t.Fatalf("chooseTier = %v, want %v", got, c.want)
			}
		})
	}
}
