package menu

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func pipeWith(t *testing.T, input string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	go func() {
		w.WriteString(input)
		w.Close()
	}()
	return r
}

func TestSelectWithEmptyOptionsIsUsageError(t *testing.T) {
	var out bytes.Buffer
	_, err := SelectWith(nil, &out, Capabilities{}, "Pick", nil)
	if !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("usage error must not render anything, wrote %q", out.String())
	}
}

func TestSelectWithNumberedFallbackReturnsValue(t *testing.T) {
	opts, err := Pair([]string{"Yes", "No"}, []string{"yes", "no"})
	if err != nil {
		t.Fatalf("Pair failed: %v", err)
	}

	in := pipeWith(t, "2\n")
	var out bytes.Buffer
	got, err := SelectWith(in, &out, Capabilities{}, "Continue?", opts)
	if err != nil {
		t.Fatalf("SelectWith failed: %v", err)
	}
	if got != "no" {
		t.Fatalf("expected value %q, got %q", "no", got)
	}
}

func TestSelectWithNumberedIdentityDefault(t *testing.T) {
	opts, err := Pair([]string{"staging", "production"}, nil)
	if err != nil {
		t.Fatalf("Pair failed: %v", err)
	}

	in := pipeWith(t, "1\n")
	var out bytes.Buffer
	got, err := SelectWith(in, &out, Capabilities{}, "", opts)
	if err != nil {
		t.Fatalf("SelectWith failed: %v", err)
	}
	if got != "staging" {
		t.Fatalf("expected chosen label back as value, got %q", got)
	}
}

func TestSelectWithNumberedCancel(t *testing.T) {
	in := pipeWith(t, "q\n")
	var out bytes.Buffer
	_, err := SelectWith(in, &out, Capabilities{}, "", optionsOf("X"))
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestSelectWithDegradesWhenRawModeFails(t *testing.T) {
	// An interactive descriptor with a pipe for stdin: raw mode acquisition
	// fails and the numbered tier must take over.
	caps := Capabilities{Interactive: true, ANSIColor: true, CursorAddressing: true, TimedRead: true}
	in := pipeWith(t, "1\n")
	var out bytes.Buffer
	got, err := SelectWith(in, &out, caps, "", optionsOf("fallback"))
	if err != nil {
		t.Fatalf("expected degradation to numbered tier, got %v", err)
	}
	if got != "fallback" {
		t.Fatalf("expected %q, got %q", "fallback", got)
	}
}
