package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// runNumbered is the universal fallback tier: print the list once with
// 1-based numbers and read the choice as a line of text. Works with piped
// input, dumb terminals, and anywhere raw key reads are unavailable.
// Out-of-range or non-numeric input reprompts; q cancels.
func runNumbered(in io.Reader, out io.Writer, sess *session, prompt string) (int, error) {
	if prompt != "" {
		fmt.Fprintf(out, "%s\n", prompt)
	}
	for i, opt := range sess.options {
		fmt.Fprintf(out, "%3d) %s\n", i+1, opt.Label)
	}

	r := bufio.NewReader(in)
	for {
		fmt.Fprintf(out, "Select 1-%d (q to cancel): ", len(sess.options))

		line, readErr := r.ReadString('\n')
		choice := strings.TrimSpace(line)

		if choice == "q" || choice == "Q" {
			sess.state = outcomeCancelled
			return 0, ErrCancelled
		}

		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(sess.options) {
			sess.focus = idx - 1
			sess.state = outcomeSelected
			return sess.focus, nil
		}

		if readErr != nil {
			return 0, fmt.Errorf("read selection: %w", readErr)
		}
		fmt.Fprintf(out, "Invalid choice %q.\n", choice)
	}
}
