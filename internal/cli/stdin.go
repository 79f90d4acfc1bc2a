package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// readPipedInput returns text piped on stdin, or nil when stdin is a
// terminal or produced zero bytes. Whitespace-only input still counts: any
// bytes read make the piped value win over a positional argument. The read
// completes fully before positionals are consulted; there is no race.
func readPipedInput() (*string, error) {
	return readPipedFrom(os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
}

func readPipedFrom(r io.Reader, isTerminal bool) (*string, error) {
	if isTerminal {
		return nil, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	text := string(data)
	return &text, nil
}
