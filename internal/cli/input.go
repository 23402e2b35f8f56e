package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal; tests replace them to avoid touching a tty.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// Only the line terminator is trimmed; surrounding spaces are kept. If EOF
// occurs after some input was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetPassword prints a password prompt to w and reads a password. When in is a
// terminal the password is read without echo; otherwise (pipes, tests) one
// line is read from reader.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(in io.Reader, reader *bufio.Reader, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}

	if f, ok := in.(interface{ Fd() uintptr }); ok && isTerminal(int(f.Fd())) {
		pw, err := readPassword(int(f.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return nil, err
		}
		return pw, nil
	}

	line, err := readLine(reader)
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// readLine returns one line without its terminator.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
