package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword, isTerminal, getTermState and restoreTerm are test seams for
// the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	getTermState = term.GetState
	restoreTerm  = term.Restore
)

// ctxReader makes reads from a blocking source (stdin) return ctx.Err() once
// ctx is done. A read still in flight at that point is abandoned.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

type readResult struct {
	n   int
	err error
}

func newCtxReader(ctx context.Context, r io.Reader) *ctxReader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	buf := make([]byte, len(p))
	done := make(chan readResult, 1)
	go func() {
		n, err := c.r.Read(buf)
		done <- readResult{n, err}
	}()

	select {
	case res := <-done:
		copy(p, buf[:res.n])
		return res.n, res.err
	case <-c.ctx.Done():
		return 0, c.ctx.Err()
	}
}

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The line is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+" "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a prompt to w and reads a password. When stdin is a
// terminal the input is not echoed; otherwise (piped input) a plain line is
// read from reader with only the line ending removed.
//
// If ctx is done while waiting on the terminal, the terminal state is
// restored and ctx.Err() is returned.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(ctx context.Context, reader *bufio.Reader, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+" "); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return nil, err
		}
		return []byte(strings.TrimRight(line, "\r\n")), nil
	}

	state, stateErr := getTermState(fd)

	type result struct {
		pw  []byte
		err error
	}
	read := readPassword
	done := make(chan result, 1)
	go func() {
		pw, err := read(fd)
		done <- result{pw, err}
	}()

	select {
	case res := <-done:
		fmt.Fprintln(w)
		if res.err != nil {
			return nil, res.err
		}
		return res.pw, nil
	case <-ctx.Done():
		if stateErr == nil {
			_ = restoreTerm(fd, state)
		}
		fmt.Fprintln(w)
		return nil, ctx.Err()
	}
}
