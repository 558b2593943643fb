package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// prompter reads answers line by line. Reads happen on a separate goroutine
// so a prompt can be abandoned when the context is canceled. The goroutine
// exits at end of input or once ctx is done, but a read already blocked on
// a terminal only returns when the process does.
type prompter struct {
	out   io.Writer
	lines chan string
}

func newPrompter(ctx context.Context, in io.Reader, out io.Writer) *prompter {
	p := &prompter{out: out, lines: make(chan string)}
	go func() {
		defer close(p.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case p.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return p
}

// Prompt writes prompt and returns the next trimmed line of input.
// Returns io.EOF when input is exhausted.
func (p *prompter) Prompt(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}
