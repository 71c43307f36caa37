package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/msg"
)

// Terminal is the line-oriented console the session talks through.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	sleep  func(time.Duration)
	closed bool
}

type Option func(*Terminal)

// WithSleep replaces time.Sleep for the pauses between computer moves.
func WithSleep(sleep func(time.Duration)) Option {
	return func(t *Terminal) {
		t.sleep = sleep
	}
}

func WithoutDelays() Option {
	return WithSleep(func(time.Duration) {})
}

func NewTerminal(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) Print(text string) {
	_, _ = fmt.Fprint(t.out, text)
}

func (t *Terminal) Printfln(format string, args ...interface{}) {
	t.Print(msg.Sprintfln(format, args...))
}

func (t *Terminal) Printlns(lines []string) {
	t.Print(msg.Sprintlns(lines))
}

func (t *Terminal) Println(args ...interface{}) {
	t.Print(msg.Sprintln(args...))
}

func (t *Terminal) Sleep(d time.Duration) {
	t.sleep(d)
}

// ReadLine returns the next input line without surrounding blanks. End of
// input is reported as consts.ErrorsInputClosed.
func (t *Terminal) ReadLine() (string, error) {
	if t.closed {
		return "", consts.ErrorsInputClosed
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		t.closed = true
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", consts.ErrorsInputClosed
		}
		return "", fmt.Errorf("%w: %v", consts.ErrorsInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

// Closed reports whether a read has already hit the end of input.
func (t *Terminal) Closed() bool {
	return t.closed
}
