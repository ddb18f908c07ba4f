package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jwebster45206/adventure-engine/pkg/content"
	"github.com/jwebster45206/adventure-engine/pkg/game"
)

// linePrompter reads answers one line at a time.
type linePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *linePrompter) Say(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *linePrompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func runPlain(ctx context.Context, pack *content.Pack, opts game.Options, in io.Reader, out io.Writer) error {
	opts.IO = &linePrompter{in: bufio.NewScanner(in), out: out}
	s := game.NewSession(pack, opts)

	err := play(ctx, s, func(*game.Session) {})
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		return nil
	}
	return err
}
