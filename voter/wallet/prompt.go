package wallet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	_ Prompter = &TerminalPrompter{}
	_ Prompter = AutoApprove{}
)

// TerminalPrompter asks questions on a line-based terminal
type TerminalPrompter struct {
	lock sync.Mutex
	in   *bufio.Reader
	out  io.Writer
}

// NewTerminalPrompter returns a prompter reading answers from in and writing questions to out.
// The reader may be shared with other line-based consumers of the same input.
func NewTerminalPrompter(in *bufio.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

// Confirm asks a yes/no question, anything but y or yes counts as no
func (p *TerminalPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ask(ctx, fmt.Sprintf("%s [y/N]: ", question))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Secret asks for a value. An empty answer is treated as a refusal.
func (p *TerminalPrompter) Secret(ctx context.Context, question string) (string, error) {
	answer, err := p.ask(ctx, fmt.Sprintf("%s: ", question))
	if err != nil {
		return "", err
	}

	if answer == "" {
		return "", errors.New("no answer given")
	}

	return answer, nil
}

func (p *TerminalPrompter) ask(ctx context.Context, question string) (string, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "failed to read answer")
	}

	return strings.TrimSpace(line), nil
}

// AutoApprove approves every confirmation and answers secrets with a fixed value.
// It is meant for unattended operation where the operator configured the wallet up front.
type AutoApprove struct {
	Passphrase string
}

// Confirm always approves
func (AutoApprove) Confirm(ctx context.Context, _ string) (bool, error) {
	return ctx.Err() == nil, ctx.Err()
}

// Secret returns the configured passphrase
func (a AutoApprove) Secret(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if a.Passphrase == "" {
		return "", fmt.Errorf("no passphrase configured to answer %q", question)
	}

	return a.Passphrase, nil
}
