package voter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/axelarnetwork/fhevote/voter/display"
	"github.com/axelarnetwork/fhevote/voter/session"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

const consoleHelp = `commands:
  connect     connect the wallet and check the account's vote
  vote        cast the encrypted vote
  refresh     re-read the tally
  status      show the session
  disconnect  forget the account
  quit        leave
`

// Console is the interactive terminal front end of a session
type Console struct {
	session display.Session
	in      *bufio.Reader
	out     io.Writer
}

// NewConsole returns a console reading commands from in. The reader may be shared with a terminal prompter.
func NewConsole(s display.Session, in *bufio.Reader, out io.Writer) *Console {
	return &Console{session: s, in: in, out: out}
}

// Run executes commands until quit, end of input or ctx is done
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprint(c.out, display.Render(c.session.Snapshot()))

	for ctx.Err() == nil {
		fmt.Fprint(c.out, "> ")

		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "failed to read command")
		}

		if quit := c.exec(ctx, strings.TrimSpace(line)); quit || errors.Is(err, io.EOF) {
			return nil
		}
	}

	return nil
}

func (c *Console) exec(ctx context.Context, command string) (quit bool) {
	var err error

	switch strings.ToLower(command) {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(c.out, consoleHelp)
		return false
	case "status":
	case "connect":
		err = c.session.Connect(ctx)
	case "vote":
		var receipt session.VoteReceipt
		receipt, err = c.session.CastVote(ctx)
		if err == nil {
			fmt.Fprintf(c.out, "vote confirmed in tx %s\n", receipt.Tx.Hex())
		}
	case "refresh":
		err = c.session.Refresh(ctx)
	case "disconnect":
		c.session.Disconnect()
	default:
		fmt.Fprintf(c.out, "unknown command %q, type help for a list\n", command)
		return false
	}

	if err != nil && !votetypes.IsExpected(err) {
		fmt.Fprintf(c.out, "error: %s: %s\n", votetypes.Kind(err), err)
	}

	fmt.Fprint(c.out, display.Render(c.session.Snapshot()))
	return false
}
