package display

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/axelarnetwork/fhevote/voter/session"
	"github.com/axelarnetwork/fhevote/voter/tally"
)

// ShortAddress abbreviates an address to its first six and last four characters
func ShortAddress(address common.Address) string {
	hex := address.Hex()
	return fmt.Sprintf("%s...%s", hex[:6], hex[38:])
}

// Render formats the snapshot for the terminal
func Render(s session.Snapshot) string {
	var b strings.Builder

	if !s.Connected() {
		fmt.Fprintf(&b, "Not connected (%s)\n", s.Phase)
		if s.LastError != nil {
			fmt.Fprintf(&b, "Last error: %s (%s)\n", s.LastError.Kind, s.LastError.Err)
		}

		return b.String()
	}

	fmt.Fprintf(&b, "Connected as: %s\n", ShortAddress(s.Account))
	fmt.Fprintf(&b, "Status: %s\n", status(s))
	fmt.Fprintf(&b, "Encrypted tally: %s\n", tally.FormatCiphertext(s.Tally))
	fmt.Fprintf(&b, "Current total votes: %s\n", tally.FormatPlaintext(s.Tally))

	if s.PendingTx != nil {
		fmt.Fprintf(&b, "Pending vote: %s\n", s.PendingTx.Tx.Hex())
	}

	if s.LastError != nil {
		fmt.Fprintf(&b, "Last error: %s during %s (%s)\n", s.LastError.Kind, s.LastError.Op, s.LastError.Err)
	}

	return b.String()
}

func status(s session.Snapshot) string {
	switch {
	case s.HasVoted:
		return "Already voted"
	case s.Phase.InFlight():
		return "Processing..."
	case s.CanVote():
		return "Ready to cast encrypted vote"
	default:
		return s.Phase.String()
	}
}

// PhaseLogger returns an observer that writes a line whenever the session changes phase.
// It drops snapshots older than the last one it wrote.
func PhaseLogger(w io.Writer) session.Observer {
	var (
		lock sync.Mutex
		last = session.Snapshot{Phase: session.Disconnected}
	)

	return func(s session.Snapshot) {
		lock.Lock()
		defer lock.Unlock()

		if s.Seq <= last.Seq {
			return
		}

		changed := s.Phase != last.Phase
		last = s
		if changed {
			fmt.Fprintf(w, "[%s]\n", s.Phase)
		}
	}
}
