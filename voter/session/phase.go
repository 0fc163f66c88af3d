package session

import (
	"fmt"

	"github.com/stoewer/go-strcase"
)

// Phase is a step of the vote session lifecycle
type Phase int

// session phases
const (
	Disconnected Phase = iota
	Connecting
	Bound
	Checking
	Ready
	Voting
	Confirming
	Errored
)

var phaseNames = map[Phase]string{
	Disconnected: "Disconnected",
	Connecting:   "Connecting",
	Bound:        "Bound",
	Checking:     "Checking",
	Ready:        "Ready",
	Voting:       "Voting",
	Confirming:   "Confirming",
	Errored:      "Errored",
}

func (p Phase) String() string {
	name, ok := phaseNames[p]
	if !ok {
		return fmt.Sprintf("Phase(%d)", int(p))
	}

	return name
}

// MarshalText renders the phase in snake case
func (p Phase) MarshalText() ([]byte, error) {
	if _, ok := phaseNames[p]; !ok {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}

	return []byte(strcase.SnakeCase(p.String())), nil
}

// UnmarshalText parses a phase rendered by MarshalText
func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if strcase.SnakeCase(name) == string(text) {
			*p = phase
			return nil
		}
	}

	return fmt.Errorf("unknown phase %q", string(text))
}

// InFlight returns true while a vote is being submitted or confirmed
func (p Phase) InFlight() bool {
	return p == Voting || p == Confirming
}
