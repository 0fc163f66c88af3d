package session

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/axelarnetwork/fhevote/voter/tally"
)

// operations recorded in ErrorRecord.Op
const (
	OpConnect = "connect"
	OpCheck   = "check"
	OpVote    = "vote"
	OpRefresh = "refresh"
)

// ErrorRecord is the last failure surfaced to the voter
type ErrorRecord struct {
	Op   string
	Kind string
	Err  error
}

// VoteReceipt tracks a submitted vote until its confirmation resolves
type VoteReceipt struct {
	Tx        common.Hash
	Confirmed bool
}

// Snapshot is an immutable copy of the session state
type Snapshot struct {
	// Seq increases with every transition
	Seq       uint64
	SessionID uuid.UUID
	Phase     Phase
	// ResumePhase is the phase an Errored session continues from
	ResumePhase Phase
	// Account is the zero address until an identity is bound
	Account   common.Address
	Tally     tally.View
	HasVoted  bool
	LastError *ErrorRecord
	PendingTx *VoteReceipt
}

// Connected returns true if the snapshot carries a bound identity
func (s Snapshot) Connected() bool {
	return s.Account != common.Address{}
}

// CanVote returns true if a vote request would be accepted
func (s Snapshot) CanVote() bool {
	return !s.HasVoted && (s.Phase == Ready || (s.Phase == Errored && s.ResumePhase == Ready))
}

// Observer receives a snapshot after every transition. Deliveries may arrive out of order, use Seq to discard older ones.
type Observer func(Snapshot)
