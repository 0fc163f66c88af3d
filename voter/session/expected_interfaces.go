package session

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/axelarnetwork/fhevote/voter/chain"
	"github.com/axelarnetwork/fhevote/voter/tally"
)

//go:generate moq -out ./mock/expected_interfaces.go -pkg mock . Connector Binder Contract Reconciler

// Connector acquires the identity the session votes as
type Connector interface {
	Connect(ctx context.Context) (chain.Account, error)
	Authorized(ctx context.Context) (chain.Account, bool, error)
}

// Binder binds an identity to the voting contract
type Binder interface {
	Bind(ctx context.Context, account chain.Account) (Contract, error)
}

// BinderFunc is an adapter to use ordinary functions as a Binder
type BinderFunc func(ctx context.Context, account chain.Account) (Contract, error)

// Bind calls f(ctx, account)
func (f BinderFunc) Bind(ctx context.Context, account chain.Account) (Contract, error) {
	return f(ctx, account)
}

// Contract is the voting contract as seen by one bound identity
type Contract interface {
	tally.Source
	Vote(ctx context.Context) (*types.Transaction, error)
	WaitConfirmed(ctx context.Context, tx *types.Transaction) error
	HasVoted(ctx context.Context, voter common.Address) (bool, error)
}

// Reconciler reads both tally sources into one view
type Reconciler interface {
	Refresh(ctx context.Context, src tally.Source) (tally.View, error)
}
