package wallet

import (
	"context"
	"fmt"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

//go:generate moq -out ./mock/wallet.go -pkg mock . Wallet Prompter

// Wallet is the signing capability provided by the host environment
type Wallet interface {
	// Accounts returns the identities the user has already authorized for this client. It never prompts.
	Accounts(ctx context.Context) ([]common.Address, error)
	// RequestAccounts asks the user to authorize an identity. It may prompt and block until the user answers.
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// SignTx asks the user to approve and sign the given transaction for account
	SignTx(ctx context.Context, account common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// Prompter asks the user for decisions
type Prompter interface {
	// Confirm asks a yes/no question
	Confirm(ctx context.Context, question string) (bool, error)
	// Secret asks for a value that must not be echoed
	Secret(ctx context.Context, question string) (string, error)
}

func confirm(ctx context.Context, prompter Prompter, question string) error {
	ok, err := prompter.Confirm(ctx, question)
	if err != nil {
		return votetypes.WithKind(votetypes.ErrUserRejected, err, "no answer")
	}

	if !ok {
		return errorsmod.Wrap(votetypes.ErrUserRejected, question)
	}

	return nil
}

func describeTx(account common.Address, tx *types.Transaction) string {
	to := "contract creation"
	if tx.To() != nil {
		to = tx.To().Hex()
	}

	return fmt.Sprintf("sign transaction from %s to %s (nonce %d, gas %d)?", account.Hex(), to, tx.Nonce(), tx.Gas())
}
