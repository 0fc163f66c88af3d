package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"

	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

// DefaultDerivationPath is the first account of the standard Ethereum derivation path
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

var _ Wallet = &MnemonicWallet{}

// MnemonicWallet signs with a key derived from a BIP-39 mnemonic
type MnemonicWallet struct {
	hd       *hdwallet.Wallet
	account  accounts.Account
	prompter Prompter

	lock       sync.Mutex
	authorized bool
}

// NewMnemonicWallet derives the account at path from the mnemonic.
// If authorized is true, the account is reported as already authorized and connecting does not prompt.
func NewMnemonicWallet(mnemonic string, path string, authorized bool, prompter Prompter) (*MnemonicWallet, error) {
	hd, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, votetypes.WithKind(votetypes.ErrWalletUnavailable, err, "invalid mnemonic")
	}

	derivationPath, err := hdwallet.ParseDerivationPath(path)
	if err != nil {
		return nil, votetypes.WithKindf(votetypes.ErrWalletUnavailable, err, "invalid derivation path %s", path)
	}

	account, err := hd.Derive(derivationPath, true)
	if err != nil {
		return nil, votetypes.WithKind(votetypes.ErrWalletUnavailable, err, "failed to derive account")
	}

	return &MnemonicWallet{
		hd:         hd,
		account:    account,
		prompter:   prompter,
		authorized: authorized,
	}, nil
}

// Accounts returns the derived account if it has been authorized
func (w *MnemonicWallet) Accounts(_ context.Context) ([]common.Address, error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	if !w.authorized {
		return nil, nil
	}

	return []common.Address{w.account.Address}, nil
}

// RequestAccounts asks the user to authorize the derived account
func (w *MnemonicWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if accs, _ := w.Accounts(ctx); len(accs) > 0 {
		return accs, nil
	}

	if err := confirm(ctx, w.prompter, fmt.Sprintf("connect account %s?", w.account.Address.Hex())); err != nil {
		return nil, err
	}

	w.lock.Lock()
	defer w.lock.Unlock()
	w.authorized = true

	return []common.Address{w.account.Address}, nil
}

// SignTx asks for approval and signs the transaction with the derived key
func (w *MnemonicWallet) SignTx(ctx context.Context, account common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if account != w.account.Address {
		return nil, fmt.Errorf("account %s is not managed by this wallet", account.Hex())
	}

	if err := confirm(ctx, w.prompter, describeTx(account, tx)); err != nil {
		return nil, err
	}

	return w.hd.SignTx(w.account, tx, chainID)
}
