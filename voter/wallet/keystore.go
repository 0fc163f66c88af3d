package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

var _ Wallet = &KeystoreWallet{}

// KeystoreWallet signs with an encrypted go-ethereum keystore account.
// The account counts as authorized once it has been unlocked.
type KeystoreWallet struct {
	ks       *keystore.KeyStore
	account  accounts.Account
	prompter Prompter

	lock     sync.Mutex
	unlocked bool
}

// NewKeystoreWallet returns a wallet for the given keystore account.
// If address is the zero address, the first account of the keystore is used.
func NewKeystoreWallet(ks *keystore.KeyStore, address common.Address, prompter Prompter) (*KeystoreWallet, error) {
	all := ks.Accounts()
	if len(all) == 0 {
		return nil, errorsmod.Wrap(votetypes.ErrWalletUnavailable, "keystore has no accounts")
	}

	account := all[0]
	if address != (common.Address{}) {
		var err error
		if account, err = ks.Find(accounts.Account{Address: address}); err != nil {
			return nil, errorsmod.Wrapf(votetypes.ErrWalletUnavailable, "account %s not found in keystore", address.Hex())
		}
	}

	return &KeystoreWallet{
		ks:       ks,
		account:  account,
		prompter: prompter,
	}, nil
}

// Unlock authorizes the account without prompting
func (w *KeystoreWallet) Unlock(passphrase string) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if err := w.ks.Unlock(w.account, passphrase); err != nil {
		return errors.Wrapf(err, "failed to unlock account %s", w.account.Address.Hex())
	}

	w.unlocked = true
	return nil
}

// Accounts returns the keystore account if it is unlocked
func (w *KeystoreWallet) Accounts(_ context.Context) ([]common.Address, error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	if !w.unlocked {
		return nil, nil
	}

	return []common.Address{w.account.Address}, nil
}

// RequestAccounts prompts for the passphrase and unlocks the account
func (w *KeystoreWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if accs, _ := w.Accounts(ctx); len(accs) > 0 {
		return accs, nil
	}

	passphrase, err := w.prompter.Secret(ctx, fmt.Sprintf("passphrase for %s", w.account.Address.Hex()))
	if err != nil {
		return nil, votetypes.WithKind(votetypes.ErrUserRejected, err, "passphrase not provided")
	}

	if err := w.Unlock(passphrase); err != nil {
		return nil, votetypes.WithKind(votetypes.ErrUserRejected, err, "failed to unlock account")
	}

	return []common.Address{w.account.Address}, nil
}

// SignTx asks for approval and signs the transaction with the unlocked account
func (w *KeystoreWallet) SignTx(ctx context.Context, account common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if account != w.account.Address {
		return nil, fmt.Errorf("account %s is not managed by this wallet", account.Hex())
	}

	if err := confirm(ctx, w.prompter, describeTx(account, tx)); err != nil {
		return nil, err
	}

	return w.ks.SignTx(w.account, tx, chainID)
}
