package chain

import (
	"context"
	"errors"
	"sync/atomic"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"

	votetypes "github.com/axelarnetwork/fhevote/voter/types"
	"github.com/axelarnetwork/fhevote/voter/wallet"
)

// Account is the signing identity obtained from the wallet. It is immutable once obtained.
type Account struct {
	address common.Address
	wallet  wallet.Wallet
}

// NewAccount returns an account handle for address, signed for by w
func NewAccount(address common.Address, w wallet.Wallet) Account {
	return Account{address: address, wallet: w}
}

// Address returns the account's address
func (a Account) Address() common.Address {
	return a.address
}

// Wallet returns the wallet able to sign for the account
func (a Account) Wallet() wallet.Wallet {
	return a.wallet
}

// IsZero returns true if the handle does not refer to an identity
func (a Account) IsZero() bool {
	return a.address == common.Address{} || a.wallet == nil
}

// Connector obtains the signing identity from the host wallet
type Connector struct {
	wallet   wallet.Wallet
	logger   log.Logger
	attempts atomic.Uint64
}

// NewConnector returns a connector for the given wallet. A nil wallet means no wallet is available in this environment.
func NewConnector(w wallet.Wallet, logger log.Logger) *Connector {
	return &Connector{
		wallet: w,
		logger: logger.With("component", "connector"),
	}
}

// Connect asks the wallet for the active identity. The request may prompt the user and block until answered.
// Only the most recent attempt is honored: an attempt that returns after a newer one started fails with ErrSuperseded.
func (c *Connector) Connect(ctx context.Context) (Account, error) {
	if c.wallet == nil {
		return Account{}, errorsmod.Wrap(votetypes.ErrWalletUnavailable, "no wallet configured")
	}

	attempt := c.attempts.Add(1)
	addresses, err := c.wallet.RequestAccounts(ctx)

	if latest := c.attempts.Load(); latest != attempt {
		c.logger.Debug("discarding superseded connect attempt", "attempt", attempt, "latest", latest)
		return Account{}, errorsmod.Wrapf(votetypes.ErrSuperseded, "connect attempt %d", attempt)
	}

	switch {
	case errors.Is(err, votetypes.ErrUserRejected):
		return Account{}, err
	case err != nil:
		return Account{}, votetypes.WithKind(votetypes.ErrWalletUnavailable, err, "failed to request accounts")
	case len(addresses) == 0:
		return Account{}, errorsmod.Wrap(votetypes.ErrUserRejected, "wallet returned no account")
	}

	c.logger.Info("wallet connected", "account", addresses[0].Hex())
	return NewAccount(addresses[0], c.wallet), nil
}

// Authorized returns the identity the wallet has already authorized for this client, if any. It never prompts.
func (c *Connector) Authorized(ctx context.Context) (Account, bool, error) {
	if c.wallet == nil {
		return Account{}, false, nil
	}

	addresses, err := c.wallet.Accounts(ctx)
	if err != nil {
		return Account{}, false, votetypes.WithKind(votetypes.ErrWalletUnavailable, err, "failed to list authorized accounts")
	}

	if len(addresses) == 0 {
		return Account{}, false, nil
	}

	return NewAccount(addresses[0], c.wallet), true, nil
}
