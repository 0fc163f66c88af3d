package contract

import (
	"context"
	"errors"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/axelarnetwork/fhevote/utils"
	"github.com/axelarnetwork/fhevote/voter/chain"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

//go:generate moq -out ./mock/backend.go -pkg mock . Backend

// Backend represents the functionality of github.com/ethereum/go-ethereum/ethclient.Client the binding relies on
type Backend interface {
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

var (
	_ bind.ContractBackend = Backend(nil)
	_ bind.DeployBackend   = Backend(nil)
)

// Binder binds signing identities to the voting contract
type Binder struct {
	backend       Backend
	address       common.Address
	confirmations uint64
	backOff       utils.BackOff
	logger        log.Logger
}

// NewBinder returns a binder for the voting contract at address.
// Votes count as confirmed once their block is the given number of confirmations deep,
// polling for it with the given back-off.
func NewBinder(backend Backend, address common.Address, confirmations uint64, backOff utils.BackOff, logger log.Logger) *Binder {
	return &Binder{
		backend:       backend,
		address:       address,
		confirmations: confirmations,
		backOff:       utils.Capped(backOff, maxSleepBeforePoll),
		logger:        logger.With("component", "contract", "address", address.Hex()),
	}
}

// Bind returns a handle on the voting contract acting as the given account
func (b *Binder) Bind(ctx context.Context, account chain.Account) (*Handle, error) {
	if account.IsZero() {
		return nil, errorsmod.Wrap(votetypes.ErrBinding, "invalid account handle")
	}

	chainID, err := b.backend.ChainID(ctx)
	if err != nil {
		return nil, votetypes.WithKind(votetypes.ErrBinding, err, "failed to resolve chain id")
	}

	return &Handle{
		account:       account,
		chainID:       chainID,
		backend:       b.backend,
		contract:      bind.NewBoundContract(b.address, VotingABI, b.backend, b.backend, b.backend),
		confirmations: b.confirmations,
		backOff:       b.backOff,
		logger:        b.logger.With("account", account.Address().Hex()),
	}, nil
}

// Handle is the typed call surface of the voting contract, bound to one account
type Handle struct {
	account       chain.Account
	chainID       *big.Int
	backend       Backend
	contract      *bind.BoundContract
	confirmations uint64
	backOff       utils.BackOff
	logger        log.Logger
}

// Account returns the account the handle acts as
func (h *Handle) Account() chain.Account {
	return h.account
}

// ChainID returns the id of the chain the handle is bound to
func (h *Handle) ChainID() *big.Int {
	return new(big.Int).Set(h.chainID)
}

// Vote signs the vote transaction with the account's wallet and submits it
func (h *Handle) Vote(ctx context.Context) (*types.Transaction, error) {
	opts := &bind.TransactOpts{
		From:    h.account.Address(),
		Context: ctx,
		Signer: func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return h.account.Wallet().SignTx(ctx, from, tx, h.chainID)
		},
	}

	tx, err := h.contract.Transact(opts, MethodVote)
	switch {
	case errors.Is(err, votetypes.ErrUserRejected):
		return nil, votetypes.WithKind(votetypes.ErrSubmissionRejected, err, "vote not signed")
	case err != nil:
		return nil, remoteCallFailed(MethodVote, err)
	}

	h.logger.Info("vote submitted", "tx", tx.Hash().Hex())
	return tx, nil
}

// GetEncryptedTotal returns the ciphertext of the running tally
func (h *Handle) GetEncryptedTotal(ctx context.Context) ([]byte, error) {
	var out []interface{}
	if err := h.contract.Call(h.callOpts(ctx), &out, MethodGetEncryptedTotal); err != nil {
		return nil, remoteCallFailed(MethodGetEncryptedTotal, err)
	}

	return *abi.ConvertType(out[0], new([]byte)).(*[]byte), nil
}

// GetDecryptedTotal returns the plaintext of the running tally.
// It fails with ErrPermissionDenied if the contract refuses decryption for the account.
func (h *Handle) GetDecryptedTotal(ctx context.Context) (uint32, error) {
	var out []interface{}
	err := h.contract.Call(h.callOpts(ctx), &out, MethodGetDecryptedTotal)
	switch {
	case err != nil && isExecutionRevert(err):
		return 0, votetypes.WithKindf(votetypes.ErrPermissionDenied, err, "%s reverted", MethodGetDecryptedTotal)
	case err != nil:
		return 0, remoteCallFailed(MethodGetDecryptedTotal, err)
	}

	return *abi.ConvertType(out[0], new(uint32)).(*uint32), nil
}

// HasVoted returns whether the contract recorded a vote from voter
func (h *Handle) HasVoted(ctx context.Context, voter common.Address) (bool, error) {
	var out []interface{}
	if err := h.contract.Call(h.callOpts(ctx), &out, MethodHasVoted, voter); err != nil {
		return false, remoteCallFailed(MethodHasVoted, err)
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (h *Handle) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: h.account.Address()}
}
