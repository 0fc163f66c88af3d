package contract_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"cosmossdk.io/log"
	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/fhevote/utils"
	"github.com/axelarnetwork/fhevote/voter/chain"
	"github.com/axelarnetwork/fhevote/voter/contract"
	"github.com/axelarnetwork/fhevote/voter/contract/mock"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
	walletmock "github.com/axelarnetwork/fhevote/voter/wallet/mock"
	"github.com/axelarnetwork/utils/funcs"
	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"
)

var stringType = funcs.Must(abi.NewType("string", "string", nil))

// rpcError mimics the error geth's JSON-RPC client returns for failed calls
type rpcError struct {
	code int
	data interface{}
}

func (e rpcError) Error() string          { return "execution reverted" }
func (e rpcError) ErrorCode() int         { return e.code }
func (e rpcError) ErrorData() interface{} { return e.data }

func revertData(reason string) string {
	selector := crypto.Keccak256([]byte("Error(string)"))[:4]
	return hexutil.Encode(append(selector, funcs.Must(abi.Arguments{{Type: stringType}}.Pack(reason))...))
}

func randAddress() common.Address {
	return common.BytesToAddress(rand.Bytes(common.AddressLength))
}

// newBackend returns a backend mock that behaves like a healthy pre-London node
func newBackend() *mock.BackendMock {
	return &mock.BackendMock{
		ChainIDFunc:         func(context.Context) (*big.Int, error) { return big.NewInt(31337), nil },
		CodeAtFunc:          func(context.Context, common.Address, *big.Int) ([]byte, error) { return []byte{1}, nil },
		PendingCodeAtFunc:   func(context.Context, common.Address) ([]byte, error) { return []byte{1}, nil },
		HeaderByNumberFunc:  func(context.Context, *big.Int) (*types.Header, error) { return &types.Header{Number: big.NewInt(1)}, nil },
		SuggestGasPriceFunc: func(context.Context) (*big.Int, error) { return big.NewInt(1_000_000_000), nil },
		EstimateGasFunc:     func(context.Context, ethereum.CallMsg) (uint64, error) { return 50000, nil },
		PendingNonceAtFunc:  func(context.Context, common.Address) (uint64, error) { return 0, nil },
		SendTransactionFunc: func(context.Context, *types.Transaction) error { return nil },
	}
}

func newWallet() *walletmock.WalletMock {
	return &walletmock.WalletMock{
		SignTxFunc: func(_ context.Context, _ common.Address, tx *types.Transaction, _ *big.Int) (*types.Transaction, error) {
			return tx, nil
		},
	}
}

func bindHandle(t *testing.T, backend contract.Backend, address common.Address, account chain.Account, confirmations uint64) *contract.Handle {
	binder := contract.NewBinder(backend, address, confirmations, utils.LinearBackOff(time.Millisecond), log.NewNopLogger())
	handle, err := binder.Bind(context.Background(), account)
	assert.NoError(t, err)

	return handle
}

func TestBinder_Bind(t *testing.T) {
	backend := newBackend()
	binder := contract.NewBinder(backend, contract.DefaultAddress, 1, utils.ExponentialBackOff(time.Millisecond), log.NewNopLogger())

	_, err := binder.Bind(context.Background(), chain.Account{})
	assert.ErrorIs(t, err, votetypes.ErrBinding)
	assert.Empty(t, backend.ChainIDCalls())

	account := chain.NewAccount(randAddress(), newWallet())
	handle, err := binder.Bind(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, account, handle.Account())
	assert.EqualValues(t, 31337, handle.ChainID().Int64())

	backend.ChainIDFunc = func(context.Context) (*big.Int, error) { return nil, errors.New("connection refused") }
	_, err = binder.Bind(context.Background(), account)
	assert.ErrorIs(t, err, votetypes.ErrBinding)
}

func TestHandle_Reads(t *testing.T) {
	var (
		backend    *mock.BackendMock
		handle     *contract.Handle
		account    chain.Account
		address    common.Address
		ciphertext []byte
		responses  map[string]func(input []byte) ([]byte, error)
	)

	givenHandle := Given("a handle on the voting contract", func() {
		address = randAddress()
		account = chain.NewAccount(randAddress(), newWallet())
		ciphertext = rand.Bytes(int(rand.I64Between(1, 200)))
		responses = map[string]func(input []byte) ([]byte, error){}

		backend = newBackend()
		backend.CallContractFunc = func(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			method := funcs.Must(contract.VotingABI.MethodById(call.Data[:4]))
			return responses[method.Name](call.Data[4:])
		}
		handle = bindHandle(t, backend, address, account, 1)

		responses[contract.MethodGetEncryptedTotal] = func([]byte) ([]byte, error) {
			return contract.VotingABI.Methods[contract.MethodGetEncryptedTotal].Outputs.Pack(ciphertext)
		}
	})

	givenHandle.
		Branch(
			When("the account may decrypt", func() {
				responses[contract.MethodGetDecryptedTotal] = func([]byte) ([]byte, error) {
					return contract.VotingABI.Methods[contract.MethodGetDecryptedTotal].Outputs.Pack(uint32(42))
				}
			}).
				Then("both totals are returned", func(t *testing.T) {
					actual, err := handle.GetEncryptedTotal(context.Background())
					assert.NoError(t, err)
					assert.Equal(t, ciphertext, actual)

					total, err := handle.GetDecryptedTotal(context.Background())
					assert.NoError(t, err)
					assert.EqualValues(t, 42, total)

					for _, call := range backend.CallContractCalls() {
						assert.Equal(t, address, *call.Call.To)
						assert.Equal(t, account.Address(), call.Call.From)
					}
				}),

			When("the contract reverts decryption", func() {
				responses[contract.MethodGetDecryptedTotal] = func([]byte) ([]byte, error) {
					return nil, rpcError{code: 3, data: revertData("not allowed to decrypt")}
				}
			}).
				Then("decryption fails with PermissionDenied", func(t *testing.T) {
					_, err := handle.GetDecryptedTotal(context.Background())
					assert.ErrorIs(t, err, votetypes.ErrPermissionDenied)
					assert.NotErrorIs(t, err, votetypes.ErrRemoteCallFailed)

					var nodeErr rpc.Error
					assert.ErrorAs(t, err, &nodeErr)
					assert.Equal(t, 3, nodeErr.ErrorCode())
				}),

			When("the node cannot be reached", func() {
				responses[contract.MethodGetDecryptedTotal] = func([]byte) ([]byte, error) {
					return nil, errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")
				}
				responses[contract.MethodGetEncryptedTotal] = responses[contract.MethodGetDecryptedTotal]
			}).
				Then("reads fail with RemoteCallFailed", func(t *testing.T) {
					_, err := handle.GetDecryptedTotal(context.Background())
					assert.ErrorIs(t, err, votetypes.ErrRemoteCallFailed)
					assert.NotErrorIs(t, err, votetypes.ErrPermissionDenied)

					_, err = handle.GetEncryptedTotal(context.Background())
					assert.ErrorIs(t, err, votetypes.ErrRemoteCallFailed)
				}),

			When("hasVoted is queried", func() {
				responses[contract.MethodHasVoted] = func(input []byte) ([]byte, error) {
					args := funcs.Must(contract.VotingABI.Methods[contract.MethodHasVoted].Inputs.Unpack(input))
					return contract.VotingABI.Methods[contract.MethodHasVoted].Outputs.Pack(args[0].(common.Address) == account.Address())
				}
			}).
				Then("the contract's answer for the address is returned", func(t *testing.T) {
					voted, err := handle.HasVoted(context.Background(), account.Address())
					assert.NoError(t, err)
					assert.True(t, voted)

					voted, err = handle.HasVoted(context.Background(), randAddress())
					assert.NoError(t, err)
					assert.False(t, voted)
				}),
		).
		Run(t, 5)
}

func TestHandle_Vote(t *testing.T) {
	var (
		backend *mock.BackendMock
		w       *walletmock.WalletMock
		handle  *contract.Handle
		address common.Address
	)

	givenHandle := Given("a handle on the voting contract", func() {
		address = randAddress()
		backend = newBackend()
		w = newWallet()
		handle = bindHandle(t, backend, address, chain.NewAccount(randAddress(), w), 1)
	})

	givenHandle.
		Branch(
			When("the user signs", func() {}).
				Then("the vote transaction is submitted once", func(t *testing.T) {
					tx, err := handle.Vote(context.Background())
					assert.NoError(t, err)
					assert.Equal(t, address, *tx.To())
					assert.Equal(t, contract.VotingABI.Methods[contract.MethodVote].ID, tx.Data())

					assert.Len(t, w.SignTxCalls(), 1)
					assert.EqualValues(t, 31337, w.SignTxCalls()[0].ChainID.Int64())
					assert.Len(t, backend.SendTransactionCalls(), 1)
					assert.Equal(t, tx.Hash(), backend.SendTransactionCalls()[0].Tx.Hash())
				}),

			When("the user declines to sign", func() {
				w.SignTxFunc = func(context.Context, common.Address, *types.Transaction, *big.Int) (*types.Transaction, error) {
					return nil, errorsmod.Wrap(votetypes.ErrUserRejected, "declined")
				}
			}).
				Then("submission is rejected and nothing is sent", func(t *testing.T) {
					_, err := handle.Vote(context.Background())
					assert.ErrorIs(t, err, votetypes.ErrSubmissionRejected)
					assert.ErrorIs(t, err, votetypes.ErrUserRejected)
					assert.Equal(t, "SubmissionRejected", votetypes.Kind(err))
					assert.Empty(t, backend.SendTransactionCalls())
				}),

			When("the node refuses the transaction", func() {
				backend.SendTransactionFunc = func(context.Context, *types.Transaction) error {
					return errors.New("nonce too low")
				}
			}).
				Then("submission fails with RemoteCallFailed", func(t *testing.T) {
					_, err := handle.Vote(context.Background())
					assert.ErrorIs(t, err, votetypes.ErrRemoteCallFailed)
				}),
		).
		Run(t)
}

func TestHandle_WaitConfirmed(t *testing.T) {
	var (
		backend *mock.BackendMock
		handle  *contract.Handle
		tx      *types.Transaction
		receipt *types.Receipt
	)

	givenMinedTx := Given("a mined vote transaction", func() {
		tx = types.NewTransaction(0, randAddress(), big.NewInt(0), 50000, big.NewInt(1), nil)
		receipt = &types.Receipt{
			TxHash:      tx.Hash(),
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(rand.I64Between(1, 1000)),
		}
		backend = newBackend()
		backend.TransactionReceiptFunc = func(context.Context, common.Hash) (*types.Receipt, error) { return receipt, nil }
	})

	givenMinedTx.
		Branch(
			When("one confirmation is required", func() {
				handle = bindHandle(t, backend, randAddress(), chain.NewAccount(randAddress(), newWallet()), 1)
			}).
				Then("it is confirmed once mined", func(t *testing.T) {
					assert.NoError(t, handle.WaitConfirmed(context.Background(), tx))
					assert.Empty(t, backend.BlockNumberCalls())
				}),

			When("the transaction reverted", func() {
				receipt.Status = types.ReceiptStatusFailed
				handle = bindHandle(t, backend, randAddress(), chain.NewAccount(randAddress(), newWallet()), 1)
			}).
				Then("confirmation fails", func(t *testing.T) {
					err := handle.WaitConfirmed(context.Background(), tx)
					assert.ErrorIs(t, err, votetypes.ErrConfirmationFailed)
				}),

			When("three confirmations are required", func() {
				handle = bindHandle(t, backend, randAddress(), chain.NewAccount(randAddress(), newWallet()), 3)
				latest := receipt.BlockNumber.Uint64() - 1
				backend.BlockNumberFunc = func(context.Context) (uint64, error) {
					latest++
					return latest, nil
				}
			}).
				Then("it waits until the block is deep enough", func(t *testing.T) {
					assert.NoError(t, handle.WaitConfirmed(context.Background(), tx))
					assert.Len(t, backend.BlockNumberCalls(), 3)
				}),
		).
		Run(t, 5)
}

func TestHandle_WaitConfirmed_Cancelled(t *testing.T) {
	backend := newBackend()
	backend.TransactionReceiptFunc = func(context.Context, common.Hash) (*types.Receipt, error) { return nil, ethereum.NotFound }
	handle := bindHandle(t, backend, randAddress(), chain.NewAccount(randAddress(), newWallet()), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handle.WaitConfirmed(ctx, types.NewTransaction(0, randAddress(), big.NewInt(0), 50000, big.NewInt(1), nil))
	assert.ErrorIs(t, err, votetypes.ErrConfirmationFailed)
}
