package voter

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/fhevote/voter/config"
	"github.com/axelarnetwork/fhevote/voter/display/mock"
	"github.com/axelarnetwork/fhevote/voter/session"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
	"github.com/axelarnetwork/fhevote/voter/wallet"
	"github.com/axelarnetwork/utils/funcs"
	"github.com/axelarnetwork/utils/test/rand"
)

const devMnemonic = "test test test test test test test test test test test junk"

func newSession() *mock.SessionMock {
	return &mock.SessionMock{
		ConnectFunc:    func(context.Context) error { return nil },
		RefreshFunc:    func(context.Context) error { return nil },
		DisconnectFunc: func() {},
		SnapshotFunc:   func() session.Snapshot { return session.Snapshot{} },
		CastVoteFunc: func(context.Context) (session.VoteReceipt, error) {
			return session.VoteReceipt{}, nil
		},
	}
}

func runConsole(t *testing.T, s *mock.SessionMock, input string) string {
	var out bytes.Buffer
	err := NewConsole(s, bufio.NewReader(strings.NewReader(input)), &out).Run(context.Background())
	assert.NoError(t, err)

	return out.String()
}

func TestConsole(t *testing.T) {
	t.Run("dispatches commands to the session", func(t *testing.T) {
		s := newSession()
		tx := common.BytesToHash(rand.Bytes(common.HashLength))
		s.CastVoteFunc = func(context.Context) (session.VoteReceipt, error) {
			return session.VoteReceipt{Tx: tx, Confirmed: true}, nil
		}

		out := runConsole(t, s, "connect\nvote\nrefresh\nstatus\ndisconnect\nquit\nconnect\n")

		assert.Len(t, s.ConnectCalls(), 1)
		assert.Len(t, s.CastVoteCalls(), 1)
		assert.Len(t, s.RefreshCalls(), 1)
		assert.Len(t, s.DisconnectCalls(), 1)
		assert.Contains(t, out, "vote confirmed in tx "+tx.Hex())
		// initial render plus one per executed command
		assert.Len(t, s.SnapshotCalls(), 6)
	})

	t.Run("stops at end of input", func(t *testing.T) {
		s := newSession()

		runConsole(t, s, "connect")

		assert.Len(t, s.ConnectCalls(), 1)
	})

	t.Run("prints help and rejects unknown commands", func(t *testing.T) {
		s := newSession()

		out := runConsole(t, s, "help\n\nfoo\n")

		assert.Contains(t, out, consoleHelp)
		assert.Contains(t, out, `unknown command "foo"`)
		assert.Len(t, s.SnapshotCalls(), 1)
	})

	t.Run("prints unexpected errors", func(t *testing.T) {
		s := newSession()
		s.RefreshFunc = func(context.Context) error {
			return errorsmod.Wrap(votetypes.ErrRemoteCallFailed, "node unreachable")
		}

		out := runConsole(t, s, "refresh\n")

		assert.Contains(t, out, "error: RemoteCallFailed")
		assert.Contains(t, out, "node unreachable")
	})

	t.Run("stays quiet about expected errors", func(t *testing.T) {
		s := newSession()
		s.CastVoteFunc = func(context.Context) (session.VoteReceipt, error) {
			return session.VoteReceipt{}, errorsmod.Wrap(votetypes.ErrSuperseded, "disconnected")
		}

		out := runConsole(t, s, "vote\n")

		assert.NotContains(t, out, "error:")
		assert.NotContains(t, out, "vote confirmed")
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		s := newSession()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		err := NewConsole(s, bufio.NewReader(strings.NewReader("connect\n")), &out).Run(ctx)

		assert.NoError(t, err)
		assert.Len(t, s.ConnectCalls(), 0)
	})
}

func TestNewWallet(t *testing.T) {
	t.Run("no wallet", func(t *testing.T) {
		w, err := NewWallet(config.WalletConfig{Kind: config.NoWallet}, wallet.AutoApprove{})

		assert.NoError(t, err)
		assert.Nil(t, w)
	})

	t.Run("mnemonic wallet", func(t *testing.T) {
		cfg := config.DefaultWalletConfig()
		cfg.Kind = config.MnemonicWallet
		cfg.Mnemonic = devMnemonic
		cfg.Authorized = true

		w, err := NewWallet(cfg, wallet.AutoApprove{})

		assert.NoError(t, err)
		assert.IsType(t, &wallet.MnemonicWallet{}, w)
		assert.Len(t, funcs.Must(w.Accounts(context.Background())), 1)
	})

	t.Run("invalid mnemonic", func(t *testing.T) {
		cfg := config.DefaultWalletConfig()
		cfg.Kind = config.MnemonicWallet
		cfg.Mnemonic = "not a mnemonic"

		_, err := NewWallet(cfg, wallet.AutoApprove{})

		assert.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewWallet(config.WalletConfig{Kind: config.WalletKind(42)}, wallet.AutoApprove{})

		assert.Error(t, err)
	})
}

func TestInitConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")

	path, err := InitConfigFile(dir, false)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), path)

	v := viper.New()
	v.SetConfigFile(path)
	assert.NoError(t, v.ReadInConfig())
	assert.Equal(t, config.DefaultVoterConfig(), funcs.Must(ReadConfig(v)))

	_, err = InitConfigFile(dir, false)
	assert.ErrorContains(t, err, "already exists")

	assert.NoError(t, os.WriteFile(path, []byte("garbage"), RW))
	_, err = InitConfigFile(dir, true)
	assert.NoError(t, err)
	assert.Contains(t, string(funcs.Must(os.ReadFile(path))), "rpc_addr")
}

func TestReadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := viper.New()
		assert.NoError(t, config.SetDefaults(v, config.DefaultVoterConfig()))

		assert.Equal(t, config.DefaultVoterConfig(), funcs.Must(ReadConfig(v)))
	})

	t.Run("invalid", func(t *testing.T) {
		v := viper.New()
		assert.NoError(t, config.SetDefaults(v, config.DefaultVoterConfig()))
		v.Set("contract_addr", "0xnothex")

		_, err := ReadConfig(v)
		assert.Error(t, err)
	})

	t.Run("mnemonic wallet without mnemonic", func(t *testing.T) {
		v := viper.New()
		assert.NoError(t, config.SetDefaults(v, config.DefaultVoterConfig()))
		v.Set("wallet.kind", "mnemonic")

		_, err := ReadConfig(v)
		assert.Error(t, err)
	})
}

func TestGetContextFromCmd(t *testing.T) {
	cmd := &cobra.Command{}

	_, err := GetContextFromCmd(cmd)
	assert.Error(t, err)

	voterCtx := &Context{Viper: viper.New()}
	SetCmdContext(cmd, voterCtx)

	assert.Same(t, voterCtx, funcs.Must(GetContextFromCmd(cmd)))
}
