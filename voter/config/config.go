package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/fhevote/utils"
	"github.com/axelarnetwork/fhevote/voter/contract"
	"github.com/axelarnetwork/fhevote/voter/wallet"
)

// VoterConfig contains all necessary voting client configurations
type VoterConfig struct {
	RPCAddr            string         `mapstructure:"rpc_addr"`
	ContractAddr       common.Address `mapstructure:"contract_addr"`
	Confirmations      uint64         `mapstructure:"confirmations"`         // number of blocks a vote must be buried under to count as confirmed, including its own
	MinSleepBeforePoll time.Duration  `mapstructure:"min_sleep_before_poll"` // initial back-off while polling for confirmations
	PollStrategy       string         `mapstructure:"poll_strategy"`         // growth of the back-off between confirmation polls, exponential or linear
	RefreshInterval    time.Duration  `mapstructure:"refresh_interval"`      // tally refresh period of the HTTP server, 0 disables it

	Wallet WalletConfig `mapstructure:"wallet"`
	HTTP   HTTPConfig   `mapstructure:"http"`
}

// confirmation poll strategies
const (
	PollExponential = "exponential"
	PollLinear      = "linear"
)

// DefaultVoterConfig returns a configuration for a local development node
func DefaultVoterConfig() VoterConfig {
	return VoterConfig{
		RPCAddr:            "http://127.0.0.1:8545",
		ContractAddr:       contract.DefaultAddress,
		Confirmations:      1,
		MinSleepBeforePoll: 500 * time.Millisecond,
		PollStrategy:       PollExponential,
		RefreshInterval:    15 * time.Second,
		Wallet:             DefaultWalletConfig(),
		HTTP:               DefaultHTTPConfig(),
	}
}

// Validate returns an error if the configuration cannot be used
func (c VoterConfig) Validate() error {
	if c.RPCAddr == "" {
		return errors.New("rpc_addr must be set")
	}

	if c.ContractAddr == (common.Address{}) {
		return errors.New("contract_addr must be set")
	}

	if c.Confirmations == 0 {
		return errors.New("confirmations must be at least 1")
	}

	if c.MinSleepBeforePoll <= 0 {
		return errors.New("min_sleep_before_poll must be positive")
	}

	if c.PollStrategy != PollExponential && c.PollStrategy != PollLinear {
		return errors.Errorf("unknown poll_strategy %q", c.PollStrategy)
	}

	if c.RefreshInterval < 0 {
		return errors.New("refresh_interval must not be negative")
	}

	return errors.Wrap(c.Wallet.Validate(), "invalid wallet config")
}

// PollBackOff returns the back-off between confirmation polls
func (c VoterConfig) PollBackOff() utils.BackOff {
	if c.PollStrategy == PollLinear {
		return utils.LinearBackOff(c.MinSleepBeforePoll)
	}

	return utils.ExponentialBackOff(c.MinSleepBeforePoll)
}

// WalletConfig selects the wallet the client signs with
type WalletConfig struct {
	Kind           WalletKind     `mapstructure:"kind"`
	KeystoreDir    string         `mapstructure:"keystore_dir"`
	Account        common.Address `mapstructure:"account"` // the zero address selects the first account of the keystore
	Mnemonic       string         `mapstructure:"mnemonic"`
	DerivationPath string         `mapstructure:"derivation_path"`
	Authorized     bool           `mapstructure:"authorized"` // whether the mnemonic account may be used without asking
}

// DefaultWalletConfig returns a configuration without a wallet
func DefaultWalletConfig() WalletConfig {
	return WalletConfig{
		Kind:           NoWallet,
		DerivationPath: wallet.DefaultDerivationPath,
	}
}

// Validate returns an error if the selected wallet is missing its settings
func (c WalletConfig) Validate() error {
	switch c.Kind {
	case NoWallet:
		return nil
	case KeystoreWallet:
		if c.KeystoreDir == "" {
			return errors.New("keystore_dir must be set for a keystore wallet")
		}
	case MnemonicWallet:
		if c.Mnemonic == "" {
			return errors.New("mnemonic must be set for a mnemonic wallet")
		}
	default:
		return errors.Errorf("unknown wallet kind %d", c.Kind)
	}

	return nil
}

// HTTPConfig configures the HTTP server
type HTTPConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// DefaultHTTPConfig returns a configuration listening on localhost
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{ListenAddr: "127.0.0.1:7545"}
}
