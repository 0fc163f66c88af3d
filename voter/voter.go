package voter

import (
	"context"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"

	"github.com/axelarnetwork/fhevote/voter/chain"
	"github.com/axelarnetwork/fhevote/voter/config"
	"github.com/axelarnetwork/fhevote/voter/contract"
	"github.com/axelarnetwork/fhevote/voter/metrics"
	"github.com/axelarnetwork/fhevote/voter/session"
	"github.com/axelarnetwork/fhevote/voter/tally"
	"github.com/axelarnetwork/fhevote/voter/wallet"
)

// Voter is a fully wired voting client
type Voter struct {
	Config     config.VoterConfig
	Controller *session.Controller
	Registry   *prometheus.Registry

	client *ethclient.Client
}

// ReadConfig decodes and validates the voting client configuration held by v
func ReadConfig(v *viper.Viper) (config.VoterConfig, error) {
	cfg := config.DefaultVoterConfig()
	if err := v.Unmarshal(&cfg, config.AddDecodeHooks); err != nil {
		return config.VoterConfig{}, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return config.VoterConfig{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// NewVoter connects to the node and wires the session controller
func NewVoter(ctx context.Context, cfg config.VoterConfig, prompter wallet.Prompter, logger log.Logger) (*Voter, error) {
	rpcClient, err := rpc.DialContext(ctx, cfg.RPCAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", cfg.RPCAddr)
	}
	client := ethclient.NewClient(rpcClient)

	w, err := NewWallet(cfg.Wallet, prompter)
	if err != nil {
		client.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	binder := contract.NewBinder(client, cfg.ContractAddr, cfg.Confirmations, cfg.PollBackOff(), logger)
	controller := session.NewController(
		chain.NewConnector(w, logger),
		bindContract(binder),
		tally.NewReconciler(logger),
		metrics.New(reg),
		logger,
	)

	logger.Info("voting client ready", "rpc", cfg.RPCAddr, "contract", cfg.ContractAddr.Hex(), "wallet", cfg.Wallet.Kind.String())

	return &Voter{
		Config:     cfg,
		Controller: controller,
		Registry:   reg,
		client:     client,
	}, nil
}

// Close releases the node connection
func (v *Voter) Close() {
	v.client.Close()
}

// NewWallet opens the wallet selected by cfg. It returns a nil wallet if none is configured.
func NewWallet(cfg config.WalletConfig, prompter wallet.Prompter) (wallet.Wallet, error) {
	switch cfg.Kind {
	case config.NoWallet:
		return nil, nil
	case config.KeystoreWallet:
		ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
		w, err := wallet.NewKeystoreWallet(ks, cfg.Account, prompter)
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.MnemonicWallet:
		w, err := wallet.NewMnemonicWallet(cfg.Mnemonic, cfg.DerivationPath, cfg.Authorized, prompter)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, errors.Errorf("unknown wallet kind %s", cfg.Kind)
	}
}

func bindContract(binder *contract.Binder) session.BinderFunc {
	return func(ctx context.Context, account chain.Account) (session.Contract, error) {
		handle, err := binder.Bind(ctx, account)
		if err != nil {
			return nil, err
		}

		return handle, nil
	}
}
