package voter

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/axelarnetwork/fhevote/voter/config"
	"github.com/axelarnetwork/fhevote/voter/wallet"
)

const (
	timeout = 30 * time.Second

	flagSkipRPC    = "skip-rpc"
	flagSkipWallet = "skip-wallet"
)

// GetHealthCheckCommand returns the command to check the node and wallet configuration
func GetHealthCheckCommand() *cobra.Command {
	var skipRPC bool
	var skipWallet bool

	cmd := &cobra.Command{
		Use:   "health-check",
		Short: "Check that the node is reachable and the wallet is usable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			voterCtx, err := GetContextFromCmd(cmd)
			if err != nil {
				return err
			}

			cfg, err := ReadConfig(voterCtx.Viper)
			if err != nil {
				return err
			}

			ok := execCheck(cmd.Context(), voterCtx.Out, cfg, "rpc", skipRPC, checkRPC) &&
				execCheck(cmd.Context(), voterCtx.Out, cfg, "wallet", skipWallet, checkWallet)

			// enforce a non-zero exit code in case health checks fail without printing cobra output
			if !ok {
				os.Exit(1)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipRPC, flagSkipRPC, false, "skip rpc check")
	cmd.Flags().BoolVar(&skipWallet, flagSkipWallet, false, "skip wallet check")

	return cmd
}

type checkCmd func(ctx context.Context, cfg config.VoterConfig) error

func execCheck(ctx context.Context, out io.Writer, cfg config.VoterConfig, name string, skip bool, check checkCmd) bool {
	if skip {
		fmt.Fprintf(out, "%s check: skipped\n", name)
		return true
	}

	err := check(ctx, cfg)
	if err != nil {
		fmt.Fprintf(out, "%s check: failed (%s)\n", name, err.Error())
		return false
	}

	fmt.Fprintf(out, "%s check: passed\n", name)
	return true
}

func checkRPC(ctx context.Context, cfg config.VoterConfig) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, cfg.RPCAddr)
	if err != nil {
		return errors.Wrapf(err, "failed to dial %s", cfg.RPCAddr)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch chain id")
	}

	if chainID.Sign() <= 0 {
		return fmt.Errorf("node reported invalid chain id %s", chainID)
	}

	return nil
}

func checkWallet(ctx context.Context, cfg config.VoterConfig) error {
	if cfg.Wallet.Kind == config.NoWallet {
		return errors.New("no wallet configured")
	}

	// opening the wallet must not prompt
	w, err := NewWallet(cfg.Wallet, wallet.AutoApprove{})
	if err != nil {
		return err
	}

	_, err = w.Accounts(ctx)
	return err
}
