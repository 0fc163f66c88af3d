package voter

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cosmossdk.io/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	utilserrors "github.com/axelarnetwork/fhevote/utils/errors"
	"github.com/axelarnetwork/fhevote/voter/display"
	"github.com/axelarnetwork/fhevote/voter/session"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
	"github.com/axelarnetwork/fhevote/voter/wallet"
	"github.com/axelarnetwork/utils/jobs"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second

	keystorePassphraseKey = "keystore_passphrase"
)

// GetServeCommand returns the command to serve the voting session over HTTP
func GetServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the voting session over HTTP",
		Long: "Serve the voting session over HTTP. Wallet prompts are approved automatically, " +
			"a keystore passphrase is read from FHEVOTE_KEYSTORE_PASSPHRASE.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			voterCtx, err := GetContextFromCmd(cmd)
			if err != nil {
				return err
			}

			cfg, err := ReadConfig(voterCtx.Viper)
			if err != nil {
				return err
			}

			prompter := wallet.AutoApprove{Passphrase: voterCtx.Viper.GetString(keystorePassphraseKey)}
			v, err := NewVoter(cmd.Context(), cfg, prompter, voterCtx.Logger)
			if err != nil {
				return err
			}
			defer v.Close()

			board := display.NewBoard(v.Controller.Snapshot())
			v.Controller.AddObserver(board.Observe)

			srv := &http.Server{
				Addr:              cfg.HTTP.ListenAddr,
				Handler:           display.NewRouter(v.Controller, board, v.Registry, voterCtx.Logger),
				ReadHeaderTimeout: readHeaderTimeout,
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(sigCtx, v.Controller, srv, cfg.RefreshInterval, voterCtx.Logger)
		},
	}

	return cmd
}

func serve(ctx context.Context, controller *session.Controller, srv *http.Server, refreshInterval time.Duration, logger log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var serveErr error
	mgr := jobs.NewMgr(ctx)
	mgr.AddJobs(
		func(ctx context.Context) error {
			controller.Start(ctx)
			return nil
		},
		refreshPeriodically(controller, refreshInterval, logger),
		func(ctx context.Context) error {
			logger.Info("serving session API", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr = errors.Wrap(err, "http server failed")
				cancel()
				return serveErr
			}
			return nil
		},
		func(ctx context.Context) error {
			<-ctx.Done()
			logger.Info("shutting down")

			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancelShutdown()

			return srv.Shutdown(shutdownCtx)
		},
	)

	<-mgr.Done()
	return serveErr
}

// refreshPeriodically keeps the tally of a ready session up to date
func refreshPeriodically(controller *session.Controller, interval time.Duration, logger log.Logger) jobs.Job {
	return func(ctx context.Context) error {
		if interval <= 0 {
			return nil
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			err := controller.Refresh(ctx)
			switch {
			case err == nil, errors.Is(err, votetypes.ErrNotReady), votetypes.IsExpected(err):
				continue
			default:
				logger.Debug("periodic refresh failed", append([]interface{}{"error", err}, utilserrors.KeyVals(err)...)...)
			}
		}
	}
}
