package voter

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/axelarnetwork/fhevote/voter/display"
	"github.com/axelarnetwork/fhevote/voter/wallet"
)

// GetStartCommand returns the command to start an interactive voting session
func GetStartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start an interactive voting session in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			voterCtx, err := GetContextFromCmd(cmd)
			if err != nil {
				return err
			}

			cfg, err := ReadConfig(voterCtx.Viper)
			if err != nil {
				return err
			}

			in := bufio.NewReader(voterCtx.In)
			v, err := NewVoter(cmd.Context(), cfg, wallet.NewTerminalPrompter(in, voterCtx.Out), voterCtx.Logger)
			if err != nil {
				return err
			}
			defer v.Close()

			v.Controller.AddObserver(display.PhaseLogger(voterCtx.Out))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			done := make(chan struct{})
			defer close(done)

			// the first signal aborts pending operations, the next one terminates the process
			go func() {
				select {
				case <-ctx.Done():
					stop()
					fmt.Fprintln(os.Stderr, "interrupted, press enter to leave or send the signal again to exit")
				case <-done:
				}
			}()

			v.Controller.Start(ctx)
			return NewConsole(v.Controller, in, voterCtx.Out).Run(ctx)
		},
	}

	return cmd
}
