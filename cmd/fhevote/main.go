package main

import (
	"context"
	"os"

	"github.com/axelarnetwork/fhevote/cmd/fhevote/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
