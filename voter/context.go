package voter

import (
	"context"
	"io"

	"cosmossdk.io/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Context carries the process-wide dependencies of the commands
type Context struct {
	Viper  *viper.Viper
	Logger log.Logger
	In     io.Reader
	Out    io.Writer
}

type contextKey struct{}

// SetCmdContext attaches ctx to the command so its run functions can retrieve it
func SetCmdContext(cmd *cobra.Command, ctx *Context) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	cmd.SetContext(context.WithValue(parent, contextKey{}, ctx))
}

// GetContextFromCmd returns the context attached to the command
func GetContextFromCmd(cmd *cobra.Command) (*Context, error) {
	if cmd.Context() == nil {
		return nil, errors.New("command context not set")
	}

	ctx, ok := cmd.Context().Value(contextKey{}).(*Context)
	if !ok {
		return nil, errors.New("command context not set")
	}

	return ctx, nil
}
