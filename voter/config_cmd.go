package voter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/axelarnetwork/fhevote/voter/config"
)

// RW grants -rw------- file permissions
const RW = 0600

// RWX grants -rwx------ file permissions
const RWX = 0700

// ConfigFileName is the name of the config file inside the home directory
const ConfigFileName = "config.toml"

const flagForce = "force"

// GetConfigCommand returns the command group to manage the config file
func GetConfigCommand(home func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(getConfigInitCommand(home))
	return cmd
}

func getConfigInitCommand(home func() string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the home directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			voterCtx, err := GetContextFromCmd(cmd)
			if err != nil {
				return err
			}

			path, err := InitConfigFile(home(), force)
			if err != nil {
				return err
			}

			voterCtx.Logger.Info(fmt.Sprintf("config written to %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, flagForce, false, "overwrite an existing config file")
	return cmd
}

// InitConfigFile writes the default configuration into dir and returns the file's path.
// An existing file is only replaced if force is set.
func InitConfigFile(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, RWX); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", dir)
	}

	path := filepath.Join(dir, ConfigFileName)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, RW)
	if errors.Is(err, os.ErrExist) {
		return "", errors.Errorf("%s already exists, use --%s to overwrite it", path, flagForce)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	if err := config.WriteTOML(f, config.DefaultVoterConfig()); err != nil {
		return "", errors.Wrap(err, "failed to write config")
	}

	return path, nil
}
