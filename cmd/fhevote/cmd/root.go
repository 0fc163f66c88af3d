package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/axelarnetwork/fhevote/voter"
	"github.com/axelarnetwork/fhevote/voter/config"
)

// Name is the name of the application
const Name = "fhevote"

const (
	flagHome      = "home"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagEnvFile   = "env-file"
	flagRPCAddr   = "rpc-addr"
	flagContract  = "contract-addr"

	logFormatPlain = "plain"
	logFormatJSON  = "json"
)

// DefaultHome is the default home directory of the application
var DefaultHome = func() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "." + Name
	}

	return filepath.Join(userHome, "."+Name)
}()

// NewRootCmd creates a new root command for fhevote
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           Name,
		Short:         "Cast an encrypted vote and watch the running tally",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(cmd); err != nil {
				return err
			}

			if err := initViper(cmd, v); err != nil {
				return err
			}

			logger, err := newLogger(v)
			if err != nil {
				return err
			}

			voter.SetCmdContext(cmd, &voter.Context{
				Viper:  v,
				Logger: logger,
				In:     os.Stdin,
				Out:    cmd.OutOrStdout(),
			})

			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagHome, DefaultHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String(flagLogFormat, logFormatPlain, "log format (plain|json)")
	rootCmd.PersistentFlags().String(flagEnvFile, ".env", "file with environment variables to load, ignored if missing")
	rootCmd.PersistentFlags().String(flagRPCAddr, config.DefaultVoterConfig().RPCAddr, "JSON-RPC address of the node")
	rootCmd.PersistentFlags().String(flagContract, config.DefaultVoterConfig().ContractAddr.Hex(), "address of the voting contract")

	home := func() string { return v.GetString(flagHome) }
	rootCmd.AddCommand(
		voter.GetStartCommand(),
		voter.GetServeCommand(),
		voter.GetHealthCheckCommand(),
		voter.GetConfigCommand(home),
	)

	return rootCmd
}

func loadEnvFile(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString(flagEnvFile)
	if err != nil {
		return err
	}

	// variables already set in the environment take precedence
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "failed to load %s", path)
	}

	return nil
}

func initViper(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := config.SetDefaults(v, config.DefaultVoterConfig()); err != nil {
		return err
	}

	if err := bindFlags(v, cmd.Flags(), map[string]string{
		flagHome:        flagHome,
		flagLogLevel:    flagLogLevel,
		flagLogFormat:   flagLogFormat,
		"rpc_addr":      flagRPCAddr,
		"contract_addr": flagContract,
	}); err != nil {
		return err
	}

	v.AddConfigPath(v.GetString(flagHome))
	v.SetConfigName("config")
	v.SetConfigType("toml")

	err := v.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}

	return err
}

// bindFlags binds the given config keys to their flags, so explicitly set flags override config file and environment
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keysToFlags map[string]string) error {
	for key, name := range keysToFlags {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag %s", name)
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	return nil
}

func newLogger(v *viper.Viper) (log.Logger, error) {
	var logWriter io.Writer
	switch format := strings.ToLower(v.GetString(flagLogFormat)); format {
	case logFormatPlain:
		logWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	case logFormatJSON:
		logWriter = os.Stderr
	default:
		return nil, fmt.Errorf("unknown log format %s", format)
	}

	logLvlStr := v.GetString(flagLogLevel)
	logLvl, err := zerolog.ParseLevel(logLvlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", logLvlStr, err)
	}

	return log.NewCustomLogger(zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger()), nil
}
