package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := NewRootCmd()

	for _, name := range []string{"start", "serve", "health-check", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		assert.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(flagRPCAddr, "http://default", "")

	v := viper.New()
	assert.NoError(t, bindFlags(v, flags, map[string]string{"rpc_addr": flagRPCAddr}))
	assert.Equal(t, "http://default", v.GetString("rpc_addr"))

	assert.NoError(t, flags.Set(flagRPCAddr, "http://node:8545"))
	assert.Equal(t, "http://node:8545", v.GetString("rpc_addr"))

	assert.Error(t, bindFlags(v, flags, map[string]string{"contract_addr": flagContract}))
}

func TestNewLogger(t *testing.T) {
	v := viper.New()
	v.Set(flagLogLevel, "debug")

	v.Set(flagLogFormat, logFormatJSON)
	_, err := newLogger(v)
	assert.NoError(t, err)

	v.Set(flagLogFormat, "xml")
	_, err = newLogger(v)
	assert.Error(t, err)

	v.Set(flagLogFormat, logFormatPlain)
	v.Set(flagLogLevel, "loud")
	_, err = newLogger(v)
	assert.Error(t, err)
}
