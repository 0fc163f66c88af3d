package config

import (
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
)

var (
	walletKindType = reflect.TypeOf(WalletKind(0))
	addressType    = reflect.TypeOf(common.Address{})
)

// walletKindHook decodes names like "keystore" into a WalletKind
func walletKindHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	name, ok := data.(string)
	if !ok || to != walletKindType {
		return data, nil
	}

	return ParseWalletKind(name)
}

// addressHook decodes hex strings into addresses. The empty string decodes to the zero address.
func addressHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	hex, ok := data.(string)
	if !ok || to != addressType {
		return data, nil
	}

	switch {
	case hex == "":
		return common.Address{}, nil
	case !common.IsHexAddress(hex):
		return nil, fmt.Errorf("invalid address %q", hex)
	default:
		return common.HexToAddress(hex), nil
	}
}

// AddDecodeHooks runs the wallet kind and address hooks ahead of any hook cfg already has
func AddDecodeHooks(cfg *mapstructure.DecoderConfig) {
	hooks := []mapstructure.DecodeHookFunc{
		walletKindHook,
		addressHook,
	}
	if cfg.DecodeHook != nil {
		hooks = append(hooks, cfg.DecodeHook)
	}

	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
}
