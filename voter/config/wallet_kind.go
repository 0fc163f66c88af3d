package config

import (
	"fmt"
	"strings"
)

// WalletKind is the type of wallet the client signs with
type WalletKind int

// wallet kinds
const (
	NoWallet WalletKind = iota
	KeystoreWallet
	MnemonicWallet
)

var walletKindNames = map[WalletKind]string{
	NoWallet:       "none",
	KeystoreWallet: "keystore",
	MnemonicWallet: "mnemonic",
}

func (k WalletKind) String() string {
	name, ok := walletKindNames[k]
	if !ok {
		return fmt.Sprintf("WalletKind(%d)", int(k))
	}

	return name
}

// ParseWalletKind parses a wallet kind from its name. The empty string means no wallet.
func ParseWalletKind(s string) (WalletKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NoWallet, nil
	}

	for kind, name := range walletKindNames {
		if name == s {
			return kind, nil
		}
	}

	return NoWallet, fmt.Errorf("unknown wallet kind %q", s)
}
