package tally

import (
	"encoding/hex"
	"fmt"
)

const ciphertextPreviewLen = 24

// FormatCiphertext abbreviates the encrypted tally for display
func FormatCiphertext(v View) string {
	if !v.HasCiphertext() {
		return "Loading..."
	}

	encoded := hex.EncodeToString(v.Ciphertext)
	if len(encoded) > ciphertextPreviewLen {
		encoded = encoded[:ciphertextPreviewLen]
	}

	return fmt.Sprintf("0x%s...", encoded)
}

// FormatPlaintext renders the plaintext state the way it is shown to the voter
func FormatPlaintext(v View) string {
	switch p := v.Plaintext.(type) {
	case Value:
		return fmt.Sprintf("%d", p.N)
	case PermissionDenied:
		return "No decryption permissions"
	case FetchFailed:
		return "Unavailable"
	default:
		return "Connect to view"
	}
}
