package tally

import (
	"bytes"
	"fmt"
)

// PlaintextState is the outcome of the latest attempt to read the decrypted tally
type PlaintextState interface {
	isPlaintextState()
	fmt.Stringer
}

// Unknown means no plaintext read has been attempted yet
type Unknown struct{}

// Value is a successfully decrypted tally
type Value struct {
	N uint32
}

// PermissionDenied means the contract refused decryption for the bound account
type PermissionDenied struct{}

// FetchFailed means the plaintext read failed for a reason other than missing permissions
type FetchFailed struct {
	Reason error
}

func (Unknown) isPlaintextState()          {}
func (Value) isPlaintextState()            {}
func (PermissionDenied) isPlaintextState() {}
func (FetchFailed) isPlaintextState()      {}

func (Unknown) String() string          { return "unknown" }
func (v Value) String() string          { return fmt.Sprintf("%d", v.N) }
func (PermissionDenied) String() string { return "permission denied" }
func (f FetchFailed) String() string    { return fmt.Sprintf("fetch failed: %s", f.Reason) }

// View is one reconciled reading of both tally sources
type View struct {
	// Ciphertext is nil until the encrypted tally has been read
	Ciphertext []byte
	Plaintext  PlaintextState
	// AsOf orders views by the time their refresh was issued
	AsOf uint64
}

// Empty returns the view shown before any refresh
func Empty() View {
	return View{Plaintext: Unknown{}}
}

// Clone returns a deep copy of the view
func (v View) Clone() View {
	if v.Ciphertext != nil {
		v.Ciphertext = bytes.Clone(v.Ciphertext)
	}

	if v.Plaintext == nil {
		v.Plaintext = Unknown{}
	}

	return v
}

// HasCiphertext returns true if the encrypted tally has been read
func (v View) HasCiphertext() bool {
	return v.Ciphertext != nil
}
