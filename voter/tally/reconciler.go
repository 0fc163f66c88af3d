package tally

import (
	"context"
	"errors"
	"sync/atomic"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

//go:generate moq -out ./mock/reconciler.go -pkg mock . Source

// Source is the pair of tally reads a contract binding offers
type Source interface {
	GetEncryptedTotal(ctx context.Context) ([]byte, error)
	GetDecryptedTotal(ctx context.Context) (uint32, error)
}

// Reconciler combines the public ciphertext and the access-gated plaintext into one view
type Reconciler struct {
	issued atomic.Uint64
	logger log.Logger
}

// NewReconciler returns a new reconciler
func NewReconciler(logger log.Logger) *Reconciler {
	return &Reconciler{logger: logger.With("component", "tally")}
}

// Refresh reads both tally sources. The returned view is stamped when the refresh is issued,
// so a slow refresh can never overtake one issued after it.
// Only a failure to read the ciphertext fails the refresh; plaintext failures degrade the view.
// A failed refresh still returns its stamp in an otherwise empty view.
func (r *Reconciler) Refresh(ctx context.Context, src Source) (View, error) {
	asOf := r.issued.Add(1)

	ciphertext, err := src.GetEncryptedTotal(ctx)
	switch {
	case errorsmod.IsOf(err, votetypes.ErrRemoteCallFailed):
		return View{AsOf: asOf}, errorsmod.Wrap(err, "failed to fetch encrypted tally")
	case err != nil:
		return View{AsOf: asOf}, votetypes.WithKind(votetypes.ErrRemoteCallFailed, err, "failed to fetch encrypted tally")
	}
	if ciphertext == nil {
		ciphertext = []byte{}
	}

	view := View{Ciphertext: ciphertext, AsOf: asOf}

	n, err := src.GetDecryptedTotal(ctx)
	switch {
	case err == nil:
		view.Plaintext = Value{N: n}
	case errors.Is(err, votetypes.ErrPermissionDenied):
		r.logger.Debug("no permission to decrypt tally")
		view.Plaintext = PermissionDenied{}
	default:
		r.logger.Info("failed to fetch plaintext tally", "error", err)
		view.Plaintext = FetchFailed{Reason: err}
	}

	return view, nil
}
