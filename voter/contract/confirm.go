package contract

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

const maxSleepBeforePoll = 30 * time.Second

// WaitConfirmed blocks until the transaction is mined successfully and its block is deep enough to be considered final.
// A reverted transaction fails with ErrConfirmationFailed, as does giving up through ctx.
func (h *Handle) WaitConfirmed(ctx context.Context, tx *types.Transaction) error {
	receipt, err := bind.WaitMined(ctx, h.backend, tx)
	if err != nil {
		return votetypes.WithKindf(votetypes.ErrConfirmationFailed, err, "tx %s not mined", tx.Hash().Hex())
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return errorsmod.Wrapf(votetypes.ErrConfirmationFailed, "tx %s reverted in block %s", tx.Hash().Hex(), receipt.BlockNumber)
	}

	if h.confirmations <= 1 {
		h.logger.Info("vote confirmed", "tx", tx.Hash().Hex(), "block", receipt.BlockNumber.Uint64())
		return nil
	}

	// a receipt is final once the latest block is at least confirmations-1 blocks past it
	target := receipt.BlockNumber.Uint64() + h.confirmations - 1
	for attempt := 0; ; attempt++ {
		latest, err := h.backend.BlockNumber(ctx)
		switch {
		case err != nil:
			h.logger.Debug("failed to fetch latest block number", "error", err)
		case latest >= target:
			h.logger.Info("vote confirmed", "tx", tx.Hash().Hex(), "block", receipt.BlockNumber.Uint64())
			return nil
		}

		select {
		case <-ctx.Done():
			return votetypes.WithKindf(votetypes.ErrConfirmationFailed, ctx.Err(), "tx %s not final", tx.Hash().Hex())
		case <-time.After(h.backOff(attempt)):
		}
	}
}
