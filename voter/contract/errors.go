package contract

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	utilserrors "github.com/axelarnetwork/fhevote/utils/errors"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
)

// JSON-RPC error code geth and compatible nodes use for reverted calls
const executionRevertedCode = 3

// isExecutionRevert tells whether the node executed the call and the contract reverted it,
// as opposed to the call never reaching the contract
func isExecutionRevert(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return true
	}

	var rpcErr rpc.Error
	return errors.As(err, &rpcErr) && rpcErr.ErrorCode() == executionRevertedCode
}

// revertReason decodes the Error(string) payload of a revert, if the node returned one
func revertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return "", false
	}

	hex, ok := dataErr.ErrorData().(string)
	if !ok {
		return "", false
	}

	data, decodeErr := hexutil.Decode(hex)
	if decodeErr != nil {
		return "", false
	}

	reason, unpackErr := abi.UnpackRevert(data)
	if unpackErr != nil {
		return "", false
	}

	return reason, true
}

func remoteCallFailed(method string, err error) error {
	description := method
	if r, ok := revertReason(err); ok {
		description = fmt.Sprintf("%s reverted: %s", method, r)
	}

	return utilserrors.With(votetypes.WithKind(votetypes.ErrRemoteCallFailed, err, description), "method", method)
}
