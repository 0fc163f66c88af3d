package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/axelarnetwork/utils/funcs"
)

// DefaultAddress is the location the encrypted voting contract is deployed to on a fresh local node
var DefaultAddress = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")

// contract methods
const (
	MethodVote              = "vote"
	MethodGetEncryptedTotal = "getEncryptedTotal"
	MethodGetDecryptedTotal = "getDecryptedTotal"
	MethodHasVoted          = "hasVoted"
)

// VotingABI is the call surface of the encrypted voting contract
var VotingABI = funcs.Must(abi.JSON(strings.NewReader(
	`[
		{
			"inputs": [],
			"name": "vote",
			"outputs": [],
			"stateMutability": "nonpayable",
			"type": "function"
		},
		{
			"inputs": [],
			"name": "getEncryptedTotal",
			"outputs": [{"internalType": "bytes", "name": "", "type": "bytes"}],
			"stateMutability": "view",
			"type": "function"
		},
		{
			"inputs": [],
			"name": "getDecryptedTotal",
			"outputs": [{"internalType": "uint32", "name": "", "type": "uint32"}],
			"stateMutability": "view",
			"type": "function"
		},
		{
			"inputs": [{"internalType": "address", "name": "", "type": "address"}],
			"name": "hasVoted",
			"outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
			"stateMutability": "view",
			"type": "function"
		}
	]`,
)))
