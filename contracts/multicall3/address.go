package multicall3

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var errorNotAvailableOnChainID = errors.New("Multicall3 not available for chainID")

// DefaultAddress is the deterministic Multicall3 deployment shared by most EVM chains.
var DefaultAddress = common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11")

var contractAddressByChainID = map[uint64]common.Address{
	1:        DefaultAddress, // mainnet
	10:       DefaultAddress, // optimism
	137:      DefaultAddress, // polygon
	8453:     DefaultAddress, // base
	42161:    DefaultAddress, // arbitrum
	11155111: DefaultAddress, // sepolia
}

func ContractAddress(chainID uint64) (common.Address, error) {
	addr, exists := contractAddressByChainID[chainID]
	if !exists {
		return *new(common.Address), errorNotAvailableOnChainID
	}
	return addr, nil
}
