package erc721

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var errorNotAvailableOnChainID = errors.New("gallery collection not available for chainID")

// Deployments of the gallery collection.
var collectionAddressByChainID = map[uint64]common.Address{
	1: common.HexToAddress("0x670d4dd2e6badfbbd372d0d37e06cd2852754a04"), // mainnet
}

func CollectionAddress(chainID uint64) (common.Address, error) {
	addr, exists := collectionAddressByChainID[chainID]
	if !exists {
		return *new(common.Address), errorNotAvailableOnChainID
	}
	return addr, nil
}
