package multicall3

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

type Multicall3CallerIface interface {
	Aggregate3(opts *bind.CallOpts, calls []Multicall3Call3) ([]Multicall3Result, error)
	GetBlockNumber(opts *bind.CallOpts) (uint64, error)
}

// Verify that Multicall3Caller implements Multicall3CallerIface. If contract changes, this will fail to compile.
var _ Multicall3CallerIface = (*Multicall3Caller)(nil)
