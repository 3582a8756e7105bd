package erc721

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type ERC721CallerIface interface {
	BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error)
	Name(opts *bind.CallOpts) (string, error)
	OwnerOf(opts *bind.CallOpts, tokenId *big.Int) (common.Address, error)
	SupportsInterface(opts *bind.CallOpts, interfaceId [4]byte) (bool, error)
	Symbol(opts *bind.CallOpts) (string, error)
	TokenURI(opts *bind.CallOpts, tokenId *big.Int) (string, error)
}

// Verify that ERC721Caller implements ERC721CallerIface. If contract changes, this will fail to compile.
var _ ERC721CallerIface = (*ERC721Caller)(nil)
