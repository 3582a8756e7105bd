package contracts

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"

	gocommon "github.com/status-im/status-gallery/common"
	"github.com/status-im/status-gallery/contracts/erc721"
	"github.com/status-im/status-gallery/contracts/multicall3"
	"github.com/status-im/status-gallery/rpc"
)

type ContractMakerIface interface {
	NewERC721Caller(chainID uint64, contractAddr common.Address) (erc721.ERC721CallerIface, error)
	NewMulticall3(chainID uint64, contractAddr common.Address) (multicall3.Multicall3CallerIface, error)
}

type ContractMaker struct {
	RPCClient rpc.ClientInterface
}

func NewContractMaker(client rpc.ClientInterface) (*ContractMaker, error) {
	if gocommon.IsNil(client) {
		return nil, errors.New("could not initialize ContractMaker with an rpc client")
	}
	return &ContractMaker{RPCClient: client}, nil
}

func (c *ContractMaker) NewERC721Caller(chainID uint64, contractAddr common.Address) (erc721.ERC721CallerIface, error) {
	backend, err := c.RPCClient.EthClient(chainID)
	if err != nil {
		return nil, err
	}

	return erc721.NewERC721Caller(contractAddr, backend)
}

// NewMulticall3 binds Multicall3 at contractAddr, or at the known deployment for chainID
// when contractAddr is the zero address.
func (c *ContractMaker) NewMulticall3(chainID uint64, contractAddr common.Address) (multicall3.Multicall3CallerIface, error) {
	if contractAddr == (common.Address{}) {
		var err error
		contractAddr, err = multicall3.ContractAddress(chainID)
		if err != nil {
			return nil, err
		}
	}

	backend, err := c.RPCClient.EthClient(chainID)
	if err != nil {
		return nil, err
	}

	return multicall3.NewMulticall3Caller(contractAddr, backend)
}
