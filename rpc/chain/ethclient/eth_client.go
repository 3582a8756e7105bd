package ethclient

//go:generate mockgen -package=mock_ethclient -source=eth_client.go -destination=mock/client/ethclient/eth_client.go

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

type BatchCallClient interface {
	BatchCallContext(ctx context.Context, b []rpc.BatchElem) error
}

// EthClientInterface is the read-only slice of an Ethereum node used by the gallery.
type EthClientInterface interface {
	bind.ContractCaller
	BatchCallClient
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	GetName() string
	Close()
}

// EthClient implements EthClientInterface
type EthClient struct {
	*ethclient.Client
	name      string
	rpcClient *rpc.Client
}

func NewEthClient(rpcClient *rpc.Client, name string) *EthClient {
	return &EthClient{
		Client:    ethclient.NewClient(rpcClient),
		name:      name,
		rpcClient: rpcClient,
	}
}

// Dial connects to rawurl and names the resulting client.
func Dial(ctx context.Context, rawurl string, name string) (*EthClient, error) {
	rpcClient, err := rpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return NewEthClient(rpcClient, name), nil
}

func (ec *EthClient) GetName() string {
	return ec.name
}

func (ec *EthClient) BatchCallContext(ctx context.Context, b []rpc.BatchElem) error {
	return ec.rpcClient.BatchCallContext(ctx, b)
}
