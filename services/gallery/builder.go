package gallery

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/event"

	"github.com/status-im/status-gallery/contracts"
	"github.com/status-im/status-gallery/contracts/erc721"
	"github.com/status-im/status-gallery/params"
	"github.com/status-im/status-gallery/rpc"
	"github.com/status-im/status-gallery/rpc/chain/ethclient"
)

// NewServiceFromConfig builds a Service for the chain and collection of config.
func NewServiceFromConfig(ctx context.Context, config *params.Config, rpcClient rpc.ClientInterface, eventFeed *event.Feed) (*Service, error) {
	chainClient, err := rpcClient.EthClient(config.ChainID)
	if err != nil {
		return nil, err
	}

	maker, err := contracts.NewContractMaker(rpcClient)
	if err != nil {
		return nil, err
	}

	ownerCaller, err := maker.NewERC721Caller(config.ChainID, config.ContractAddress())
	if err != nil {
		return nil, err
	}

	batcher, err := NewOwnerOfBatcher(config, maker, chainClient, ownerCaller)
	if err != nil {
		return nil, err
	}

	source, err := NewAssetSource(ctx, config.Assets)
	if err != nil {
		return nil, err
	}

	tokenRange := TokenRange{Min: config.Collection.MinTokenID, Max: config.Collection.MaxTokenID}
	scanner := NewScanner(batcher, tokenRange, config.Collection.ChunkSize)

	return NewService(
		scanner,
		ownerCaller,
		chainClient,
		config.ContractAddress(),
		NewAssetStore(source, config.Assets.BaseURL),
		eventFeed,
		time.Duration(config.Collection.CodeCacheTTLSeconds)*time.Second,
	), nil
}

// NewOwnerOfBatcher returns the batcher selected by the configured batch mode.
func NewOwnerOfBatcher(config *params.Config, maker contracts.ContractMakerIface, client ethclient.BatchCallClient, ownerCaller erc721.ERC721CallerIface) (OwnerOfBatcher, error) {
	switch config.Collection.BatchMode {
	case params.BatchModeMulticall, "":
		multicall, err := maker.NewMulticall3(config.ChainID, config.MulticallAddress())
		if err != nil {
			return nil, err
		}
		return NewMulticallBatcher(multicall, config.ContractAddress()), nil
	case params.BatchModeRPCBatch:
		return NewRPCBatcher(client, config.ContractAddress()), nil
	case params.BatchModeSequential:
		return NewSequentialBatcher(ownerCaller), nil
	}
	return nil, fmt.Errorf("unknown batch mode %q", config.Collection.BatchMode)
}

// NewAssetSource returns the S3 source when enabled and the public HTTP bucket otherwise.
func NewAssetSource(ctx context.Context, config params.AssetsConfig) (AssetSource, error) {
	if config.S3.Enabled {
		return NewS3AssetSourceFromConfig(ctx, config.S3)
	}
	return NewHTTPAssetSource(config.BaseURL, nil), nil
}
