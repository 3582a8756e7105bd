package gallery

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/status-im/status-gallery/contracts/erc721"
	"github.com/status-im/status-gallery/contracts/multicall3"
	"github.com/status-im/status-gallery/rpc/chain"
	"github.com/status-im/status-gallery/rpc/chain/ethclient"
)

//go:generate mockgen -package=mock_gallery -source=ownership.go -destination=mock/ownership.go

var (
	ErrOwnerOfReverted   = errors.New("ownerOf reverted")
	ErrBatchSizeMismatch = errors.New("batch result size mismatch")
)

// OwnerOfBatcher resolves the owners of a group of token IDs in as few requests as the
// transport allows. It returns one result per requested ID, in request order. A failure
// of an individual probe is reported in that result only; an error is returned when the
// batch as a whole could not be executed.
type OwnerOfBatcher interface {
	OwnerOfBatch(ctx context.Context, tokenIDs []*big.Int) ([]OwnerOfResult, error)
}

// MulticallBatcher bundles ownerOf probes into a single Multicall3 aggregate3 call with
// allowFailure set for every probe.
type MulticallBatcher struct {
	multicall  multicall3.Multicall3CallerIface
	collection common.Address
}

func NewMulticallBatcher(multicall multicall3.Multicall3CallerIface, collection common.Address) *MulticallBatcher {
	return &MulticallBatcher{
		multicall:  multicall,
		collection: collection,
	}
}

func (b *MulticallBatcher) OwnerOfBatch(ctx context.Context, tokenIDs []*big.Int) ([]OwnerOfResult, error) {
	calls := make([]multicall3.Multicall3Call3, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		data, err := erc721.PackOwnerOf(id)
		if err != nil {
			return nil, err
		}
		calls = append(calls, multicall3.Multicall3Call3{
			Target:       b.collection,
			AllowFailure: true,
			CallData:     data,
		})
	}

	results, err := b.multicall.Aggregate3(&bind.CallOpts{Context: ctx}, calls)
	if err != nil {
		return nil, err
	}
	if len(results) != len(tokenIDs) {
		return nil, fmt.Errorf("%w: requested %d, got %d", ErrBatchSizeMismatch, len(tokenIDs), len(results))
	}

	ret := make([]OwnerOfResult, len(tokenIDs))
	for i, res := range results {
		ret[i].TokenID = tokenIDs[i]
		if !res.Success {
			ret[i].Err = ErrOwnerOfReverted
			continue
		}
		ret[i].Owner, ret[i].Err = erc721.UnpackOwnerOf(res.ReturnData)
	}
	return ret, nil
}

// RPCBatcher sends every ownerOf probe as its own eth_call inside one JSON-RPC batch.
type RPCBatcher struct {
	client     ethclient.BatchCallClient
	collection common.Address
}

func NewRPCBatcher(client ethclient.BatchCallClient, collection common.Address) *RPCBatcher {
	return &RPCBatcher{
		client:     client,
		collection: collection,
	}
}

func (b *RPCBatcher) OwnerOfBatch(ctx context.Context, tokenIDs []*big.Int) ([]OwnerOfResult, error) {
	elems := make([]rpc.BatchElem, len(tokenIDs))
	outputs := make([]hexutil.Bytes, len(tokenIDs))
	for i, id := range tokenIDs {
		data, err := erc721.PackOwnerOf(id)
		if err != nil {
			return nil, err
		}
		elems[i] = rpc.BatchElem{
			Method: "eth_call",
			Args: []interface{}{
				map[string]interface{}{
					"to":   b.collection,
					"data": hexutil.Bytes(data),
				},
				"latest",
			},
			Result: &outputs[i],
		}
	}

	if err := b.client.BatchCallContext(ctx, elems); err != nil {
		return nil, err
	}

	ret := make([]OwnerOfResult, len(tokenIDs))
	for i, elem := range elems {
		ret[i].TokenID = tokenIDs[i]
		if elem.Error != nil {
			ret[i].Err = elem.Error
			continue
		}
		ret[i].Owner, ret[i].Err = erc721.UnpackOwnerOf(outputs[i])
	}
	return ret, nil
}

// SequentialBatcher issues one ownerOf call per token ID, for chains without Multicall3.
// Reverts are per-ID failures, any other error fails the whole batch.
type SequentialBatcher struct {
	caller erc721.ERC721CallerIface
}

func NewSequentialBatcher(caller erc721.ERC721CallerIface) *SequentialBatcher {
	return &SequentialBatcher{caller: caller}
}

func (b *SequentialBatcher) OwnerOfBatch(ctx context.Context, tokenIDs []*big.Int) ([]OwnerOfResult, error) {
	ret := make([]OwnerOfResult, len(tokenIDs))
	for i, id := range tokenIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ret[i].TokenID = id
		owner, err := b.caller.OwnerOf(&bind.CallOpts{Context: ctx}, id)
		if err != nil {
			if !chain.IsVMError(err) {
				return nil, err
			}
			ret[i].Err = err
			continue
		}
		ret[i].Owner = owner
	}
	return ret, nil
}
