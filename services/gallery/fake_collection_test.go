package gallery_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/status-im/status-gallery/contracts/erc721"
	"github.com/status-im/status-gallery/contracts/multicall3"
)

var (
	collectionAddress = common.HexToAddress("0x670d4dd2e6badfbbd372d0d37e06cd2852754a04")
	aliceAddress      = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bobAddress        = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	carolAddress      = common.HexToAddress("0x00000000000000000000000000000000000ca201")

	errReverted = errors.New("execution reverted: ERC721: invalid token ID")
)

// fakeCollection is an in-process chain backend serving an ERC-721 collection and
// Multicall3 at the canonical address. Tokens not listed in owners belong to carol,
// tokens listed in reverting were never minted.
type fakeCollection struct {
	mu sync.Mutex

	owners    map[uint64]common.Address
	reverting map[uint64]bool
	noCode    bool

	// transportErr fails the aggregate3 call or RPC batch containing any of its IDs.
	transportErr map[uint64]error
	// directOwnerOfErr fails plain ownerOf calls, leaving aggregated ones untouched.
	directOwnerOfErr error

	codeAtCalls    int
	aggregateCalls int
	directCalls    int
	batchCalls     int
}

func newFakeCollection(owners map[uint64]common.Address, reverting ...uint64) *fakeCollection {
	f := &fakeCollection{
		owners:       owners,
		reverting:    make(map[uint64]bool),
		transportErr: make(map[uint64]error),
	}
	for _, id := range reverting {
		f.reverting[id] = true
	}
	return f
}

func (f *fakeCollection) ownerOfID(id uint64) ([]byte, error) {
	if f.reverting[id] {
		return nil, errReverted
	}
	owner, ok := f.owners[id]
	if !ok {
		owner = carolAddress
	}
	return erc721.ParsedABI().Methods["ownerOf"].Outputs.Pack(owner)
}

func (f *fakeCollection) decodeOwnerOf(data []byte) (uint64, error) {
	method := erc721.ParsedABI().Methods["ownerOf"]
	if len(data) < 4 || !bytes.Equal(data[:4], method.ID) {
		return 0, errors.New("execution reverted")
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return 0, err
	}
	return args[0].(*big.Int).Uint64(), nil
}

func (f *fakeCollection) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codeAtCalls++
	if f.noCode {
		return nil, nil
	}
	return []byte{0x60, 0x80, 0x60, 0x40}, nil
}

func (f *fakeCollection) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case call.To != nil && *call.To == multicall3.DefaultAddress:
		return f.aggregate3(call.Data)
	case call.To != nil && *call.To == collectionAddress:
		f.directCalls++
		if f.directOwnerOfErr != nil {
			return nil, f.directOwnerOfErr
		}
		id, err := f.decodeOwnerOf(call.Data)
		if err != nil {
			return nil, err
		}
		if err := f.transportErr[id]; err != nil {
			return nil, err
		}
		return f.ownerOfID(id)
	}
	return nil, nil
}

func (f *fakeCollection) aggregate3(data []byte) ([]byte, error) {
	f.aggregateCalls++
	method := multicall3.ParsedABI().Methods["aggregate3"]
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, err
	}
	calls := *abi.ConvertType(args[0], new([]multicall3.Multicall3Call3)).(*[]multicall3.Multicall3Call3)

	results := make([]multicall3.Multicall3Result, 0, len(calls))
	for _, c := range calls {
		if c.Target != collectionAddress {
			results = append(results, multicall3.Multicall3Result{})
			continue
		}
		id, err := f.decodeOwnerOf(c.CallData)
		if err != nil {
			results = append(results, multicall3.Multicall3Result{})
			continue
		}
		if err := f.transportErr[id]; err != nil {
			return nil, err
		}
		out, err := f.ownerOfID(id)
		results = append(results, multicall3.Multicall3Result{Success: err == nil, ReturnData: out})
	}
	return method.Outputs.Pack(results)
}

func (f *fakeCollection) BatchCallContext(ctx context.Context, b []rpc.BatchElem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++

	for i := range b {
		if b[i].Method != "eth_call" {
			b[i].Error = fmt.Errorf("method %s not supported", b[i].Method)
			continue
		}
		arg := b[i].Args[0].(map[string]interface{})
		if arg["to"].(common.Address) != collectionAddress {
			b[i].Error = errors.New("execution reverted")
			continue
		}
		id, err := f.decodeOwnerOf(arg["data"].(hexutil.Bytes))
		if err != nil {
			b[i].Error = err
			continue
		}
		if err := f.transportErr[id]; err != nil {
			return err
		}
		out, err := f.ownerOfID(id)
		if err != nil {
			b[i].Error = err
			continue
		}
		*b[i].Result.(*hexutil.Bytes) = out
	}
	return nil
}

func (f *fakeCollection) counts() (codeAt, aggregate, direct, batch int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.codeAtCalls, f.aggregateCalls, f.directCalls, f.batchCalls
}

func (f *fakeCollection) setOwner(id uint64, owner common.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.owners == nil {
		f.owners = make(map[uint64]common.Address)
	}
	f.owners[id] = owner
}

func (f *fakeCollection) setNoCode(noCode bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noCode = noCode
}

func (f *fakeCollection) setDirectOwnerOfErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.directOwnerOfErr = err
}

func (f *fakeCollection) multicallCaller() *multicall3.Multicall3Caller {
	caller, _ := multicall3.NewMulticall3Caller(multicall3.DefaultAddress, f)
	return caller
}

func (f *fakeCollection) erc721Caller() *erc721.ERC721Caller {
	caller, _ := erc721.NewERC721Caller(collectionAddress, f)
	return caller
}
