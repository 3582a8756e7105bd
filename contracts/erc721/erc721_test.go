package erc721

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

type ownerOfBackend struct {
	owners map[int64]common.Address
	calls  int
}

func (b *ownerOfBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (b *ownerOfBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.calls++
	method, err := parsedABI.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}
	id := args[0].(*big.Int).Int64()
	owner, ok := b.owners[id]
	if !ok {
		return nil, errors.New("execution reverted: ERC721: invalid token ID")
	}
	return method.Outputs.Pack(owner)
}

func TestPackOwnerOfSelector(t *testing.T) {
	data, err := PackOwnerOf(big.NewInt(5079))
	require.NoError(t, err)
	require.Len(t, data, 36)
	require.Equal(t, "6352211e", hex.EncodeToString(data[:4]))
	require.Equal(t, int64(5079), new(big.Int).SetBytes(data[4:]).Int64())
}

func TestUnpackOwnerOf(t *testing.T) {
	owner := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	packed, err := parsedABI.Methods["ownerOf"].Outputs.Pack(owner)
	require.NoError(t, err)

	got, err := UnpackOwnerOf(packed)
	require.NoError(t, err)
	require.Equal(t, owner, got)

	_, err = UnpackOwnerOf([]byte{0x01})
	require.Error(t, err)
}

func TestERC721CallerOwnerOf(t *testing.T) {
	owner := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	backend := &ownerOfBackend{owners: map[int64]common.Address{7: owner}}

	caller, err := NewERC721Caller(common.HexToAddress("0x670d4dd2e6badfbbd372d0d37e06cd2852754a04"), backend)
	require.NoError(t, err)

	got, err := caller.OwnerOf(nil, big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, owner, got)

	_, err = caller.OwnerOf(nil, big.NewInt(8))
	require.ErrorContains(t, err, "execution reverted")
	require.Equal(t, 2, backend.calls)
}

func TestCollectionAddress(t *testing.T) {
	addr, err := CollectionAddress(1)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0x670d4dd2e6badfbbd372d0d37e06cd2852754a04"), addr)

	_, err = CollectionAddress(5)
	require.Error(t, err)
}
