package gallery_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"

	"github.com/status-im/status-gallery/services/gallery"
)

func tokenIDs(ids ...int64) []*big.Int {
	ret := make([]*big.Int, len(ids))
	for i, id := range ids {
		ret[i] = big.NewInt(id)
	}
	return ret
}

func TestMulticallBatcher_OwnerOfBatch(t *testing.T) {
	fake := newFakeCollection(map[uint64]common.Address{1: aliceAddress, 3: bobAddress}, 2)
	batcher := gallery.NewMulticallBatcher(fake.multicallCaller(), collectionAddress)

	results, err := batcher.OwnerOfBatch(context.Background(), tokenIDs(1, 2, 3, 4))
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.True(t, results[0].Ok())
	require.Equal(t, aliceAddress, results[0].Owner)
	require.Equal(t, int64(1), results[0].TokenID.Int64())

	require.False(t, results[1].Ok())
	require.ErrorIs(t, results[1].Err, gallery.ErrOwnerOfReverted)

	require.Equal(t, bobAddress, results[2].Owner)
	require.Equal(t, carolAddress, results[3].Owner)

	_, aggregateCalls, directCalls, _ := fake.counts()
	require.Equal(t, 1, aggregateCalls)
	require.Equal(t, 0, directCalls)
}

func TestMulticallBatcher_WrongCollection(t *testing.T) {
	fake := newFakeCollection(nil)
	batcher := gallery.NewMulticallBatcher(fake.multicallCaller(), common.HexToAddress("0x1234"))

	results, err := batcher.OwnerOfBatch(context.Background(), tokenIDs(0, 1))
	require.NoError(t, err)
	for _, res := range results {
		require.False(t, res.Ok())
	}
}

func TestMulticallBatcher_TransportError(t *testing.T) {
	fake := newFakeCollection(nil)
	fake.transportErr[7] = errors.New("502 bad gateway")
	batcher := gallery.NewMulticallBatcher(fake.multicallCaller(), collectionAddress)

	_, err := batcher.OwnerOfBatch(context.Background(), tokenIDs(6, 7, 8))
	require.EqualError(t, err, "502 bad gateway")
}

func TestRPCBatcher_OwnerOfBatch(t *testing.T) {
	fake := newFakeCollection(map[uint64]common.Address{10: aliceAddress}, 11)
	batcher := gallery.NewRPCBatcher(fake, collectionAddress)

	results, err := batcher.OwnerOfBatch(context.Background(), tokenIDs(10, 11, 12))
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, aliceAddress, results[0].Owner)
	require.ErrorIs(t, results[1].Err, errReverted)
	require.Equal(t, carolAddress, results[2].Owner)

	_, _, _, batchCalls := fake.counts()
	require.Equal(t, 1, batchCalls)
}

func TestRPCBatcher_WrongCollection(t *testing.T) {
	fake := newFakeCollection(nil)
	batcher := gallery.NewRPCBatcher(fake, common.HexToAddress("0x1234"))

	results, err := batcher.OwnerOfBatch(context.Background(), tokenIDs(0, 1))
	require.NoError(t, err)
	for _, res := range results {
		require.Error(t, res.Err)
	}
}

func TestRPCBatcher_TransportError(t *testing.T) {
	fake := newFakeCollection(nil)
	fake.transportErr[1] = errors.New("connection refused")
	batcher := gallery.NewRPCBatcher(fake, collectionAddress)

	_, err := batcher.OwnerOfBatch(context.Background(), tokenIDs(0, 1))
	require.EqualError(t, err, "connection refused")
}

func TestSequentialBatcher_OwnerOfBatch(t *testing.T) {
	fake := newFakeCollection(map[uint64]common.Address{5: bobAddress}, 6)
	batcher := gallery.NewSequentialBatcher(fake.erc721Caller())

	results, err := batcher.OwnerOfBatch(context.Background(), tokenIDs(5, 6, 7))
	require.NoError(t, err)
	require.Equal(t, bobAddress, results[0].Owner)
	require.False(t, results[1].Ok())
	require.Equal(t, carolAddress, results[2].Owner)

	_, _, directCalls, _ := fake.counts()
	require.Equal(t, 3, directCalls)
}

func TestSequentialBatcher_TransportErrorFailsBatch(t *testing.T) {
	fake := newFakeCollection(nil)
	fake.transportErr[6] = errors.New("i/o timeout")
	batcher := gallery.NewSequentialBatcher(fake.erc721Caller())

	results, err := batcher.OwnerOfBatch(context.Background(), tokenIDs(5, 6, 7))
	require.EqualError(t, err, "i/o timeout")
	require.Nil(t, results)

	_, _, directCalls, _ := fake.counts()
	require.Equal(t, 2, directCalls)
}

func TestSequentialBatcher_StopsOnCancel(t *testing.T) {
	fake := newFakeCollection(nil)
	batcher := gallery.NewSequentialBatcher(fake.erc721Caller())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batcher.OwnerOfBatch(ctx, tokenIDs(1, 2))
	require.ErrorIs(t, err, context.Canceled)

	_, _, directCalls, _ := fake.counts()
	require.Equal(t, 0, directCalls)
}
