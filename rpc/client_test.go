package rpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/status-im/status-gallery/params"
	"github.com/status-im/status-gallery/rpc/chain"
	mock_client "github.com/status-im/status-gallery/rpc/chain/mock/client"
)

func TestClient_EthClient(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	upstream := mock_client.NewMockClientInterface(mockCtrl)

	client := NewClientWithUpstreams(map[uint64]chain.ClientInterface{1: upstream})

	got, err := client.EthClient(1)
	require.NoError(t, err)
	require.Equal(t, upstream, got)

	_, err = client.EthClient(10)
	require.True(t, errors.Is(err, ErrChainNotSupported))

	upstream.EXPECT().Close()
	client.Close()
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient(context.Background(), params.DefaultConfig())
	require.Error(t, err)
}

func TestNewClientDialsLazily(t *testing.T) {
	config := params.DefaultConfig()
	config.UpstreamConfig.URL = "http://127.0.0.1:1"
	config.UpstreamConfig.FallbackURL = "http://127.0.0.1:2"

	client, err := NewClient(context.Background(), config)
	require.NoError(t, err)
	defer client.Close()

	ethClient, err := client.EthClient(config.ChainID)
	require.NoError(t, err)
	require.Equal(t, config.ChainID, ethClient.NetworkID())

	var notified bool
	client.SetWalletNotifier(func(uint64, string) { notified = true })
	require.NotNil(t, ethClient.(*chain.ClientWithFallback).WalletNotifier)
	require.False(t, notified)
}
