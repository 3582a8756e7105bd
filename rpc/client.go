package rpc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/status-im/status-gallery/logutils"
	"github.com/status-im/status-gallery/params"
	"github.com/status-im/status-gallery/rpc/chain"
	"github.com/status-im/status-gallery/rpc/chain/ethclient"
)

const (
	mainProviderName     = "main"
	fallbackProviderName = "fallback"
)

var ErrChainNotSupported = errors.New("chain not supported")

type ClientInterface interface {
	EthClient(chainID uint64) (chain.ClientInterface, error)
}

// Client holds one chain client per configured network.
type Client struct {
	sync.RWMutex

	upstreams      map[uint64]chain.ClientInterface
	walletNotifier func(chainID uint64, message string)
}

// NewClient dials the upstream RPC nodes of config.
func NewClient(ctx context.Context, config *params.Config) (*Client, error) {
	upstream := config.UpstreamConfig
	if upstream.URL == "" {
		return nil, fmt.Errorf("no RPC URL configured for chain %d", config.ChainID)
	}

	main, err := ethclient.Dial(ctx, upstream.URL, mainProviderName)
	if err != nil {
		return nil, fmt.Errorf("dial upstream server: %s", err)
	}
	providers := []ethclient.EthClientInterface{main}

	if upstream.FallbackURL != "" {
		fallback, err := ethclient.Dial(ctx, upstream.FallbackURL, fallbackProviderName)
		if err != nil {
			main.Close()
			return nil, fmt.Errorf("dial fallback server: %s", err)
		}
		providers = append(providers, fallback)
	}

	limiter := chain.NewRequestLimiter(upstream.RequestsPerSecond)
	client := NewClientWithUpstreams(map[uint64]chain.ClientInterface{
		config.ChainID: chain.NewClient(providers, config.ChainID, limiter),
	})

	logutils.ZapLogger().Info("rpc client created",
		zap.Uint64("chainID", config.ChainID),
		zap.Int("providers", len(providers)),
		zap.Int("requestsPerSecond", upstream.RequestsPerSecond))

	return client, nil
}

func NewClientWithUpstreams(upstreams map[uint64]chain.ClientInterface) *Client {
	return &Client{upstreams: upstreams}
}

// EthClient returns the client of chainID.
func (c *Client) EthClient(chainID uint64) (chain.ClientInterface, error) {
	c.RLock()
	defer c.RUnlock()
	client, ok := c.upstreams[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrChainNotSupported, chainID)
	}
	return client, nil
}

// SetWalletNotifier registers a callback receiving "up"/"down" connectivity changes.
func (c *Client) SetWalletNotifier(notifier func(chainID uint64, message string)) {
	c.Lock()
	defer c.Unlock()
	c.walletNotifier = notifier
	for _, upstream := range c.upstreams {
		if withFallback, ok := upstream.(*chain.ClientWithFallback); ok {
			withFallback.WalletNotifier = notifier
		}
	}
}

func (c *Client) Close() {
	c.RLock()
	defer c.RUnlock()
	for _, upstream := range c.upstreams {
		upstream.Close()
	}
}
