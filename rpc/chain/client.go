package chain

//go:generate mockgen -package=mock_client -source=client.go -destination=mock/client/client.go

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/status-im/status-gallery/circuitbreaker"
	"github.com/status-im/status-gallery/logutils"
	"github.com/status-im/status-gallery/metrics"
	"github.com/status-im/status-gallery/rpc/chain/ethclient"
)

// ClientInterface is the chain access used by contract bindings and the ownership scanner.
type ClientInterface interface {
	bind.ContractCaller
	ethclient.BatchCallClient
	BlockNumber(ctx context.Context) (uint64, error)
	NetworkID() uint64
	IsConnected() bool
	Close()
}

type ClientWithFallback struct {
	ChainID        uint64
	ethClients     []ethclient.EthClientInterface
	circuitbreaker *circuitbreaker.CircuitBreaker
	limiter        RequestLimiter

	WalletNotifier func(chainId uint64, message string)

	isConnected             bool
	consecutiveFailureCount int
	isConnectedLock         sync.RWMutex
	LastCheckedAt           int64
}

var vmErrors = []error{
	vm.ErrOutOfGas,
	vm.ErrCodeStoreOutOfGas,
	vm.ErrDepth,
	vm.ErrInsufficientBalance,
	vm.ErrContractAddressCollision,
	vm.ErrExecutionReverted,
	vm.ErrMaxCodeSizeExceeded,
	vm.ErrInvalidJump,
	vm.ErrWriteProtection,
	vm.ErrReturnDataOutOfBounds,
	vm.ErrGasUintOverflow,
	vm.ErrInvalidCode,
	vm.ErrNonceUintOverflow,
}

// vmErrorResult carries a VM error through the circuit breaker without tripping the circuit.
type vmErrorResult struct {
	err error
}

// NewClient wraps ethClients, tried in order, into a single client for chainID.
// limiter may be nil.
func NewClient(ethClients []ethclient.EthClientInterface, chainID uint64, limiter RequestLimiter) *ClientWithFallback {
	cbConfig := circuitbreaker.Config{
		Timeout:               20000,
		MaxConcurrentRequests: 100,
		SleepWindow:           300000,
		ErrorPercentThreshold: 25,
	}

	return &ClientWithFallback{
		ChainID:        chainID,
		ethClients:     ethClients,
		circuitbreaker: circuitbreaker.NewCircuitBreaker(cbConfig),
		limiter:        limiter,
		isConnected:    true,
		LastCheckedAt:  time.Now().Unix(),
	}
}

func (c *ClientWithFallback) Close() {
	for _, client := range c.ethClients {
		client.Close()
	}
}

func (c *ClientWithFallback) NetworkID() uint64 {
	return c.ChainID
}

func (c *ClientWithFallback) IsConnected() bool {
	c.isConnectedLock.RLock()
	defer c.isConnectedLock.RUnlock()
	return c.isConnected
}

const executionRevertedPrefix = "execution reverted"

func isVMError(err error) bool {
	if strings.Contains(err.Error(), executionRevertedPrefix) {
		return true
	}
	for _, vmError := range vmErrors {
		if errors.Is(err, vmError) {
			return true
		}
	}
	return false
}

// IsVMError reports whether err was produced by contract execution rather than transport.
func IsVMError(err error) bool {
	return err != nil && isVMError(err)
}

func (c *ClientWithFallback) setIsConnected(value bool) {
	c.isConnectedLock.Lock()
	defer c.isConnectedLock.Unlock()
	c.LastCheckedAt = time.Now().Unix()
	if !value {
		c.consecutiveFailureCount += 1
		if c.consecutiveFailureCount > 1 && c.isConnected {
			if c.WalletNotifier != nil {
				c.WalletNotifier(c.ChainID, "down")
			}
			c.isConnected = false
		}
	} else {
		c.consecutiveFailureCount = 0

		if !c.isConnected {
			c.isConnected = true
			if c.WalletNotifier != nil {
				c.WalletNotifier(c.ChainID, "up")
			}
		}
	}
}

func (c *ClientWithFallback) circuitName(client ethclient.EthClientInterface) string {
	return fmt.Sprintf("ethClient_%d_%s", c.ChainID, client.GetName())
}

func (c *ClientWithFallback) makeCall(ctx context.Context, method string, call func(client ethclient.EthClientInterface) ([]any, error)) ([]any, error) {
	if len(c.ethClients) == 0 {
		return nil, fmt.Errorf("no providers configured for chain %d", c.ChainID)
	}

	cmd := circuitbreaker.NewCommand(ctx, nil)
	for _, client := range c.ethClients {
		client := client
		cmd.Add(circuitbreaker.NewFunctor(func() ([]any, error) {
			if c.limiter != nil {
				if err := c.limiter.Wait(ctx, client.GetName()); err != nil {
					cmd.Cancel()
					return nil, err
				}
			}
			metrics.CountRPCCall(c.ChainID, client.GetName(), method)
			res, err := call(client)
			if err != nil {
				if isVMError(err) {
					return []any{vmErrorResult{err: err}}, nil
				}
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					cmd.Cancel()
				}
				return nil, err
			}
			return res, nil
		}, c.circuitName(client)))
	}

	result := c.circuitbreaker.Execute(cmd)
	if result.Cancelled() && result.Error() == nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.New("rpc call cancelled")
	}
	if result.Error() != nil {
		if !result.Cancelled() {
			c.setIsConnected(false)
		}
		logutils.ZapLogger().Debug("rpc call failed",
			zap.Uint64("chainID", c.ChainID),
			zap.String("method", method),
			zap.Bool("cancelled", result.Cancelled()),
			zap.Error(result.Error()))
		return nil, result.Error()
	}
	c.setIsConnected(true)

	res := result.Result()
	if len(res) == 1 {
		if vmErr, ok := res[0].(vmErrorResult); ok {
			return nil, vmErr.err
		}
	}
	return res, nil
}

func (c *ClientWithFallback) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	res, err := c.makeCall(ctx, "eth_call", func(client ethclient.EthClientInterface) ([]any, error) {
		out, err := client.CallContract(ctx, msg, blockNumber)
		return []any{out}, err
	})
	if err != nil {
		return nil, err
	}
	return res[0].([]byte), nil
}

func (c *ClientWithFallback) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	res, err := c.makeCall(ctx, "eth_getCode", func(client ethclient.EthClientInterface) ([]any, error) {
		code, err := client.CodeAt(ctx, account, blockNumber)
		return []any{code}, err
	})
	if err != nil {
		return nil, err
	}
	return res[0].([]byte), nil
}

func (c *ClientWithFallback) BlockNumber(ctx context.Context) (uint64, error) {
	res, err := c.makeCall(ctx, "eth_blockNumber", func(client ethclient.EthClientInterface) ([]any, error) {
		number, err := client.BlockNumber(ctx)
		return []any{number}, err
	})
	if err != nil {
		return 0, err
	}
	return res[0].(uint64), nil
}

// BatchCallContext sends b as one JSON-RPC batch. Per-element failures are reported in
// each element's Error field and never trigger a fallback. Each provider attempt
// decodes into its own copies of the elements; only the successful attempt is
// copied into b.
func (c *ClientWithFallback) BatchCallContext(ctx context.Context, b []rpc.BatchElem) error {
	res, err := c.makeCall(ctx, "batch", func(client ethclient.EthClientInterface) ([]any, error) {
		elems := copyBatchElems(b)
		if err := client.BatchCallContext(ctx, elems); err != nil {
			return nil, err
		}
		return []any{elems}, nil
	})
	if err != nil {
		return err
	}

	for i, elem := range res[0].([]rpc.BatchElem) {
		b[i].Error = elem.Error
		if elem.Error == nil && elem.Result != nil && elem.Result != b[i].Result {
			reflect.ValueOf(b[i].Result).Elem().Set(reflect.ValueOf(elem.Result).Elem())
		}
	}
	return nil
}

// copyBatchElems returns elements with the same requests as b and fresh result
// targets of the same types.
func copyBatchElems(b []rpc.BatchElem) []rpc.BatchElem {
	elems := make([]rpc.BatchElem, len(b))
	for i, elem := range b {
		elems[i] = rpc.BatchElem{Method: elem.Method, Args: elem.Args, Result: elem.Result}
		if elem.Result != nil && reflect.TypeOf(elem.Result).Kind() == reflect.Ptr {
			elems[i].Result = reflect.New(reflect.TypeOf(elem.Result).Elem()).Interface()
		}
	}
	return elems
}
