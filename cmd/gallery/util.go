package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	ens "github.com/wealdtech/go-ens/v3"
	"go.uber.org/zap"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	gethmetrics "github.com/ethereum/go-ethereum/metrics"

	"github.com/status-im/status-gallery/logutils"
	"github.com/status-im/status-gallery/metrics"
	"github.com/status-im/status-gallery/params"
	"github.com/status-im/status-gallery/rpc"
)

// loadConfig builds the configuration from the optional config file and the command
// line overrides.
func loadConfig(cCtx *cli.Context) (*params.Config, error) {
	config := params.DefaultConfig()
	if path := cCtx.String(ConfigFlag); path != "" {
		var err error
		config, err = params.LoadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
	}

	if cCtx.IsSet(RPCURLFlag) {
		config.UpstreamConfig.URL = cCtx.String(RPCURLFlag)
	}
	if cCtx.IsSet(FallbackRPCURLFlag) {
		config.UpstreamConfig.FallbackURL = cCtx.String(FallbackRPCURLFlag)
	}
	if cCtx.IsSet(ChainIDFlag) {
		config.ChainID = cCtx.Uint64(ChainIDFlag)
	}
	if cCtx.IsSet(ContractFlag) {
		config.Collection.ContractAddress = cCtx.String(ContractFlag)
	}
	if cCtx.IsSet(BatchModeFlag) {
		config.Collection.BatchMode = params.BatchMode(cCtx.String(BatchModeFlag))
	}
	if cCtx.IsSet(ChunkSizeFlag) {
		config.Collection.ChunkSize = cCtx.Int(ChunkSizeFlag)
	}
	if cCtx.IsSet(LogLevelFlag) {
		config.LogSettings.Level = cCtx.String(LogLevelFlag)
	}
	if cCtx.IsSet(LogFileFlag) {
		config.LogSettings.File = cCtx.String(LogFileFlag)
		config.LogSettings.Console = false
	}
	if cCtx.IsSet(MetricsPortFlag) {
		config.MetricsPort = cCtx.Int(MetricsPortFlag)
	}
	if cCtx.IsSet(OutputDirFlag) {
		config.Assets.DownloadDir = cCtx.String(OutputDirFlag)
	}

	return config, nil
}

func setupLogger(config *params.Config) error {
	if err := logutils.OverrideRootLogWithConfig(config.LogSettings); err != nil {
		return err
	}
	logger = logutils.ZapLogger().Sugar()
	return nil
}

// startMetrics serves metrics when a port is configured and returns the stop function.
func startMetrics(config *params.Config) func() {
	if config.MetricsPort == 0 {
		return func() {}
	}
	server := metrics.NewMetricsServer(config.MetricsPort, gethmetrics.DefaultRegistry)
	go server.Listen()
	logger.Infow("metrics server started", "port", config.MetricsPort)
	return func() {
		if err := server.Stop(); err != nil {
			logger.Warnw("stopping metrics server", zap.Error(err))
		}
	}
}

// prepare loads and validates the full configuration, installs the logger and dials
// the upstream nodes.
func prepare(cCtx *cli.Context) (*params.Config, *rpc.Client, error) {
	config, err := loadConfig(cCtx)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}
	if err := setupLogger(config); err != nil {
		return nil, nil, err
	}
	logger.Debugf("Running %v command, with:\n%v", cCtx.Command.Name, flagsUsed(cCtx))

	rpcClient, err := rpc.NewClient(cCtx.Context, config)
	if err != nil {
		return nil, nil, err
	}
	rpcClient.SetWalletNotifier(func(chainID uint64, message string) {
		logger.Warnw("upstream connectivity changed", "chainID", chainID, "status", message)
	})
	return config, rpcClient, nil
}

// resolveAddress accepts a hex address or an ENS name.
func resolveAddress(ctx context.Context, config *params.Config, input string) (common.Address, error) {
	if common.IsHexAddress(input) {
		return common.HexToAddress(input), nil
	}
	if !strings.Contains(input, ".") {
		return common.Address{}, fmt.Errorf("invalid address %q", input)
	}

	client, err := ethclient.DialContext(ctx, config.UpstreamConfig.URL)
	if err != nil {
		return common.Address{}, err
	}
	defer client.Close()

	address, err := ens.Resolve(client, input)
	if err != nil {
		return common.Address{}, fmt.Errorf("resolve %s: %w", input, err)
	}
	logger.Infow("resolved ENS name", "name", input, "address", address.Hex())
	return address, nil
}

func flagsUsed(cCtx *cli.Context) string {
	var sb strings.Builder
	for _, flag := range cCtx.FlagNames() {
		if cCtx.IsSet(flag) {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", flag, cCtx.Value(flag)))
		}
	}
	return sb.String()
}
