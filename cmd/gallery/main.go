package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	ConfigFlag         = "config"
	RPCURLFlag         = "rpc-url"
	FallbackRPCURLFlag = "fallback-rpc-url"
	ChainIDFlag        = "chain-id"
	ContractFlag       = "contract"
	BatchModeFlag      = "batch-mode"
	ChunkSizeFlag      = "chunk-size"
	LogLevelFlag       = "log-level"
	LogFileFlag        = "log-file"
	MetricsPortFlag    = "metrics-port"
	AddressFlag        = "address"
	TokenFlag          = "token"
	FormatFlag         = "format"
	OutputDirFlag      = "out"
)

var logger *zap.SugaredLogger

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    ConfigFlag,
		Aliases: []string{"c"},
		Usage:   "Path to a JSON config file",
		EnvVars: []string{"GALLERY_CONFIG"},
	},
	&cli.StringFlag{
		Name:    RPCURLFlag,
		Usage:   "Ethereum JSON-RPC endpoint",
		EnvVars: []string{"GALLERY_RPC_URL"},
	},
	&cli.StringFlag{
		Name:    FallbackRPCURLFlag,
		Usage:   "JSON-RPC endpoint used when the main one fails",
		EnvVars: []string{"GALLERY_FALLBACK_RPC_URL"},
	},
	&cli.Uint64Flag{
		Name:    ChainIDFlag,
		Usage:   "Chain ID of the collection",
		EnvVars: []string{"GALLERY_CHAIN_ID"},
	},
	&cli.StringFlag{
		Name:    ContractFlag,
		Usage:   "ERC-721 collection address",
		EnvVars: []string{"GALLERY_CONTRACT"},
	},
	&cli.StringFlag{
		Name:    BatchModeFlag,
		Usage:   "How owner probes are batched: multicall, rpc-batch or sequential",
		EnvVars: []string{"GALLERY_BATCH_MODE"},
	},
	&cli.IntFlag{
		Name:    ChunkSizeFlag,
		Usage:   "Token IDs probed per request",
		EnvVars: []string{"GALLERY_CHUNK_SIZE"},
	},
	&cli.StringFlag{
		Name:    LogLevelFlag,
		Usage:   `Log level, one of: "ERROR", "WARN", "INFO", "DEBUG"`,
		EnvVars: []string{"GALLERY_LOG_LEVEL"},
	},
	&cli.StringFlag{
		Name:    LogFileFlag,
		Usage:   "Write logs to this file instead of stderr",
		EnvVars: []string{"GALLERY_LOG_FILE"},
	},
	&cli.IntFlag{
		Name:    MetricsPortFlag,
		Usage:   "Serve prometheus metrics on this port, 0 disables",
		EnvVars: []string{"GALLERY_METRICS_PORT"},
	},
}

var addressFlag = &cli.StringFlag{
	Name:     AddressFlag,
	Aliases:  []string{"a"},
	Usage:    "Wallet address or ENS name",
	EnvVars:  []string{"GALLERY_ADDRESS"},
	Required: true,
}

var tokenFlag = &cli.StringFlag{
	Name:     TokenFlag,
	Aliases:  []string{"t"},
	Usage:    "Token ID",
	Required: true,
}

func main() {
	rawLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	logger = rawLogger.Sugar()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Fatalf("Error loading .env: %v", err)
	}

	app := &cli.App{
		Name:  "gallery",
		Usage: "Browse the tokens a wallet holds in an ERC-721 collection",
		Flags: globalFlags,
		Commands: []*cli.Command{
			{
				Name:    "scan",
				Aliases: []string{"s"},
				Usage:   "List the token IDs owned by an address",
				Flags:   []cli.Flag{addressFlag},
				Action:  scan,
			},
			{
				Name:    "owner",
				Aliases: []string{"o"},
				Usage:   "Show the current owner of a token",
				Flags:   []cli.Flag{tokenFlag},
				Action:  owner,
			},
			{
				Name:    "download",
				Aliases: []string{"d"},
				Usage:   "Download the image of a token",
				Flags: []cli.Flag{
					tokenFlag,
					&cli.StringFlag{
						Name:    FormatFlag,
						Aliases: []string{"f"},
						Usage:   "Image format, svg or png",
						Value:   "svg",
					},
					&cli.StringFlag{
						Name:    OutputDirFlag,
						Aliases: []string{"o"},
						Usage:   "Directory the image is saved to",
					},
				},
				Action: download,
			},
			{
				Name:    "browse",
				Aliases: []string{"b"},
				Usage:   "Scan an address and browse its tokens interactively",
				Flags: []cli.Flag{
					addressFlag,
					&cli.StringFlag{
						Name:    OutputDirFlag,
						Aliases: []string{"o"},
						Usage:   "Directory downloads are saved to",
					},
				},
				Action: browse,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
