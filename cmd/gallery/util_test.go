package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/common"

	"github.com/status-im/status-gallery/params"
)

func runWithConfig(t *testing.T, args ...string) *params.Config {
	var config *params.Config
	app := &cli.App{
		Flags: globalFlags,
		Commands: []*cli.Command{
			{
				Name:  "test",
				Flags: []cli.Flag{&cli.StringFlag{Name: OutputDirFlag}},
				Action: func(cCtx *cli.Context) error {
					var err error
					config, err = loadConfig(cCtx)
					return err
				},
			},
		},
	}
	require.NoError(t, app.Run(append([]string{"gallery"}, args...)))
	return config
}

func TestLoadConfig_Defaults(t *testing.T) {
	config := runWithConfig(t, "test")
	require.Equal(t, params.DefaultConfig(), config)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"UpstreamConfig": {"URL": "https://file.example.org", "RequestsPerSecond": 5},
		"Collection": {"ChunkSize": 50}
	}`), 0600))

	config := runWithConfig(t,
		"--config", path,
		"--rpc-url", "https://flag.example.org",
		"--batch-mode", "rpc-batch",
		"--log-file", "gallery.log",
		"test", "--out", "downloads",
	)

	require.Equal(t, "https://flag.example.org", config.UpstreamConfig.URL)
	require.Equal(t, 5, config.UpstreamConfig.RequestsPerSecond)
	require.Equal(t, 50, config.Collection.ChunkSize)
	require.Equal(t, params.BatchModeRPCBatch, config.Collection.BatchMode)
	require.Equal(t, "gallery.log", config.LogSettings.File)
	require.False(t, config.LogSettings.Console)
	require.Equal(t, "downloads", config.Assets.DownloadDir)
	require.NoError(t, config.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	app := &cli.App{
		Flags: globalFlags,
		Action: func(cCtx *cli.Context) error {
			_, err := loadConfig(cCtx)
			return err
		},
	}
	require.Error(t, app.Run([]string{"gallery", "--config", filepath.Join(t.TempDir(), "missing.json")}))
}

func TestResolveAddress_Hex(t *testing.T) {
	address, err := resolveAddress(context.Background(), params.DefaultConfig(), "0x670d4dd2e6badfbbd372d0d37e06cd2852754a04")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(params.DefaultContractAddress), address)

	_, err = resolveAddress(context.Background(), params.DefaultConfig(), "alice")
	require.Error(t, err)
}
