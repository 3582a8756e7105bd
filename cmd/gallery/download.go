package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/status-im/status-gallery/metrics"
	"github.com/status-im/status-gallery/params"
	"github.com/status-im/status-gallery/services/gallery"
)

// download fetches an asset straight from the bucket; it needs no RPC endpoint.
func download(cCtx *cli.Context) error {
	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	if err := config.Assets.Validate(params.NewValidator()); err != nil {
		return err
	}
	if err := setupLogger(config); err != nil {
		return err
	}

	id := cCtx.String(TokenFlag)
	n, err := strconv.ParseUint(id, 10, 64)
	tokenRange := gallery.TokenRange{Min: config.Collection.MinTokenID, Max: config.Collection.MaxTokenID}
	if err != nil || !tokenRange.Contains(n) {
		return fmt.Errorf("token ID %q is outside %d..%d", id, tokenRange.Min, tokenRange.Max)
	}

	format, err := gallery.ParseFormat(cCtx.String(FormatFlag))
	if err != nil {
		return err
	}

	source, err := gallery.NewAssetSource(cCtx.Context, config.Assets)
	if err != nil {
		return err
	}
	store := gallery.NewAssetStore(source, config.Assets.BaseURL)

	asset, err := store.Download(cCtx.Context, strconv.FormatUint(n, 10), format)
	metrics.CountDownload(string(format), err)
	if err != nil {
		return err
	}

	path, err := asset.Save(config.Assets.DownloadDir)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s (%d bytes, %s)\n", path, len(asset.Data), asset.ContentType)
	return nil
}
