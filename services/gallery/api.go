package gallery

import (
	"context"
	"errors"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	galleryerrors "github.com/status-im/status-gallery/errors"
)

// API exposes the gallery Service to front ends. Errors are returned as
// *errors.ErrorResponse values.
type API struct {
	s           *Service
	downloadDir string
}

func NewAPI(s *Service, downloadDir string) *API {
	return &API{s: s, downloadDir: downloadDir}
}

// Connect reports a connected wallet; the scan result arrives through events.
func (api *API) Connect(ctx context.Context, address string) (State, error) {
	if !common.IsHexAddress(address) {
		return State{}, galleryerrors.NewErrorResponse(galleryerrors.InvalidAddressErrorCode, errors.New(address))
	}
	api.s.SetAccount(true, common.HexToAddress(address))
	return api.s.State(), nil
}

func (api *API) Disconnect(ctx context.Context) State {
	api.s.SetAccount(false, common.Address{})
	return api.s.State()
}

func (api *API) GetState(ctx context.Context) State {
	return api.s.State()
}

func (api *API) Rescan(ctx context.Context) error {
	if err := api.s.Rescan(); err != nil {
		return galleryerrors.NewErrorResponse(galleryerrors.NotConnectedErrorCode, err)
	}
	return nil
}

func (api *API) Next(ctx context.Context) State {
	return api.s.Next()
}

func (api *API) Prev(ctx context.Context) State {
	return api.s.Prev()
}

func (api *API) SetSearch(ctx context.Context, value string) string {
	return api.s.SetSearch(value)
}

// SelectToken moves to an owned token. IDs outside the collection are rejected as
// invalid, IDs not owned by the account as not found.
func (api *API) SelectToken(ctx context.Context, id string) (State, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || !api.s.scanner.TokenRange().Contains(n) {
		return api.s.State(), galleryerrors.NewErrorResponse(galleryerrors.InvalidTokenIDErrorCode, errors.New(id))
	}
	if !api.s.SelectByID(strconv.FormatUint(n, 10)) {
		return api.s.State(), galleryerrors.NewErrorResponse(galleryerrors.NotFoundErrorCode, errors.New(id))
	}
	return api.s.State(), nil
}

// DownloadAsset downloads the selected token in format and saves it to the download
// directory, returning the saved path.
func (api *API) DownloadAsset(ctx context.Context, format string) (string, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return "", galleryerrors.NewErrorResponse(galleryerrors.DownloadFailedErrorCode, err)
	}

	asset, err := api.s.Download(ctx, f)
	if err != nil {
		if errors.Is(err, ErrNoSelection) {
			return "", galleryerrors.NewErrorResponse(galleryerrors.NotFoundErrorCode, err)
		}
		return "", galleryerrors.NewErrorResponse(galleryerrors.DownloadFailedErrorCode, err)
	}

	path, err := asset.Save(api.downloadDir)
	if err != nil {
		return "", galleryerrors.NewErrorResponse(galleryerrors.DownloadFailedErrorCode, err)
	}
	return path, nil
}

// ScanError reports why the last scan failed, or nil.
func (api *API) ScanError(ctx context.Context) error {
	st := api.s.State()
	if st.Scanning || st.Status == "" || st.Status == StatusNoTokens || st.Status == StatusConnectWallet {
		return nil
	}
	return galleryerrors.NewErrorResponse(galleryerrors.ScanFailedErrorCode, errors.New(st.Status))
}
