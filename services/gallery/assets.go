package gallery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/status-im/status-gallery/params"
)

//go:generate mockgen -package=mock_gallery -source=assets.go -destination=mock/assets.go

// Format is the image encoding of an asset.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

var ErrUnsupportedFormat = errors.New("unsupported asset format")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// AssetKey is the path of an asset relative to the bucket root.
func AssetKey(tokenID string, format Format) string {
	return fmt.Sprintf("%s/%s.%s", format, tokenID, format)
}

// HTTPStatusError is returned for non-2xx asset responses.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// DownloadError wraps any failure to download an asset.
type DownloadError struct {
	Format Format
	Err    error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("Failed to download %s: %s", strings.ToUpper(string(e.Format)), e.Err.Error())
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Asset is a downloaded token image ready to be saved.
type Asset struct {
	TokenID     string
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
}

// Save writes the asset to dir under its filename and returns the full path.
func (a *Asset) Save(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "create download dir")
	}
	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return "", errors.Wrapf(err, "save %s", a.Filename)
	}
	return path, nil
}

// AssetSource fetches raw asset bytes by key.
type AssetSource interface {
	Fetch(ctx context.Context, key string) (data []byte, contentType string, err error)
}

// HTTPAssetSource reads assets from a static bucket over plain HTTP(S), bypassing caches.
type HTTPAssetSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPAssetSource uses http.DefaultClient when client is nil. Requests are
// bounded only by the caller's context.
func NewHTTPAssetSource(baseURL string, client *http.Client) *HTTPAssetSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPAssetSource{
		baseURL: withTrailingSlash(baseURL),
		client:  client,
	}
}

func (s *HTTPAssetSource) Fetch(ctx context.Context, key string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+key, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// S3API is the subset of the S3 client used to read assets.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3AssetSource reads assets with the S3 API, using the same keys as the HTTP bucket.
type S3AssetSource struct {
	client S3API
	bucket string
	prefix string
}

func NewS3AssetSource(client S3API, bucket string, prefix string) *S3AssetSource {
	return &S3AssetSource{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// NewS3AssetSourceFromConfig builds an S3 client from the default AWS credential chain.
func NewS3AssetSourceFromConfig(ctx context.Context, config params.S3Config) (*S3AssetSource, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.Region),
	}
	if config.Anonymous {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	return NewS3AssetSource(s3.NewFromConfig(cfg), config.Bucket, config.Prefix), nil
}

func (s *S3AssetSource) Fetch(ctx context.Context, key string) ([]byte, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket:               aws.String(s.bucket),
		Key:                  aws.String(s.prefix + key),
		ResponseCacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return nil, "", err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", err
	}
	return data, aws.ToString(out.ContentType), nil
}

// AssetStore resolves token IDs to image URLs and downloadable assets.
type AssetStore struct {
	source  AssetSource
	baseURL string
}

func NewAssetStore(source AssetSource, baseURL string) *AssetStore {
	return &AssetStore{
		source:  source,
		baseURL: withTrailingSlash(baseURL),
	}
}

// ImageURL is the URL of the SVG rendering of tokenID, or "" for no token.
func (s *AssetStore) ImageURL(tokenID string) string {
	if tokenID == "" {
		return ""
	}
	return s.baseURL + AssetKey(tokenID, FormatSVG)
}

// Download fetches tokenID in format. Failures are returned as *DownloadError.
func (s *AssetStore) Download(ctx context.Context, tokenID string, format Format) (*Asset, error) {
	if format != FormatSVG && format != FormatPNG {
		return nil, &DownloadError{Format: format, Err: ErrUnsupportedFormat}
	}

	data, contentType, err := s.source.Fetch(ctx, AssetKey(tokenID, format))
	if err != nil {
		return nil, &DownloadError{Format: format, Err: err}
	}

	if contentType == "" {
		contentType = defaultContentType(format)
	}

	return &Asset{
		TokenID:     tokenID,
		Format:      format,
		Filename:    fmt.Sprintf("%s.%s", tokenID, format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func defaultContentType(format Format) string {
	if format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func withTrailingSlash(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}
