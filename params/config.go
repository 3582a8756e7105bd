package params

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/ethereum/go-ethereum/common"

	"github.com/status-im/status-gallery/logutils"
)

// BatchMode selects how owner-of probes are grouped into requests.
type BatchMode string

const (
	BatchModeMulticall  BatchMode = "multicall"
	BatchModeRPCBatch   BatchMode = "rpc-batch"
	BatchModeSequential BatchMode = "sequential"
)

const (
	MainnetChainID = 1

	DefaultContractAddress  = "0x670d4dd2e6badfbbd372d0d37e06cd2852754a04"
	DefaultMulticallAddress = "0xcA11bde05977b3631167028862bE2a173976CA11"
	DefaultAssetsBaseURL    = "https://ninachanel-bucket.s3.us-east-1.amazonaws.com/"
	DefaultMinTokenID       = 0
	DefaultMaxTokenID       = 5079
	DefaultChunkSize        = 200
	DefaultRequestsPerSec   = 20
	DefaultCodeCacheTTLSecs = 300
)

// ----------
// UpstreamRPCConfig
// ----------

// UpstreamRPCConfig stores configuration for the upstream RPC nodes.
type UpstreamRPCConfig struct {
	// URL of the main RPC node.
	URL string `json:"URL" validate:"required"`

	// FallbackURL is tried when the main node fails. Optional.
	FallbackURL string `json:"FallbackURL"`

	// RequestsPerSecond limits requests per node. 0 means unlimited.
	RequestsPerSecond int `json:"RequestsPerSecond" validate:"gte=0"`
}

// ----------
// CollectionConfig
// ----------

// CollectionConfig describes the ERC-721 collection and how it is scanned.
type CollectionConfig struct {
	ContractAddress  string    `json:"ContractAddress" validate:"required,ethaddr"`
	MulticallAddress string    `json:"MulticallAddress" validate:"omitempty,ethaddr"`
	MinTokenID       uint64    `json:"MinTokenID"`
	MaxTokenID       uint64    `json:"MaxTokenID" validate:"gtefield=MinTokenID"`
	ChunkSize        int       `json:"ChunkSize" validate:"gt=0"`
	BatchMode        BatchMode `json:"BatchMode" validate:"oneof=multicall rpc-batch sequential"`

	// CodeCacheTTLSeconds is how long a successful contract code check is remembered.
	CodeCacheTTLSeconds int `json:"CodeCacheTTLSeconds" validate:"gte=0"`
}

// ----------
// AssetsConfig
// ----------

// S3Config switches asset downloads from plain HTTP to the S3 API.
type S3Config struct {
	Enabled bool   `json:"Enabled"`
	Bucket  string `json:"Bucket" validate:"required"`
	Region  string `json:"Region" validate:"required"`
	Prefix  string `json:"Prefix"`

	// Anonymous skips request signing, for public buckets.
	Anonymous bool `json:"Anonymous"`
}

// AssetsConfig holds where token images are fetched from and saved to.
type AssetsConfig struct {
	BaseURL     string   `json:"BaseURL" validate:"required"`
	DownloadDir string   `json:"DownloadDir"`
	S3          S3Config `json:"S3" validate:"-"`
}

// ----------
// Config
// ----------

// Config is the gallery configuration.
type Config struct {
	ChainID        uint64               `json:"ChainID" validate:"required"`
	UpstreamConfig UpstreamRPCConfig    `json:"UpstreamConfig"`
	Collection     CollectionConfig     `json:"Collection"`
	Assets         AssetsConfig         `json:"Assets"`
	LogSettings    logutils.LogSettings `json:"LogSettings"`
	MetricsPort    int                  `json:"MetricsPort" validate:"gte=0,lte=65535"`
}

// DefaultConfig returns the configuration of the mainnet collection.
func DefaultConfig() *Config {
	return &Config{
		ChainID: MainnetChainID,
		UpstreamConfig: UpstreamRPCConfig{
			RequestsPerSecond: DefaultRequestsPerSec,
		},
		Collection: CollectionConfig{
			ContractAddress:     DefaultContractAddress,
			MulticallAddress:    DefaultMulticallAddress,
			MinTokenID:          DefaultMinTokenID,
			MaxTokenID:          DefaultMaxTokenID,
			ChunkSize:           DefaultChunkSize,
			BatchMode:           BatchModeMulticall,
			CodeCacheTTLSeconds: DefaultCodeCacheTTLSecs,
		},
		Assets: AssetsConfig{
			BaseURL:     DefaultAssetsBaseURL,
			DownloadDir: ".",
		},
		LogSettings: logutils.LogSettings{
			Enabled: true,
			Level:   "INFO",
			Console: true,
		},
	}
}

// NewConfigFromJSON parses incoming JSON on top of DefaultConfig and validates the result.
func NewConfigFromJSON(configJSON string) (*Config, error) {
	config := DefaultConfig()

	if err := loadConfigFromJSON(configJSON, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfigFromFile reads a JSON config file on top of DefaultConfig. The result is not
// validated so that command line overrides can still be applied.
func LoadConfigFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := loadConfigFromJSON(string(data), config); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return config, nil
}

func loadConfigFromJSON(configJSON string, config *Config) error {
	decoder := json.NewDecoder(strings.NewReader(configJSON))
	decoder.DisallowUnknownFields()
	// override default configuration with values by JSON input
	return decoder.Decode(config)
}

// Validate checks if Config fields have valid values.
//
// Every failing check is reported; the returned error combines them with multierr.
func (c *Config) Validate() error {
	validate := NewValidator()

	var err error
	if vErr := validate.Struct(c); vErr != nil {
		err = multierr.Append(err, vErr)
	}

	err = multierr.Append(err, c.UpstreamConfig.Validate())
	err = multierr.Append(err, c.Assets.Validate(validate))

	if c.Collection.MaxTokenID < c.Collection.MinTokenID {
		err = multierr.Append(err, fmt.Errorf("Collection.MaxTokenID %d is below MinTokenID %d", c.Collection.MaxTokenID, c.Collection.MinTokenID))
	}

	return err
}

// Validate validates the UpstreamRPCConfig URLs.
func (c *UpstreamRPCConfig) Validate() error {
	var err error
	if c.URL != "" {
		if _, pErr := url.ParseRequestURI(c.URL); pErr != nil {
			err = multierr.Append(err, fmt.Errorf("UpstreamConfig.URL '%s' is invalid: %v", c.URL, pErr))
		}
	}
	if c.FallbackURL != "" {
		if _, pErr := url.ParseRequestURI(c.FallbackURL); pErr != nil {
			err = multierr.Append(err, fmt.Errorf("UpstreamConfig.FallbackURL '%s' is invalid: %v", c.FallbackURL, pErr))
		}
	}
	return err
}

// Validate validates the AssetsConfig struct and returns an error if inconsistent values are found
func (c *AssetsConfig) Validate(validate *validator.Validate) error {
	var err error
	if c.S3.Enabled {
		if vErr := validate.Struct(c.S3); vErr != nil {
			err = multierr.Append(err, vErr)
		}
		return err
	}

	u, pErr := url.ParseRequestURI(c.BaseURL)
	if pErr != nil {
		return fmt.Errorf("Assets.BaseURL '%s' is invalid: %v", c.BaseURL, pErr)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("Assets.BaseURL '%s' must be http or https", c.BaseURL)
	}
	return nil
}

// ContractAddress returns the collection address.
func (c *Config) ContractAddress() common.Address {
	return common.HexToAddress(c.Collection.ContractAddress)
}

// MulticallAddress returns the configured Multicall3 address, or the zero address when the
// known deployment of the chain should be used.
func (c *Config) MulticallAddress() common.Address {
	if c.Collection.MulticallAddress == "" {
		return common.Address{}
	}
	return common.HexToAddress(c.Collection.MulticallAddress)
}

// String dumps config object as nicely indented JSON
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "    ")
	return string(data)
}
