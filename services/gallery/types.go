package gallery

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Status texts shown to the user.
const (
	StatusScanning      = "Scanning collection…"
	StatusConnectWallet = "Connect a wallet to load your tokens"
	StatusNoTokens      = "No tokens owned by this wallet"
	statusScanFailedFmt = "Scan failed: %s"
)

// TokenRange is the closed interval of token IDs in the collection.
type TokenRange struct {
	Min uint64 `json:"min"`
	Max uint64 `json:"max"`
}

// Total is the number of IDs in the range.
func (r TokenRange) Total() uint64 {
	return r.Max - r.Min + 1
}

// Contains reports whether id lies in the range.
func (r TokenRange) Contains(id uint64) bool {
	return id >= r.Min && id <= r.Max
}

// OwnerOfResult is the outcome of a single owner-of probe inside a batch.
// Owner is meaningful only when Err is nil.
type OwnerOfResult struct {
	TokenID *big.Int
	Owner   common.Address
	Err     error
}

func (r OwnerOfResult) Ok() bool {
	return r.Err == nil
}

// Progress of a running scan.
type Progress struct {
	Scanned uint64 `json:"scanned"`
	Total   uint64 `json:"total"`
}

func (p Progress) String() string {
	return fmt.Sprintf("Scanned %d / %d", p.Scanned, p.Total)
}

// State is a snapshot of everything a front end needs to render the gallery.
type State struct {
	Connected  bool            `json:"connected"`
	Account    common.Address  `json:"account"`
	OwnedIDs   []string        `json:"ownedIds"`
	Cursor     int             `json:"cursor"`
	CurrentID  string          `json:"currentId"`
	Search     string          `json:"search"`
	ImageURL   string          `json:"imageUrl"`
	Owner      *common.Address `json:"owner"`
	OwnedByYou bool            `json:"ownedByYou"`
	Found      bool            `json:"found"`
	Scanning   bool            `json:"scanning"`
	Status     string          `json:"status"`
	Progress   string          `json:"progress"`
	Caption    string          `json:"caption"`
	ScanID     string          `json:"scanId"`
}
