package gallery

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/status-im/status-gallery/contracts/erc721"
	"github.com/status-im/status-gallery/logutils"
	"github.com/status-im/status-gallery/metrics"
	"github.com/status-im/status-gallery/services/wallet/async"
	"github.com/status-im/status-gallery/services/wallet/walletevent"
)

var (
	scanTask = async.TaskType{
		ID:     1,
		Policy: async.ReplacementPolicyCancelOld,
	}
	ownerLookupTask = async.TaskType{
		ID:     2,
		Policy: async.ReplacementPolicyCancelOld,
	}
)

var (
	ErrNotConnected   = errors.New("wallet not connected")
	ErrNoSelection    = errors.New("no token selected")
	ErrNoContractCode = errors.New("no contract code at collection address")
)

// Service keeps the gallery state of one connected account: the owned token IDs, the
// cursor over them, the live owner of the selected token and the user facing status.
// Scans and owner lookups run on their own schedulers so that a new request cancels
// the outdated one.
type Service struct {
	scanner     *Scanner
	ownerCaller erc721.ERC721CallerIface
	backend     bind.ContractCaller
	collection  common.Address
	assets      *AssetStore
	eventFeed   *event.Feed
	codeCache   *ttlcache.Cache[common.Address, bool]

	scanScheduler  *async.Scheduler
	ownerScheduler *async.Scheduler
	// scanMu orders scan starts so the last assigned scan ID is also the last enqueued scan.
	scanMu sync.Mutex

	mu           sync.RWMutex
	connected    bool
	account      common.Address
	browser      *Browser
	search       string
	owner        *common.Address
	found        bool
	scanning     bool
	status       string
	progress     string
	scanID       string
	selectionSeq uint64

	logger *zap.Logger
}

// NewService wires a Service. backend is used to check that the collection contract
// exists before scanning and may be nil to skip the check. A codeCacheTTL of 0 keeps a
// successful check for the lifetime of the service.
func NewService(
	scanner *Scanner,
	ownerCaller erc721.ERC721CallerIface,
	backend bind.ContractCaller,
	collection common.Address,
	assets *AssetStore,
	eventFeed *event.Feed,
	codeCacheTTL time.Duration,
) *Service {
	return &Service{
		scanner:        scanner,
		ownerCaller:    ownerCaller,
		backend:        backend,
		collection:     collection,
		assets:         assets,
		eventFeed:      eventFeed,
		codeCache:      ttlcache.New[common.Address, bool](ttlcache.WithTTL[common.Address, bool](codeCacheTTL)),
		scanScheduler:  async.NewScheduler(),
		ownerScheduler: async.NewScheduler(),
		browser:        NewBrowser(),
		found:          true,
		status:         StatusConnectWallet,
		logger:         logutils.ZapLogger().Named("gallery"),
	}
}

func (s *Service) Stop() {
	s.scanScheduler.Stop()
	s.ownerScheduler.Stop()
}

// SetAccount reports the wallet connection. A change of connection or account starts a
// new scan and supersedes any running one; repeating the current values is a no-op.
func (s *Service) SetAccount(connected bool, account common.Address) {
	if account == (common.Address{}) {
		connected = false
	}

	s.scanMu.Lock()
	defer s.scanMu.Unlock()

	s.mu.Lock()
	if connected == s.connected && (!connected || account == s.account) {
		s.mu.Unlock()
		return
	}

	if !connected {
		s.connected = false
		s.account = common.Address{}
		s.resetLocked()
		s.status = StatusConnectWallet
		st := s.snapshotLocked()
		s.mu.Unlock()

		s.cancelScan()
		s.logger.Info("wallet disconnected")
		s.sendEvent(EventAccountChanged, st, "")
		return
	}

	s.connected = true
	s.account = account
	scanID := s.prepareScanLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("wallet connected", zap.Stringer("account", account))
	s.sendEvent(EventAccountChanged, st, "")
	s.sendEvent(EventScanStarted, st, "")
	s.enqueueScan(scanID, account)
}

// Rescan starts a fresh scan of the connected account.
func (s *Service) Rescan() error {
	s.scanMu.Lock()
	defer s.scanMu.Unlock()

	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return ErrNotConnected
	}
	scanID := s.prepareScanLocked()
	account := s.account
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.sendEvent(EventScanStarted, st, "")
	s.enqueueScan(scanID, account)
	return nil
}

// resetLocked drops the scan result and everything derived from it.
func (s *Service) resetLocked() {
	s.scanID = ""
	s.browser.Reset(nil)
	s.search = ""
	s.owner = nil
	s.selectionSeq++
	s.found = true
	s.scanning = false
	s.progress = ""
}

// cancelScan cancels the running scan by replacing it with an empty one.
func (s *Service) cancelScan() {
	s.scanScheduler.Enqueue(scanTask, func(ctx context.Context) (interface{}, error) {
		return nil, nil
	}, func(interface{}, async.TaskType, error) {})
}

// prepareScanLocked drops the previous result and assigns a new scan ID, so results
// of any scan started before are ignored from here on.
func (s *Service) prepareScanLocked() string {
	s.resetLocked()
	s.scanID = uuid.NewString()
	s.scanning = true
	s.status = StatusScanning
	return s.scanID
}

func (s *Service) enqueueScan(scanID string, account common.Address) {
	start := time.Now()
	s.scanScheduler.Enqueue(scanTask, func(ctx context.Context) (interface{}, error) {
		if err := s.checkContract(ctx); err != nil {
			return nil, err
		}
		return s.scanner.Scan(ctx, account, func(p Progress) {
			s.onScanProgress(scanID, p)
		})
	}, func(result interface{}, taskType async.TaskType, err error) {
		s.onScanDone(scanID, start, result, err)
	})
}

func (s *Service) onScanProgress(scanID string, p Progress) {
	s.mu.Lock()
	if s.scanID != scanID {
		s.mu.Unlock()
		return
	}
	s.progress = p.String()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.sendEvent(EventScanProgress, st, st.Progress)
}

func (s *Service) onScanDone(scanID string, start time.Time, result interface{}, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, async.ErrTaskOverwritten) {
		metrics.ObserveScan(metrics.ScanResultCancelled, time.Since(start))
		s.logger.Debug("scan superseded", zap.String("scanID", scanID))
		return
	}

	s.mu.Lock()
	if s.scanID != scanID {
		s.mu.Unlock()
		return
	}
	s.scanning = false
	s.progress = ""

	if err != nil {
		s.status = fmt.Sprintf(statusScanFailedFmt, err.Error())
		st := s.snapshotLocked()
		s.mu.Unlock()

		metrics.ObserveScan(metrics.ScanResultFailed, time.Since(start))
		s.logger.Error("scan failed", zap.String("scanID", scanID), zap.Error(err))
		s.sendEvent(EventScanFailed, st, err.Error())
		return
	}

	ids := result.([]string)
	s.browser.Reset(ids)
	s.found = len(ids) > 0
	s.status = ""
	if !s.found {
		s.status = StatusNoTokens
	}
	id, seq := s.selectionChangedLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	metrics.ObserveScan(metrics.ScanResultCompleted, time.Since(start))
	s.sendEvent(EventScanFinished, st, "")
	s.lookupOwner(id, seq)
}

func (s *Service) checkContract(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	if item := s.codeCache.Get(s.collection); item != nil && item.Value() {
		return nil
	}

	code, err := s.backend.CodeAt(ctx, s.collection, nil)
	if err != nil {
		return err
	}
	if len(code) == 0 {
		return fmt.Errorf("%w %s", ErrNoContractCode, s.collection.Hex())
	}
	s.codeCache.Set(s.collection, true, ttlcache.DefaultTTL)
	return nil
}

// selectionChangedLocked syncs the search value with the new current ID and
// invalidates the known owner.
func (s *Service) selectionChangedLocked() (string, uint64) {
	id := s.browser.Current()
	s.search = id
	s.owner = nil
	s.selectionSeq++
	return id, s.selectionSeq
}

// lookupOwner fetches the live owner of id. Results of lookups made for an outdated
// selection are dropped; a failed lookup leaves the owner unknown.
func (s *Service) lookupOwner(id string, seq uint64) {
	if id == "" || s.ownerCaller == nil {
		return
	}
	tokenID, ok := new(big.Int).SetString(id, 10)
	if !ok {
		return
	}

	s.ownerScheduler.Enqueue(ownerLookupTask, func(ctx context.Context) (interface{}, error) {
		return s.ownerCaller.OwnerOf(&bind.CallOpts{Context: ctx}, tokenID)
	}, func(result interface{}, taskType async.TaskType, err error) {
		if errors.Is(err, context.Canceled) || errors.Is(err, async.ErrTaskOverwritten) {
			return
		}

		s.mu.Lock()
		if seq != s.selectionSeq {
			s.mu.Unlock()
			return
		}
		if err != nil {
			s.owner = nil
			s.logger.Debug("owner lookup failed", zap.String("tokenID", id), zap.Error(err))
		} else {
			owner := result.(common.Address)
			s.owner = &owner
		}
		st := s.snapshotLocked()
		s.mu.Unlock()

		s.sendEvent(EventOwnerUpdated, st, "")
	})
}

// Next moves the cursor forward, wrapping to the first token.
func (s *Service) Next() State {
	return s.move((*Browser).Next)
}

// Prev moves the cursor backward, wrapping to the last token.
func (s *Service) Prev() State {
	return s.move((*Browser).Prev)
}

func (s *Service) move(step func(*Browser) string) State {
	s.mu.Lock()
	if s.browser.Len() == 0 {
		st := s.snapshotLocked()
		s.mu.Unlock()
		return st
	}
	step(s.browser)
	id, seq := s.selectionChangedLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.sendEvent(EventSelection, st, "")
	s.lookupOwner(id, seq)
	return st
}

// SelectByID moves the cursor to id if it is owned. Otherwise the cursor stays and the
// search value reverts to the current ID.
func (s *Service) SelectByID(id string) bool {
	s.mu.Lock()
	if !s.browser.SelectByID(id) {
		s.search = s.browser.Current()
		s.mu.Unlock()
		return false
	}
	newID, seq := s.selectionChangedLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.sendEvent(EventSelection, st, "")
	s.lookupOwner(newID, seq)
	return true
}

// SetSearch stores the normalised search box value and returns it.
func (s *Service) SetSearch(value string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = NormalizeSearchInput(value, s.search, s.browser.Current(), s.scanner.TokenRange())
	return s.search
}

// SubmitSearch selects the token in the search box.
func (s *Service) SubmitSearch() bool {
	s.mu.RLock()
	search := s.search
	s.mu.RUnlock()
	return s.SelectByID(search)
}

// Download fetches the selected token's asset. Failures do not touch the gallery state.
func (s *Service) Download(ctx context.Context, format Format) (*Asset, error) {
	s.mu.RLock()
	id := s.browser.Current()
	s.mu.RUnlock()

	if id == "" {
		return nil, ErrNoSelection
	}
	return s.DownloadToken(ctx, id, format)
}

// DownloadToken fetches the asset of any token in the collection.
func (s *Service) DownloadToken(ctx context.Context, id string, format Format) (*Asset, error) {
	asset, err := s.assets.Download(ctx, id, format)
	metrics.CountDownload(string(format), err)
	if err != nil {
		s.logger.Warn("download failed", zap.String("tokenID", id), zap.String("format", string(format)), zap.Error(err))
		s.sendEvent(EventDownloadFailed, s.State(), err.Error())
		return nil, err
	}
	return asset, nil
}

// State returns a snapshot of the gallery.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() State {
	id := s.browser.Current()
	st := State{
		Connected: s.connected,
		Account:   s.account,
		OwnedIDs:  s.browser.IDs(),
		Cursor:    s.browser.Cursor(),
		CurrentID: id,
		Search:    s.search,
		Found:     s.found,
		Scanning:  s.scanning,
		Status:    s.status,
		Progress:  s.progress,
		ScanID:    s.scanID,
	}
	if s.assets != nil {
		st.ImageURL = s.assets.ImageURL(id)
	}
	if s.owner != nil {
		owner := *s.owner
		st.Owner = &owner
		st.OwnedByYou = s.connected && owner == s.account
	}
	if st.Status == "" && len(st.OwnedIDs) > 0 {
		st.Caption = fmt.Sprintf("Showing %d of %d owned tokens", st.Cursor+1, len(st.OwnedIDs))
	}
	return st
}

func (s *Service) sendEvent(eventType walletevent.EventType, st State, message string) {
	var accounts []common.Address
	if st.Connected {
		accounts = []common.Address{st.Account}
	}
	walletevent.Send(s.eventFeed, walletevent.Event{
		Type:        eventType,
		Accounts:    accounts,
		Message:     message,
		EventParams: st,
	})
}
