package gallery

import (
	"context"
	"fmt"
	"math/big"
	"time"

	mapset "github.com/deckarep/golang-set"
	"github.com/meirf/gopart"
	"go.uber.org/zap"

	"github.com/ethereum/go-ethereum/common"

	"github.com/status-im/status-gallery/logutils"
	"github.com/status-im/status-gallery/metrics"
)

const DefaultChunkSize = 200

// ProgressFunc receives scan progress after every completed chunk.
type ProgressFunc func(Progress)

// ScanError is returned when a whole chunk of owner-of probes could not be executed.
// Results gathered before the failure are discarded.
type ScanError struct {
	From uint64
	To   uint64
	Err  error
}

func (e *ScanError) Error() string {
	return e.Err.Error()
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Scanner discovers the token IDs held by an account by probing the owner of every ID
// in the collection range, one chunk at a time.
type Scanner struct {
	batcher    OwnerOfBatcher
	tokenRange TokenRange
	chunkSize  int
	logger     *zap.Logger
}

func NewScanner(batcher OwnerOfBatcher, tokenRange TokenRange, chunkSize int) *Scanner {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Scanner{
		batcher:    batcher,
		tokenRange: tokenRange,
		chunkSize:  chunkSize,
		logger:     logutils.ZapLogger().Named("scanner"),
	}
}

func (s *Scanner) TokenRange() TokenRange {
	return s.tokenRange
}

// Scan returns the decimal IDs owned by owner in ascending order. ctx is checked at
// every chunk boundary; once it is done no further progress is reported and ctx.Err()
// is returned. A chunk-level failure aborts the scan with a *ScanError.
func (s *Scanner) Scan(ctx context.Context, owner common.Address, onProgress ProgressFunc) ([]string, error) {
	total := s.tokenRange.Total()
	start := time.Now()

	// Drain the partitioner up front, its goroutine blocks until every range is read.
	var chunks []gopart.IdxRange
	for idxRange := range gopart.Partition(int(total), s.chunkSize) {
		chunks = append(chunks, idxRange)
	}

	owned := make([]string, 0)
	seen := mapset.NewThreadUnsafeSet()

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		from := s.tokenRange.Min + uint64(chunk.Low)
		to := s.tokenRange.Min + uint64(chunk.High) - 1

		ids := make([]*big.Int, 0, chunk.High-chunk.Low)
		for id := from; id <= to; id++ {
			ids = append(ids, new(big.Int).SetUint64(id))
		}

		results, err := s.batcher.OwnerOfBatch(ctx, ids)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Error("owner-of batch failed",
				zap.Uint64("from", from),
				zap.Uint64("to", to),
				zap.Error(err))
			return nil, &ScanError{From: from, To: to, Err: err}
		}
		if len(results) != len(ids) {
			return nil, &ScanError{From: from, To: to, Err: fmt.Errorf("%w: requested %d, got %d", ErrBatchSizeMismatch, len(ids), len(results))}
		}

		failed := 0
		for _, res := range results {
			if !res.Ok() {
				failed++
				continue
			}
			if res.Owner != owner {
				continue
			}
			id := res.TokenID.String()
			if !seen.Add(id) {
				continue
			}
			owned = append(owned, id)
		}
		metrics.AddProbedTokens(len(ids))
		metrics.AddFailedProbes(failed)

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.logger.Debug("chunk scanned",
			zap.Uint64("from", from),
			zap.Uint64("to", to),
			zap.Int("failed", failed),
			zap.Int("owned", len(owned)))

		if onProgress != nil {
			scanned := uint64(chunk.High)
			if scanned > total {
				scanned = total
			}
			onProgress(Progress{Scanned: scanned, Total: total})
		}
	}

	s.logger.Info("scan finished",
		zap.Stringer("owner", owner),
		zap.Int("owned", len(owned)),
		zap.Duration("took", time.Since(start)))

	return owned, nil
}
