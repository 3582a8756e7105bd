package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const (
	ScanResultCompleted = "completed"
	ScanResultFailed    = "failed"
	ScanResultCancelled = "cancelled"
)

var (
	rpcCallsCounter = prom.NewCounterVec(prom.CounterOpts{
		Name: "gallery_rpc_calls_total",
		Help: "Number of RPC requests sent per chain, provider and method",
	}, []string{"chain_id", "provider", "method"})

	scansCounter = prom.NewCounterVec(prom.CounterOpts{
		Name: "gallery_scans_total",
		Help: "Number of ownership scans by outcome",
	}, []string{"result"})

	scanDuration = prom.NewHistogram(prom.HistogramOpts{
		Name:    "gallery_scan_duration_seconds",
		Help:    "Duration of ownership scans",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})

	probedTokensCounter = prom.NewCounter(prom.CounterOpts{
		Name: "gallery_probed_tokens_total",
		Help: "Number of token IDs whose owner was probed",
	})

	failedProbesCounter = prom.NewCounter(prom.CounterOpts{
		Name: "gallery_failed_probes_total",
		Help: "Number of per-token owner probes that failed and were treated as not owned",
	})

	downloadsCounter = prom.NewCounterVec(prom.CounterOpts{
		Name: "gallery_downloads_total",
		Help: "Number of asset downloads by format and outcome",
	}, []string{"format", "result"})
)

func init() {
	prom.MustRegister(rpcCallsCounter, scansCounter, scanDuration, probedTokensCounter, failedProbesCounter, downloadsCounter)
}

func CountRPCCall(chainID uint64, provider string, method string) {
	rpcCallsCounter.WithLabelValues(strconv.FormatUint(chainID, 10), provider, method).Inc()
}

func ObserveScan(result string, duration time.Duration) {
	scansCounter.WithLabelValues(result).Inc()
	scanDuration.Observe(duration.Seconds())
}

func AddProbedTokens(n int) {
	probedTokensCounter.Add(float64(n))
}

func AddFailedProbes(n int) {
	failedProbesCounter.Add(float64(n))
}

func CountDownload(format string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	downloadsCounter.WithLabelValues(format, result).Inc()
}
