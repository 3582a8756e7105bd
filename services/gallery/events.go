package gallery

import (
	"github.com/status-im/status-gallery/services/wallet/walletevent"
)

// These events are used to notify front ends of gallery state changes. Every event
// carries the State snapshot taken right after the change in EventParams.
const (
	EventAccountChanged walletevent.EventType = "gallery-account-changed"
	EventScanStarted    walletevent.EventType = "gallery-scan-started"
	EventScanProgress   walletevent.EventType = "gallery-scan-progress"
	EventScanFinished   walletevent.EventType = "gallery-scan-finished"
	EventScanFailed     walletevent.EventType = "gallery-scan-failed"
	EventSelection      walletevent.EventType = "gallery-selection-changed"
	EventOwnerUpdated   walletevent.EventType = "gallery-owner-updated"
	EventDownloadFailed walletevent.EventType = "gallery-download-failed"
)
