package cache

import (
	"context"
	"time"

	"github.com/windchart/backend-go/internal/models"
)

// SnapshotKey is the single key every layer stores the snapshot under
const SnapshotKey = "cachedLocationData"

// SnapshotStore is a persistent cache layer. Load returns nil without
// error when nothing fresh is stored.
type SnapshotStore interface {
	Load(ctx context.Context) (*models.CacheEntry, error)
	Save(ctx context.Context, entry *models.CacheEntry) error
}

// SnapshotDocument is the persisted form: { "date": epoch millis, "data": [...] }
type SnapshotDocument struct {
	Date int64                  `json:"date"`
	Data []models.StationSeries `json:"data"`
}

func NewSnapshotDocument(entry *models.CacheEntry) SnapshotDocument {
	return SnapshotDocument{
		Date: entry.Timestamp.UnixMilli(),
		Data: entry.Data,
	}
}

func (d SnapshotDocument) Entry() *models.CacheEntry {
	return &models.CacheEntry{
		Timestamp: time.UnixMilli(d.Date),
		Data:      d.Data,
	}
}
