// Package events defines the catalog update payloads exchanged over Kafka.
package events

import (
	"time"

	"example.com/recommendation/internal/domain"
)

// Event type header values emitted by catalog producers.
const (
	TypeCatalogEntryUpserted = "catalog.entry.upserted"
	TypeCatalogEntryDeleted  = "catalog.entry.deleted"
)

// CatalogEntryUpserted is emitted when a catalog entry is created or edited.
type CatalogEntryUpserted struct {
	EntryID    string          `json:"entry_id"`
	Entry      domain.Exercise `json:"entry"`
	Source     string          `json:"source"`
	Version    string          `json:"version"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// CatalogEntryDeleted is emitted when a catalog entry is retired.
type CatalogEntryDeleted struct {
	EntryID    string    `json:"entry_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
