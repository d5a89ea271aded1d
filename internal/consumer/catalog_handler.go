package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"example.com/recommendation/internal/catalog"
	"example.com/recommendation/internal/events"
)

// CatalogHandler applies catalog update events to the in-memory store.
type CatalogHandler struct {
	store *catalog.Store
}

// NewCatalogHandler constructs a handler writing into the provided store.
func NewCatalogHandler(store *catalog.Store) Handler {
	return &CatalogHandler{store: store}
}

// Handle projects catalog entry events into the store. Unknown event types
// are skipped so producers can evolve the topic without breaking consumers.
func (h *CatalogHandler) Handle(ctx context.Context, msg Message) error {
	payload := stripSchemaRegistryPrefix(msg.Payload)

	switch msg.Headers["event_type"] {
	case events.TypeCatalogEntryUpserted:
		var evt events.CatalogEntryUpserted
		if err := json.Unmarshal(payload, &evt); err != nil {
			return err
		}
		entry := evt.Entry
		if strings.TrimSpace(entry.ID) == "" {
			entry.ID = evt.EntryID
		}
		if strings.TrimSpace(entry.Name) == "" {
			return errors.New("catalog entry name is required")
		}
		h.store.Upsert(entry)
		return nil

	case events.TypeCatalogEntryDeleted:
		var evt events.CatalogEntryDeleted
		if err := json.Unmarshal(payload, &evt); err != nil {
			return err
		}
		if strings.TrimSpace(evt.EntryID) == "" {
			return errors.New("entry_id is required")
		}
		h.store.Delete(evt.EntryID)
		return nil
	}
	return nil
}

// stripSchemaRegistryPrefix drops the Confluent wire format header
// (magic byte + 4-byte schema id) when present.
func stripSchemaRegistryPrefix(payload json.RawMessage) json.RawMessage {
	if len(payload) >= 5 && payload[0] == 0x00 {
		return payload[5:]
	}
	return payload
}
