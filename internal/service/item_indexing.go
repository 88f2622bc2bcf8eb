package service

import (
	"context"
	"encoding/json"

	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/pkg/logger"
)

// queueItemIndexing hands a freshly written item to the indexing topic.
// Best effort: the item write already succeeded, so failures are logged
// and swallowed rather than surfaced to the caller.
func queueItemIndexing(ctx context.Context, publisher IPublisherService, log logger.ILogger, msg dto.PublishEmbedItemMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Error("ItemIndexing", "Failed to marshal indexing message", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := publisher.Publish(ctx, payload); err != nil {
		log.Warn("ItemIndexing", "Failed to queue item for indexing", map[string]interface{}{
			"item_type": msg.ItemType,
			"item_id":   msg.ItemId,
			"error":     err.Error(),
		})
	}
}
