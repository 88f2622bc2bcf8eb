package dto

import "github.com/google/uuid"

// PublishEmbedItemMessage is the payload carried on the in-process
// indexing topic after a domain item is created or edited.
type PublishEmbedItemMessage struct {
	WorkspaceId uuid.UUID  `json:"workspace_id"`
	SeedId      *uuid.UUID `json:"seed_id,omitempty"`
	ItemType    string     `json:"item_type"`
	ItemId      uuid.UUID  `json:"item_id"`
}
