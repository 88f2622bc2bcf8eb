package constant

const (
	EventCopilotQuery          = "copilot_query"
	EventSeedStewardRequested  = "seed_steward_requested"
	EventSeedCreated           = "seed_created"
	EventSeedUpdated           = "seed_updated"
	EventKnowledgeItemCreated  = "knowledge_item_created"
	EventInsightCreated        = "insight_created"
	EventExperimentCreated     = "experiment_created"
	EventExperimentStatusMoved = "experiment_status_moved"
	EventPrincipleCreated      = "principle_created"
)
