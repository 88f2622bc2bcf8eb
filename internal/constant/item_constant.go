package constant

const (
	ItemTypeKnowledge  = "knowledge"
	ItemTypeInsight    = "insight"
	ItemTypeExperiment = "experiment"
	ItemTypePrinciple  = "principle"

	TableKnowledgeItems = "knowledge_items"
	TableInsights       = "insights"
	TableExperiments    = "experiments"
	TablePrinciples     = "principles"
)

// TableForItemType maps an embedding item type to its owning table.
func TableForItemType(itemType string) string {
	switch itemType {
	case ItemTypeKnowledge:
		return TableKnowledgeItems
	case ItemTypeInsight:
		return TableInsights
	case ItemTypeExperiment:
		return TableExperiments
	case ItemTypePrinciple:
		return TablePrinciples
	default:
		return itemType
	}
}
