package entities

import "strings"

// InventoryItem is a single carried item
type InventoryItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Equipped    bool   `json:"equipped"`
	Quantity    int    `json:"quantity"`
	IsQuestItem bool   `json:"is_quest_item,omitempty"`
	Description string `json:"description,omitempty"`
}

// InferQuestItem reports whether an item name suggests a quest item.
// Used when migrating legacy inventories that carried no flag.
func InferQuestItem(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "key") || strings.Contains(lower, "map")
}

// QuestLocked reports whether an item is protected from discarding.
// Checks the flag plus a wider keyword net than InferQuestItem so
// plot-critical items named before the flag existed stay protected.
func (i *InventoryItem) QuestLocked() bool {
	if i.IsQuestItem {
		return true
	}
	lower := strings.ToLower(i.Name)
	for _, kw := range []string{"key", "map", "letter", "artifact", "sigil"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
