package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferQuestItem(t *testing.T) {
	assert.True(t, InferQuestItem("Rusty Key"))
	assert.True(t, InferQuestItem("Treasure Map"))
	assert.True(t, InferQuestItem("MONKEY PAW")) // substring match is deliberate
	assert.False(t, InferQuestItem("Longsword"))
	assert.False(t, InferQuestItem("Ancient Artifact")) // flag net is narrower than the discard net
}

func TestQuestLocked(t *testing.T) {
	assert.True(t, (&InventoryItem{Name: "Plain Rock", IsQuestItem: true}).QuestLocked())
	assert.True(t, (&InventoryItem{Name: "Sealed Letter"}).QuestLocked())
	assert.True(t, (&InventoryItem{Name: "Ancient Artifact"}).QuestLocked())
	assert.True(t, (&InventoryItem{Name: "Arcane Sigil"}).QuestLocked())
	assert.False(t, (&InventoryItem{Name: "Longsword"}).QuestLocked())
}
