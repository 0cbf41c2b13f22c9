package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

func TestApplyToolCalls(t *testing.T) {
	uuidGen := uuid.NewGoogleUUIDGenerator()

	t.Run("fractional amounts truncate", func(t *testing.T) {
		char := &entities.Character{HP: entities.HitPoints{Current: 20, Max: 20}}

		updates := applyToolCalls(char, []genai.ToolCall{
			{Name: genai.ToolModifyHP, Arguments: `{"amount": -5.0, "reason": "fall"}`},
		}, uuidGen)

		assert.Equal(t, []string{"HP -5"}, updates)
		assert.Equal(t, 15, char.HP.Current)
	})

	t.Run("hp change at the bound reports nothing", func(t *testing.T) {
		char := &entities.Character{HP: entities.HitPoints{Current: 20, Max: 20}}

		updates := applyToolCalls(char, []genai.ToolCall{
			{Name: genai.ToolModifyHP, Arguments: `{"amount": 10}`},
		}, uuidGen)

		assert.Empty(t, updates)
	})

	t.Run("removing an absent item reports nothing", func(t *testing.T) {
		char := &entities.Character{}

		updates := applyToolCalls(char, []genai.ToolCall{
			{Name: genai.ToolModifyInventory, Arguments: `{"item": "Torch", "action": "remove"}`},
		}, uuidGen)

		assert.Empty(t, updates)
	})

	t.Run("unknown tools and bad arguments are skipped", func(t *testing.T) {
		char := &entities.Character{HP: entities.HitPoints{Current: 10, Max: 20}}

		updates := applyToolCalls(char, []genai.ToolCall{
			{Name: "summon_dragon", Arguments: `{}`},
			{Name: genai.ToolModifyHP, Arguments: `not json`},
			{Name: genai.ToolModifyHP, Arguments: `{"amount": 3}`},
		}, uuidGen)

		assert.Equal(t, []string{"HP +3"}, updates)
		assert.Equal(t, 13, char.HP.Current)
	})

	t.Run("mixed batch keeps call order", func(t *testing.T) {
		char := &entities.Character{
			HP:        entities.HitPoints{Current: 20, Max: 20},
			Inventory: []*entities.InventoryItem{{ID: "1", Name: "Wealth: 50 gp"}},
		}

		updates := applyToolCalls(char, []genai.ToolCall{
			{Name: genai.ToolModifyHP, Arguments: `{"amount": -8}`},
			{Name: genai.ToolModifyInventory, Arguments: `{"item": "Healing Potion", "action": "add"}`},
			{Name: genai.ToolModifyGold, Arguments: `{"amount": -20}`},
		}, uuidGen)

		assert.Equal(t, []string{"HP -8", "Acquired: Healing Potion", "Wealth -20"}, updates)
		assert.Equal(t, "Wealth: 30 gp", char.Inventory[0].Name)
	})
}
