package genai

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// gameTools lets the model update the active character sheet while
// narrating. The service layer applies the calls it recognizes.
var gameTools = []openai.Tool{
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        ToolModifyHP,
			Description: "Updates the player character's current HP. Use negative values for damage, positive for healing.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"amount": {
						Type:        jsonschema.Number,
						Description: "The amount to add or subtract.",
					},
					"reason": {
						Type:        jsonschema.String,
						Description: "Short reason for the change (e.g., 'goblin attack', 'potion').",
					},
				},
				Required: []string{"amount"},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        ToolModifyInventory,
			Description: "Adds or removes an item from the player's inventory.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"item": {
						Type:        jsonschema.String,
						Description: "Name of the item.",
					},
					"action": {
						Type:        jsonschema.String,
						Enum:        []string{"add", "remove"},
						Description: "Whether to add or remove the item.",
					},
				},
				Required: []string{"item", "action"},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        ToolModifyGold,
			Description: "Adds or removes gold/money from the player.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"amount": {
						Type:        jsonschema.Number,
						Description: "Amount of gold (positive to add, negative to spend/lose).",
					},
				},
				Required: []string{"amount"},
			},
		},
	},
}
