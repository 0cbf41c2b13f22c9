package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

// Amounts decode as float64 because the model emits JSON numbers that
// are not always integral.
type modifyHPArgs struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

type modifyInventoryArgs struct {
	Item   string `json:"item"`
	Action string `json:"action"`
}

type modifyGoldArgs struct {
	Amount float64 `json:"amount"`
}

// applyToolCalls executes the narrator's sheet updates against the
// character and returns one summary line per applied change. Unknown
// tool names and malformed arguments are logged and skipped.
func applyToolCalls(character *entities.Character, calls []genai.ToolCall, uuidGen uuid.Generator) []string {
	var updates []string

	for _, call := range calls {
		switch call.Name {
		case genai.ToolModifyHP:
			var args modifyHPArgs
			if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
				log.Warn().Err(err).Str("tool", call.Name).Msg("bad tool arguments")
				continue
			}
			if diff := character.ApplyHPDelta(int(args.Amount)); diff != 0 {
				updates = append(updates, fmt.Sprintf("HP %s", signed(diff)))
			}

		case genai.ToolModifyInventory:
			var args modifyInventoryArgs
			if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
				log.Warn().Err(err).Str("tool", call.Name).Msg("bad tool arguments")
				continue
			}
			switch strings.ToLower(args.Action) {
			case "add":
				character.AddItem(uuidGen.New(), args.Item)
				updates = append(updates, fmt.Sprintf("Acquired: %s", args.Item))
			case "remove":
				if character.RemoveItemByName(args.Item) {
					updates = append(updates, fmt.Sprintf("Removed: %s", args.Item))
				}
			default:
				log.Warn().Str("action", args.Action).Msg("unknown inventory action")
			}

		case genai.ToolModifyGold:
			var args modifyGoldArgs
			if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
				log.Warn().Err(err).Str("tool", call.Name).Msg("bad tool arguments")
				continue
			}
			if character.AdjustWealth(int(args.Amount), uuidGen.New()) {
				updates = append(updates, fmt.Sprintf("Wealth %s", signed(int(args.Amount))))
			}

		default:
			log.Warn().Str("tool", call.Name).Msg("narrator requested an unknown tool")
		}
	}
	return updates
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
