package genai

import (
	"context"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// StoryLength controls how long a generated story should be.
type StoryLength string

const (
	StoryIntro StoryLength = "intro"
	StoryShort StoryLength = "short"
	StoryLong  StoryLength = "long"
)

// Tool names the model may invoke during a DM chat turn.
const (
	ToolModifyHP        = "modify_hp"
	ToolModifyInventory = "modify_inventory"
	ToolModifyGold      = "modify_gold"
)

// ToolCall is a single function invocation requested by the model.
// Arguments is the raw JSON payload as returned by the API.
type ToolCall struct {
	Name      string
	Arguments string
}

// DMReply is the outcome of one DM chat turn.
type DMReply struct {
	Text      string
	ToolCalls []ToolCall
}

// Client is the generative content gateway. Text operations return
// structured entities decoded from model JSON output, image operations
// return data URLs, and GenerateSpeech returns raw audio bytes.
type Client interface {
	GenerateQuest(ctx context.Context, level int, theme string, genre entities.GameGenre) (*entities.Quest, error)
	GenerateNPC(ctx context.Context, description string, genre entities.GameGenre) (*entities.GeneratedNPC, error)
	GenerateMonster(ctx context.Context, description, cr string, genre entities.GameGenre) (*entities.LibraryItem, error)
	GenerateSpell(ctx context.Context, description, level string, genre entities.GameGenre) (*entities.LibraryItem, error)
	GenerateItem(ctx context.Context, description, itemType string, genre entities.GameGenre) (*entities.LibraryItem, error)
	GenerateSkill(ctx context.Context, description, attribute string, genre entities.GameGenre) (*entities.LibraryItem, error)
	GenerateStory(ctx context.Context, prompt string, length StoryLength, genre entities.GameGenre) (*entities.Story, error)
	GenerateLibraryEntry(ctx context.Context, category entities.LibraryCategory, name string) (*entities.LibraryItem, error)
	GenerateRandomCharacter(ctx context.Context, genre entities.GameGenre) (*entities.CharacterConcept, error)

	ChatWithDM(ctx context.Context, history []*entities.ChatMessage, message string, genre entities.GameGenre) (*DMReply, error)
	AnalyzeSceneForMap(ctx context.Context, sceneDescription string) (*entities.MapAnalysis, error)

	GenerateSceneImage(ctx context.Context, prompt string) (string, error)
	GenerateAvatarImage(ctx context.Context, description, race, class string) (string, error)
	GenerateMapImage(ctx context.Context, description string) (string, error)
	GenerateLocationTitle(ctx context.Context, description string) (string, error)
	GenerateSpeech(ctx context.Context, text string) ([]byte, error)
}
