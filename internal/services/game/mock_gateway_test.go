package game

import (
	"context"
	"errors"

	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// mockGateway is a manual genai.Client double. Tests set the function
// fields they care about; unset operations fail loudly.
type mockGateway struct {
	chatFunc     func(history []*entities.ChatMessage, message string, genre entities.GameGenre) (*genai.DMReply, error)
	analyzeFunc  func(sceneDescription string) (*entities.MapAnalysis, error)
	mapImageFunc func(description string) (string, error)
	titleFunc    func(description string) (string, error)
	speechFunc   func(text string) ([]byte, error)
	sceneFunc    func(prompt string) (string, error)

	chatCalls  []string
	titleCalls int
}

var errNotStubbed = errors.New("operation not stubbed")

func (m *mockGateway) ChatWithDM(_ context.Context, history []*entities.ChatMessage, message string, genre entities.GameGenre) (*genai.DMReply, error) {
	m.chatCalls = append(m.chatCalls, message)
	if m.chatFunc == nil {
		return nil, errNotStubbed
	}
	return m.chatFunc(history, message, genre)
}

func (m *mockGateway) AnalyzeSceneForMap(_ context.Context, sceneDescription string) (*entities.MapAnalysis, error) {
	if m.analyzeFunc == nil {
		return &entities.MapAnalysis{NeedsMap: false}, nil
	}
	return m.analyzeFunc(sceneDescription)
}

func (m *mockGateway) GenerateMapImage(_ context.Context, description string) (string, error) {
	if m.mapImageFunc == nil {
		return "", errNotStubbed
	}
	return m.mapImageFunc(description)
}

func (m *mockGateway) GenerateLocationTitle(_ context.Context, description string) (string, error) {
	m.titleCalls++
	if m.titleFunc == nil {
		return "", errNotStubbed
	}
	return m.titleFunc(description)
}

func (m *mockGateway) GenerateSpeech(_ context.Context, text string) ([]byte, error) {
	if m.speechFunc == nil {
		return nil, errNotStubbed
	}
	return m.speechFunc(text)
}

func (m *mockGateway) GenerateSceneImage(_ context.Context, prompt string) (string, error) {
	if m.sceneFunc == nil {
		return "", errNotStubbed
	}
	return m.sceneFunc(prompt)
}

func (m *mockGateway) GenerateQuest(context.Context, int, string, entities.GameGenre) (*entities.Quest, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateNPC(context.Context, string, entities.GameGenre) (*entities.GeneratedNPC, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateMonster(context.Context, string, string, entities.GameGenre) (*entities.LibraryItem, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateSpell(context.Context, string, string, entities.GameGenre) (*entities.LibraryItem, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateItem(context.Context, string, string, entities.GameGenre) (*entities.LibraryItem, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateSkill(context.Context, string, string, entities.GameGenre) (*entities.LibraryItem, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateStory(context.Context, string, genai.StoryLength, entities.GameGenre) (*entities.Story, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateLibraryEntry(context.Context, entities.LibraryCategory, string) (*entities.LibraryItem, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateRandomCharacter(context.Context, entities.GameGenre) (*entities.CharacterConcept, error) {
	return nil, errNotStubbed
}

func (m *mockGateway) GenerateAvatarImage(context.Context, string, string, string) (string, error) {
	return "", errNotStubbed
}
