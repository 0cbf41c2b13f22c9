package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

const (
	defaultTextModel  = "gpt-4o-mini"
	defaultImageModel = "dall-e-3"
	defaultTTSModel   = "tts-1"

	// Dialogue chunks past this length add TTS latency without adding
	// much to the scene.
	maxSpeechChars = 400
)

// Config holds the gateway configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	TTSModel   string
	HTTPClient *http.Client
}

// OpenAIClient implements Client against the OpenAI API.
type OpenAIClient struct {
	api        *openai.Client
	textModel  string
	imageModel string
	ttsModel   string
}

// New creates a gateway client. The API key is required.
func New(cfg *Config) (*OpenAIClient, error) {
	if cfg == nil {
		return nil, apperrors.InvalidArgument("config is required")
	}
	if cfg.APIKey == "" {
		return nil, apperrors.InvalidArgument("api key is required")
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		apiConfig.HTTPClient = cfg.HTTPClient
	}

	client := &OpenAIClient{
		api:        openai.NewClientWithConfig(apiConfig),
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		ttsModel:   cfg.TTSModel,
	}
	if client.textModel == "" {
		client.textModel = defaultTextModel
	}
	if client.imageModel == "" {
		client.imageModel = defaultImageModel
	}
	if client.ttsModel == "" {
		client.ttsModel = defaultTTSModel
	}
	return client, nil
}

func (c *OpenAIClient) observe(operation, model string, start time.Time, usage openai.Usage, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	aiRequestsTotal.WithLabelValues(model, operation, status).Inc()
	aiRequestDuration.WithLabelValues(model, operation).Observe(time.Since(start).Seconds())
	if usage.TotalTokens > 0 {
		aiTotalTokens.WithLabelValues(model, operation).Observe(float64(usage.TotalTokens))
	}
}

// generateJSON runs a chat completion in JSON mode and decodes the
// reply into out.
func (c *OpenAIClient) generateJSON(ctx context.Context, operation, systemPrompt, userPrompt string, out any) error {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.textModel,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	c.observe(operation, c.textModel, start, resp.Usage, err)
	if err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("chat completion failed")
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, fmt.Sprintf("%s generation failed", operation))
	}
	if len(resp.Choices) == 0 {
		return apperrors.Internalf("%s generation returned no choices", operation)
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("failed to decode model JSON")
		return apperrors.WrapWithCode(err, apperrors.CodeInternal, fmt.Sprintf("%s generation returned invalid JSON", operation))
	}
	return nil
}

func (c *OpenAIClient) GenerateQuest(ctx context.Context, level int, theme string, genre entities.GameGenre) (*entities.Quest, error) {
	quest := &entities.Quest{}
	if err := c.generateJSON(ctx, "quest", "", questPrompt(level, theme, genre), quest); err != nil {
		return nil, err
	}
	return quest, nil
}

func (c *OpenAIClient) GenerateNPC(ctx context.Context, description string, genre entities.GameGenre) (*entities.GeneratedNPC, error) {
	npc := &entities.GeneratedNPC{}
	if err := c.generateJSON(ctx, "npc", "", npcPrompt(description, genre), npc); err != nil {
		return nil, err
	}
	return npc, nil
}

func (c *OpenAIClient) GenerateMonster(ctx context.Context, description, cr string, genre entities.GameGenre) (*entities.LibraryItem, error) {
	item := &entities.LibraryItem{}
	if err := c.generateJSON(ctx, "monster", "", monsterPrompt(description, cr, genre), item); err != nil {
		return nil, err
	}
	item.Category = entities.CategoryMonsters
	item.CR = cr
	return item, nil
}

func (c *OpenAIClient) GenerateSpell(ctx context.Context, description, level string, genre entities.GameGenre) (*entities.LibraryItem, error) {
	item := &entities.LibraryItem{}
	if err := c.generateJSON(ctx, "spell", "", spellPrompt(description, level, genre), item); err != nil {
		return nil, err
	}
	item.Category = entities.CategorySpells
	return item, nil
}

func (c *OpenAIClient) GenerateItem(ctx context.Context, description, itemType string, genre entities.GameGenre) (*entities.LibraryItem, error) {
	item := &entities.LibraryItem{}
	if err := c.generateJSON(ctx, "item", "", itemPrompt(description, itemType, genre), item); err != nil {
		return nil, err
	}
	item.Category = entities.LibraryCategory(strings.ToLower(itemType))
	return item, nil
}

func (c *OpenAIClient) GenerateSkill(ctx context.Context, description, attribute string, genre entities.GameGenre) (*entities.LibraryItem, error) {
	item := &entities.LibraryItem{}
	if err := c.generateJSON(ctx, "skill", "", skillPrompt(description, attribute, genre), item); err != nil {
		return nil, err
	}
	item.Category = "skill"
	return item, nil
}

func (c *OpenAIClient) GenerateStory(ctx context.Context, prompt string, length StoryLength, genre entities.GameGenre) (*entities.Story, error) {
	story := &entities.Story{}
	if err := c.generateJSON(ctx, "story", "", storyPrompt(prompt, length, genre), story); err != nil {
		return nil, err
	}
	return story, nil
}

func (c *OpenAIClient) GenerateLibraryEntry(ctx context.Context, category entities.LibraryCategory, name string) (*entities.LibraryItem, error) {
	item := &entities.LibraryItem{}
	prompt := fmt.Sprintf("category: %q, name: %q", category, name)
	if err := c.generateJSON(ctx, "library_entry", librarySystemPrompt, prompt, item); err != nil {
		return nil, err
	}
	item.Category = category
	if item.Name == "" {
		item.Name = name
	}
	return item, nil
}

func (c *OpenAIClient) GenerateRandomCharacter(ctx context.Context, genre entities.GameGenre) (*entities.CharacterConcept, error) {
	concept := &entities.CharacterConcept{}
	if err := c.generateJSON(ctx, "random_character", "", randomCharacterPrompt(genre), concept); err != nil {
		return nil, err
	}
	return concept, nil
}

func (c *OpenAIClient) ChatWithDM(ctx context.Context, history []*entities.ChatMessage, message string, genre entities.GameGenre) (*DMReply, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: dmSystemPrompt(genre),
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == entities.MessageRoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.textModel,
		Messages: messages,
		Tools:    gameTools,
	})
	c.observe("dm_chat", c.textModel, start, resp.Usage, err)
	if err != nil {
		log.Error().Err(err).Msg("dm chat failed")
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "dm chat failed")
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.Internal("dm chat returned no choices")
	}

	choice := resp.Choices[0].Message
	reply := &DMReply{Text: choice.Content}
	for _, call := range choice.ToolCalls {
		if call.Type != openai.ToolTypeFunction {
			continue
		}
		reply.ToolCalls = append(reply.ToolCalls, ToolCall{
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}

	if reply.Text == "" && len(reply.ToolCalls) > 0 {
		reply.Text = "(The DM silently updates your status...)"
	} else if reply.Text == "" {
		reply.Text = "The spirits are silent..."
	}
	return reply, nil
}

func (c *OpenAIClient) AnalyzeSceneForMap(ctx context.Context, sceneDescription string) (*entities.MapAnalysis, error) {
	analysis := &entities.MapAnalysis{}
	prompt := fmt.Sprintf("Scene: %q", sceneDescription)
	if err := c.generateJSON(ctx, "map_analysis", mapAnalysisSystemPrompt, prompt, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// generateImage runs an image generation and returns the result as a
// data URL so callers can hand it straight to a browser.
func (c *OpenAIClient) generateImage(ctx context.Context, operation, prompt, size string) (string, error) {
	start := time.Now()
	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           size,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	c.observe(operation, c.imageModel, start, openai.Usage{}, err)
	if err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("image generation failed")
		return "", apperrors.WrapWithCode(err, apperrors.CodeUnavailable, fmt.Sprintf("%s generation failed", operation))
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", apperrors.Internalf("%s generation returned no image", operation)
	}
	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}

func (c *OpenAIClient) GenerateSceneImage(ctx context.Context, prompt string) (string, error) {
	full := fmt.Sprintf("Concept art, cinematic lighting, highly detailed scene: %s", prompt)
	return c.generateImage(ctx, "scene_image", full, openai.CreateImageSize1792x1024)
}

func (c *OpenAIClient) GenerateAvatarImage(ctx context.Context, description, race, class string) (string, error) {
	full := fmt.Sprintf(`Full body RPG character portrait of a %s %s.
Appearance details: %s.
Style: High fantasy digital art, detailed, dramatic lighting, isolated on simple background, character concept art.`, race, class, description)
	return c.generateImage(ctx, "avatar_image", full, openai.CreateImageSize1024x1024)
}

func (c *OpenAIClient) GenerateMapImage(ctx context.Context, description string) (string, error) {
	full := fmt.Sprintf("Top down battle map, orthographic, rpg, d&d, grid overlay, 2d game asset: %s", description)
	return c.generateImage(ctx, "map_image", full, openai.CreateImageSize1024x1024)
}

func (c *OpenAIClient) GenerateLocationTitle(ctx context.Context, description string) (string, error) {
	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.textModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: locationTitlePrompt(description)},
		},
	})
	c.observe("location_title", c.textModel, start, resp.Usage, err)
	if err != nil {
		log.Error().Err(err).Msg("location title generation failed")
		return "", apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "location title generation failed")
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.Internal("location title generation returned no choices")
	}
	title := strings.TrimSpace(strings.Trim(resp.Choices[0].Message.Content, `"`))
	if title == "" {
		title = "Unknown Realm"
	}
	return title, nil
}

// truncateRunes caps text at limit bytes without splitting a UTF-8
// sequence, backing up to the nearest rune start
func truncateRunes(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}

func (c *OpenAIClient) GenerateSpeech(ctx context.Context, text string) ([]byte, error) {
	text = truncateRunes(text, maxSpeechChars)

	start := time.Now()
	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(c.ttsModel),
		Input: text,
		Voice: openai.VoiceOnyx,
	})
	c.observe("speech", c.ttsModel, start, openai.Usage{}, err)
	if err != nil {
		log.Error().Err(err).Msg("speech generation failed")
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "speech generation failed")
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read speech audio")
	}
	return audio, nil
}
