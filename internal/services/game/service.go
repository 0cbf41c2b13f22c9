package game

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/dice"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/characters"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/gamestates"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

// rollRequestRegex detects narration that asks the player for a die
// roll and arms the roll gate.
var rollRequestRegex = regexp.MustCompile(`(?i)(?:make|roll)\s+(?:a|an)?\s*.*?(?:check|save|throw)|DC\s*:?\s*\d+`)

const (
	dmSenderID   = "ai"
	dmSenderName = "Dungeon Master"

	systemSenderID   = "system"
	systemSenderName = "System"

	// Narration shorter than this never triggers a location retitle
	retitleMinLength = 100

	// Retitle fires when a random draw exceeds this threshold
	retitleChance = 0.7

	// Only the opening narration is fed to the title generator
	retitleExcerptLength = 200
)

// CreateSessionInput describes a new game session
type CreateSessionInput struct {
	OwnerID      string
	CharacterID  string
	Genre        entities.GameGenre
	AIEnabled    bool
	VoiceEnabled bool
}

// SubmitResult is the outcome of a player turn. Speech carries
// synthesized narration audio when voice mode is on.
type SubmitResult struct {
	State  *entities.GameState
	Speech []byte
}

// Service runs game sessions and the turn loop
type Service interface {
	// CreateSession stores a fresh session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*entities.GameState, error)

	// StartSession seeds the opening narration, location, and scene image
	StartSession(ctx context.Context, ownerID, sessionID string) (*entities.GameState, error)

	// Get retrieves an owned session
	Get(ctx context.Context, ownerID, sessionID string) (*entities.GameState, error)

	// List retrieves all sessions for an owner
	List(ctx context.Context, ownerID string) ([]*entities.GameState, error)

	// SubmitMessage runs one player turn through the narrator
	SubmitMessage(ctx context.Context, ownerID, sessionID, text string) (*SubmitResult, error)

	// SubmitRoll resolves a pending roll request with a d20
	SubmitRoll(ctx context.Context, ownerID, sessionID string) (*SubmitResult, error)

	// MoveToken repositions a battle map token
	MoveToken(ctx context.Context, ownerID, sessionID, tokenID string, x, y int) (*entities.GameState, error)

	// PostSystemMessage appends an out-of-band system line to the transcript
	PostSystemMessage(ctx context.Context, ownerID, sessionID, content string) (*entities.GameState, error)

	// SaveNote copies a transcript message into the saved notes
	SaveNote(ctx context.Context, ownerID, sessionID, messageID string) (*entities.GameState, error)

	// DeleteNote removes a saved note
	DeleteNote(ctx context.Context, ownerID, sessionID, noteID string) (*entities.GameState, error)
}

type service struct {
	sessions   gamestates.Repository
	characters characters.Repository
	gateway    genai.Client
	roller     dice.Roller
	uuidGen    uuid.Generator
	random     *rand.Rand
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	SessionRepository   gamestates.Repository
	CharacterRepository characters.Repository
	Gateway             genai.Client // optional, manual GM mode only if nil
	Roller              dice.Roller
	UUIDGenerator       uuid.Generator
	Random              *rand.Rand // optional, defaults to a time-seeded source
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.SessionRepository == nil {
		panic("session repository is required")
	}
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}

	svc := &service{
		sessions:   cfg.SessionRepository,
		characters: cfg.CharacterRepository,
		gateway:    cfg.Gateway,
		roller:     cfg.Roller,
		uuidGen:    cfg.UUIDGenerator,
		random:     cfg.Random,
	}
	if svc.random == nil {
		svc.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return svc
}

func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*entities.GameState, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}
	if input.AIEnabled && s.gateway == nil {
		return nil, apperrors.FailedPrecondition("AI narration is not available")
	}

	genre := input.Genre
	if !genre.Valid() {
		genre = entities.GenreFantasy
	}

	state := &entities.GameState{
		ID:           s.uuidGen.New(),
		OwnerID:      input.OwnerID,
		CharacterID:  input.CharacterID,
		Genre:        genre,
		AIEnabled:    input.AIEnabled,
		VoiceEnabled: input.VoiceEnabled,
		LocationName: genre.InitialLocation(),
		// The owner holds the only seat, so the session opens unblocked
		Turn: entities.TurnFree,
	}
	if err := s.sessions.Create(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) StartSession(ctx context.Context, ownerID, sessionID string) (*entities.GameState, error) {
	state, err := s.getOwned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.Transcript) > 0 {
		return state, nil
	}

	if state.AIEnabled {
		state.AppendMessage(&entities.ChatMessage{
			ID:         s.uuidGen.New(),
			SenderID:   dmSenderID,
			SenderName: dmSenderName,
			Role:       entities.MessageRoleModel,
			Content:    state.Genre.StartMessage(),
			Kind:       entities.MessageKindText,
			Timestamp:  time.Now(),
		})
	} else {
		hostName := "The Host"
		if character := s.loadCharacter(ctx, state.CharacterID); character != nil {
			hostName = character.Name
		}
		state.AppendMessage(&entities.ChatMessage{
			ID:         s.uuidGen.New(),
			SenderID:   systemSenderID,
			SenderName: systemSenderName,
			Role:       entities.MessageRoleSystem,
			Content:    fmt.Sprintf("Campaign started. Manual Mode Active. %s is the Game Master. Use the Arcane Tools to manage the world!", hostName),
			Kind:       entities.MessageKindText,
			Timestamp:  time.Now(),
		})
	}

	if s.gateway != nil {
		prompt := fmt.Sprintf("%s setting, %s, cinematic, detailed", state.Genre, state.LocationName)
		imageURL, err := s.gateway.GenerateSceneImage(ctx, prompt)
		if err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to generate opening scene image")
		} else {
			state.SceneImageURL = imageURL
		}
	}

	if err := s.sessions.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) Get(ctx context.Context, ownerID, sessionID string) (*entities.GameState, error) {
	return s.getOwned(ctx, ownerID, sessionID)
}

func (s *service) List(ctx context.Context, ownerID string) ([]*entities.GameState, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}
	return s.sessions.GetByOwner(ctx, ownerID)
}

func (s *service) SubmitMessage(ctx context.Context, ownerID, sessionID, text string) (*SubmitResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.InvalidArgument("message text is required")
	}

	state, err := s.getOwned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	switch state.Turn {
	case entities.TurnWaiting:
		return nil, apperrors.FailedPrecondition("it is not your turn")
	case entities.TurnRollRequired:
		return nil, apperrors.FailedPrecondition("a die roll is required before acting")
	}

	return s.submit(ctx, state, text, entities.MessageKindText)
}

func (s *service) SubmitRoll(ctx context.Context, ownerID, sessionID string) (*SubmitResult, error) {
	state, err := s.getOwned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Turn != entities.TurnRollRequired {
		return nil, apperrors.FailedPrecondition("no roll is pending")
	}

	result, err := s.roller.Roll(1, 20, 0)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to roll d20")
	}

	// Clear the gate before forwarding so the roll text passes as a
	// normal player turn
	state.Turn = entities.TurnFree
	return s.submit(ctx, state, fmt.Sprintf("I rolled a %d (d20).", result.Total), entities.MessageKindRoll)
}

// submit appends a player message and, in AI mode, runs a full
// narrator turn: tool calls, roll gating, and concurrent side effects.
func (s *service) submit(ctx context.Context, state *entities.GameState, text string, kind entities.MessageKind) (*SubmitResult, error) {
	character := s.loadCharacter(ctx, state.CharacterID)

	senderID := state.OwnerID
	senderName := "Player"
	if character != nil {
		senderID = character.ID
		senderName = character.Name
	}

	history := make([]*entities.ChatMessage, len(state.Transcript))
	copy(history, state.Transcript)

	state.AppendMessage(&entities.ChatMessage{
		ID:         s.uuidGen.New(),
		SenderID:   senderID,
		SenderName: senderName,
		Role:       entities.MessageRoleUser,
		Content:    text,
		Kind:       kind,
		Timestamp:  time.Now(),
	})

	if !state.AIEnabled || s.gateway == nil {
		if err := s.sessions.Update(ctx, state); err != nil {
			return nil, err
		}
		return &SubmitResult{State: state}, nil
	}

	// Early turns carry a character context tag so the narrator knows
	// who it is talking to
	prompt := text
	if character != nil && len(history) < 3 {
		prompt = fmt.Sprintf("[Context: I am playing a %s %s] %s", character.Race, character.Class, text)
	}

	reply, err := s.gateway.ChatWithDM(ctx, history, prompt, state.Genre)
	if err != nil {
		// Narrator failures leave the player turn recorded with no update
		log.Error().Err(err).Str("session_id", state.ID).Msg("narrator turn failed")
		if updateErr := s.sessions.Update(ctx, state); updateErr != nil {
			return nil, updateErr
		}
		return &SubmitResult{State: state}, nil
	}

	if character != nil && len(reply.ToolCalls) > 0 {
		updates := applyToolCalls(character, reply.ToolCalls, s.uuidGen)
		if len(updates) > 0 {
			if err := s.characters.Update(ctx, character); err != nil {
				return nil, err
			}
			state.AppendMessage(&entities.ChatMessage{
				ID:         s.uuidGen.New(),
				SenderID:   systemSenderID,
				SenderName: systemSenderName,
				Role:       entities.MessageRoleSystem,
				Content:    fmt.Sprintf("[Auto-Update] %s", strings.Join(updates, ", ")),
				Kind:       entities.MessageKindText,
				Timestamp:  time.Now(),
			})
		}
	}

	state.AppendMessage(&entities.ChatMessage{
		ID:         s.uuidGen.New(),
		SenderID:   dmSenderID,
		SenderName: dmSenderName,
		Role:       entities.MessageRoleModel,
		Content:    reply.Text,
		Kind:       entities.MessageKindText,
		Timestamp:  time.Now(),
	})

	if rollRequestRegex.MatchString(reply.Text) {
		state.Turn = entities.TurnRollRequired
	} else {
		state.Turn = entities.TurnFree
	}

	if err := s.sessions.Update(ctx, state); err != nil {
		return nil, err
	}

	speech := s.runSideEffects(ctx, state, character, reply.Text)
	if err := s.sessions.Update(ctx, state); err != nil {
		return nil, err
	}
	return &SubmitResult{State: state, Speech: speech}, nil
}

// runSideEffects fans out the post-narration work: map analysis plus
// map image, location retitle, and speech synthesis. All of it is
// best-effort; failures are logged and the turn proceeds.
func (s *service) runSideEffects(ctx context.Context, state *entities.GameState, character *entities.Character, narration string) []byte {
	wantRetitle := len(narration) > retitleMinLength && s.random.Float64() > retitleChance

	var (
		battleMap *entities.BattleMapState
		newTitle  string
		speech    []byte
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		battleMap = s.buildBattleMap(gctx, state, character, narration)
		return nil
	})
	if wantRetitle {
		g.Go(func() error {
			excerpt := narration
			if len(excerpt) > retitleExcerptLength {
				excerpt = excerpt[:retitleExcerptLength]
			}
			title, err := s.gateway.GenerateLocationTitle(gctx, excerpt)
			if err != nil {
				log.Warn().Err(err).Str("session_id", state.ID).Msg("location retitle failed")
				return nil
			}
			newTitle = title
			return nil
		})
	}
	if state.VoiceEnabled {
		g.Go(func() error {
			audio, err := s.gateway.GenerateSpeech(gctx, narration)
			if err != nil {
				log.Warn().Err(err).Str("session_id", state.ID).Msg("speech synthesis failed")
				return nil
			}
			speech = audio
			return nil
		})
	}
	_ = g.Wait() // goroutines swallow their own errors

	if battleMap != nil {
		state.Map = battleMap
	}
	if newTitle != "" {
		state.LocationName = newTitle
	}
	return speech
}

// buildBattleMap asks the narrator whether the scene needs a tactical
// map and, if so, generates one with starting token positions.
func (s *service) buildBattleMap(ctx context.Context, state *entities.GameState, character *entities.Character, narration string) *entities.BattleMapState {
	analysis, err := s.gateway.AnalyzeSceneForMap(ctx, narration)
	if err != nil {
		log.Warn().Err(err).Str("session_id", state.ID).Msg("map analysis failed")
		return nil
	}
	if !analysis.NeedsMap || analysis.MapDescription == "" {
		return nil
	}

	imageURL, err := s.gateway.GenerateMapImage(ctx, analysis.MapDescription)
	if err != nil {
		log.Warn().Err(err).Str("session_id", state.ID).Msg("map image generation failed")
		return nil
	}

	playerToken := &entities.Token{
		ID:   state.OwnerID,
		Kind: entities.TokenKindPlayer,
		X:    2,
		Y:    2,
		Name: "Player",
	}
	if character != nil {
		playerToken.ID = character.ID
		playerToken.Name = character.Name
		playerToken.Avatar = character.AvatarURL
	}
	tokens := []*entities.Token{playerToken}
	if analysis.SceneType == entities.SceneTypeCombat {
		tokens = append(tokens, &entities.Token{
			ID:    "enemy1",
			Kind:  entities.TokenKindEnemy,
			X:     4,
			Y:     4,
			Name:  "Enemy",
			Color: "#ef4444",
		})
	}

	gridWidth := analysis.GridWidth
	if gridWidth <= 0 {
		gridWidth = 8
	}
	gridHeight := analysis.GridHeight
	if gridHeight <= 0 {
		gridHeight = 8
	}

	return &entities.BattleMapState{
		ImageURL:   imageURL,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Tokens:     tokens,
	}
}

func (s *service) MoveToken(ctx context.Context, ownerID, sessionID, tokenID string, x, y int) (*entities.GameState, error) {
	state, err := s.getOwned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Map == nil {
		return nil, apperrors.FailedPrecondition("session has no battle map")
	}
	token := state.Map.FindToken(tokenID)
	if token == nil {
		return nil, apperrors.NotFoundf("token %s not found", tokenID)
	}
	token.X = x
	token.Y = y

	if err := s.sessions.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) PostSystemMessage(ctx context.Context, ownerID, sessionID, content string) (*entities.GameState, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.InvalidArgument("content is required")
	}
	state, err := s.getOwned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	state.AppendMessage(&entities.ChatMessage{
		ID:         s.uuidGen.New(),
		SenderID:   systemSenderID,
		SenderName: systemSenderName,
		Role:       entities.MessageRoleSystem,
		Content:    content,
		Kind:       entities.MessageKindText,
		Timestamp:  time.Now(),
	})

	if err := s.sessions.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) SaveNote(ctx context.Context, ownerID, sessionID, messageID string) (*entities.GameState, error) {
	state, err := s.getOwned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	for _, note := range state.SavedNotes {
		if note.ID == messageID {
			return state, nil
		}
	}

	var found *entities.ChatMessage
	for _, msg := range state.Transcript {
		if msg.ID == messageID {
			found = msg
			break
		}
	}
	if found == nil {
		return nil, apperrors.NotFoundf("message %s not found", messageID)
	}
	state.SaveNote(found)

	if err := s.sessions.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) DeleteNote(ctx context.Context, ownerID, sessionID, noteID string) (*entities.GameState, error) {
	state, err := s.getOwned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if !state.DeleteNote(noteID) {
		return nil, apperrors.NotFoundf("note %s not found", noteID)
	}

	if err := s.sessions.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) getOwned(ctx context.Context, ownerID, sessionID string) (*entities.GameState, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.OwnerID != ownerID {
		return nil, apperrors.PermissionDeniedf("session %s does not belong to %s", sessionID, ownerID).
			WithMeta("session_id", sessionID)
	}
	return state, nil
}

// loadCharacter fetches the session's character, tolerating sessions
// that run without one
func (s *service) loadCharacter(ctx context.Context, characterID string) *entities.Character {
	if characterID == "" {
		return nil
	}
	character, err := s.characters.Get(ctx, characterID)
	if err != nil {
		log.Warn().Err(err).Str("character_id", characterID).Msg("failed to load session character")
		return nil
	}
	return character
}
