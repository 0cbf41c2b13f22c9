package genai

import (
	"fmt"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

func genreChatInstruction(genre entities.GameGenre) string {
	switch genre {
	case entities.GenreSciFi:
		return "The setting is a high-tech Sci-Fi universe with spaceships and blasters. Adapt 5e rules to tech (e.g., Magic Missile -> Homing Dart)."
	case entities.GenreCyberpunk:
		return "The setting is a gritty Cyberpunk dystopia with neon lights, hackers, and cybernetics. Adapt 5e rules to tech."
	case entities.GenrePostApocalypse:
		return "The setting is a harsh Post-Apocalyptic wasteland. Resources are scarce, survival is key."
	case entities.GenreEpicWar:
		return "The setting is a massive active battlefield. The tone is gritty, urgent, and militaristic."
	case entities.GenreEldritchHorror:
		return "The setting is filled with cosmic horror and madness. The tone is dark, suspenseful, and terrifying."
	case entities.GenreSteampunk:
		return "The setting is Victorian-era technology with steam power and gears. Magic is industrial."
	case entities.GenreWestern:
		return "The setting is the Wild West with a fantasy twist. Revolvers, saloons, and outlaws."
	default:
		return "The setting is traditional High Fantasy Dungeons & Dragons."
	}
}

func dmSystemPrompt(genre entities.GameGenre) string {
	return fmt.Sprintf(`You are an expert Dungeon Master for a Tabletop RPG.
%s

INTERACTIVITY RULES:
- You have access to tools to update the player's sheet: 'modify_hp', 'modify_inventory', 'modify_gold'.
- ALWAYS use 'modify_hp' if the player takes damage or heals in the narrative.
- ALWAYS use 'modify_inventory' if the player finds, drops, or uses an item.
- ALWAYS use 'modify_gold' if the player spends or earns money/gold/credits.
- Do not ask for permission to update stats; if it happens in the story, execute the tool.

GENERAL RULES:
- You are helpful, creative, and strictly adhere to 5e mechanics (or their thematic equivalents).
- Keep responses concise but atmospheric.
- IMPORTANT: When requiring a die roll from the player, use the following format exactly: "Make a [Ability Name] check." or "Make a [Save Name] save." Include DC.`, genreChatInstruction(genre))
}

const librarySystemPrompt = `You are an expert Dungeons & Dragons 5th Edition game master and content designer.
Your task is to generate a single, complete reference entry for a D&D 5e game app.

The user will specify a category and a name.
Return ONLY valid JSON, no markdown, no explanation, no extra text.

Use official D&D 5e rules from the System Reference Document (SRD).
If the item is not in the SRD, invent a balanced, thematic entry that fits D&D 5e.

Include:
- Mechanical accuracy (numbers, bonuses, rules)
- Immersive flavor text (2-3 sentences of in-world description, key "flavor")
- AI-friendly image prompt (key "image_prompt")

Use snake_case JSON keys. Common keys: "name", "description", "flavor", "image_prompt".
Spells also use: "level" (number), "school", "range", "duration", "components", "classes" (array), "damage".
Monsters also use: "type", "alignment", "armor_class" (number), "hit_points" (e.g. "50 (5d10 + 10)"), "speed", "cr", "stats" (object with STR/DEX/CON/INT/WIS/CHA numbers), "traits" (array), "actions" (array of {"name","description"}), "senses", "languages" (array).
Weapons also use: "damage", "properties" (array), "cost", "weight".
Armor also uses: "ac_bonus" (number), "stealth_disadvantage" (boolean), "cost", "weight".
Classes also use: "hit_die" (e.g. "d10"), "primary_ability", "saving_throws" (array), "proficiencies" (array), "key_features" (array of {"level","name","description"}).
Races also use: "speed", "ability_bonuses" (object), "traits" (array), "subraces" (array).`

const mapAnalysisSystemPrompt = `You are the AI Dungeon Master for a digital D&D 5e game.
Your job is to analyze the current scene and decide whether a top-down tactical battle map should be generated.

Follow these rules:

1. DO generate a map ONLY if the scene involves:
   - Combat (e.g., enemies attacking, initiative, rolling to hit)
   - Tactical movement (e.g., "move across the room", "climb the ledge", "avoid the trap")
   - Spatial puzzles (e.g., "arrange the stones", "navigate the maze")
   - Clear grid-based positioning (e.g., "the chamber is 30 ft wide")

2. DO NOT generate a map if the scene is:
   - Social interaction (e.g., tavern talk, bargaining, diplomacy)
   - Resting, shopping, planning, or story narration
   - Abstract or non-physical (e.g., "you feel watched", "a vision appears")

3. If a map is needed, also generate:
   - A concise description for an image generator
   - Grid size (width x height in 5-ft squares, typically 4x4 to 8x8)

4. Output Format:
   Return ONLY valid JSON, no extra text, no markdown.

   {
     "needs_map": true,
     "scene_type": "combat" | "exploration" | "social" | "rest",
     "map_description": "string (only if needs_map=true)",
     "grid_width": number (only if needs_map=true),
     "grid_height": number (only if needs_map=true)
   }

5. Image Description Style (if generated):
   - Top-down orthographic view
   - Clear white grid lines on natural background
   - No characters, tokens, or labels
   - Thematic to the scene (e.g., dungeon, forest, ruins)
   - Example: "Top-down view of a 6x5 grid dungeon room with broken pillars at B2 and E4, a glowing altar at D3, and cracked floor tiles. D&D 5e style, parchment texture, 1024x1024."`

func questPrompt(level int, theme string, genre entities.GameGenre) string {
	return fmt.Sprintf(`Generate a D&D 5e style quest for a party of level %d. Theme: %s. Genre: %s.
Return JSON with keys: "title", "hook", "difficulty", "description", "enemies" (array of strings), "rewards" (array of strings).`, level, theme, genre)
}

func npcPrompt(description string, genre entities.GameGenre) string {
	return fmt.Sprintf(`Create a unique NPC for a %s setting based on this description: %s
Return JSON with keys: "name", "race", "role", "personality", "secret", "inventory" (array of strings).`, genre, description)
}

func monsterPrompt(description, cr string, genre entities.GameGenre) string {
	return fmt.Sprintf(`Generate a balanced D&D 5e stat block for a monster in a %s setting.
Concept: %s.
Challenge Rating (CR): %s.
Return JSON with keys: "name", "type", "armor_class" (number), "hit_points" (e.g. "50 (5d10 + 10)"), "speed", "stats" (object with STR/DEX/CON/INT/WIS/CHA numbers), "traits" (array of strings), "actions" (array of {"name","description"}), "flavor".`, genre, description, cr)
}

func spellPrompt(description, level string, genre entities.GameGenre) string {
	return fmt.Sprintf(`Generate a D&D 5e spell for a %s setting.
Concept: %s.
Level: %s.
Return JSON with keys: "name", "school", "level" (number), "casting_time", "range", "components", "duration", "description", "classes" (array of strings).`, genre, description, level)
}

func itemPrompt(description, itemType string, genre entities.GameGenre) string {
	return fmt.Sprintf(`Generate a D&D 5e item (%s) for a %s setting.
Concept: %s.
Return JSON with keys: "name", "flavor", "description" (mechanics and rules), "cost", "weight", "properties" (array of strings), "damage", "ac_bonus" (number).`, itemType, genre, description)
}

func skillPrompt(description, attribute string, genre entities.GameGenre) string {
	return fmt.Sprintf(`Create a custom D&D 5e skill or feat for a %s setting.
Related Attribute: %s.
Concept: %s.
Return JSON with keys: "name", "description", "ability", "situations" (array of strings).`, genre, attribute, description)
}

func storyConstraint(length StoryLength) string {
	switch length {
	case StoryIntro:
		return "Write a compelling introduction or campaign hook. Keep it concise, under 100 words. Focus on setting the scene and the immediate call to action."
	case StoryLong:
		return "Write a detailed, immersive narrative. Aim for 600-800 words. Include dialogue, sensory details, and deep lore."
	default:
		return "Write a standard story scene or plot hook. Keep it around 300 words."
	}
}

func storyPrompt(prompt string, length StoryLength, genre entities.GameGenre) string {
	return fmt.Sprintf(`Write a story or plot hook for a %s D&D campaign.
Prompt: %s.
Constraint: %s.
Return JSON with keys: "title", "hook" (one sentence summary), "content".`, genre, prompt, storyConstraint(length))
}

func randomCharacterConstraints(genre entities.GameGenre) string {
	switch genre {
	case entities.GenreSciFi, entities.GenreCyberpunk:
		return `- Race must be one of: Human, Android, Cyborg, Alien
- Class must be one of: Soldier, Operative, Technomancer, Medic
- Background must be one of: Pilot, Hacker, Corp-Rat, Mercenary`
	case entities.GenrePostApocalypse:
		return `- Race must be one of: Survivor, Mutant, Synth, Ghoul
- Class must be one of: Scavenger, Marauder, Doctor, Psyker
- Background must be one of: Drifter, Raider, Vault Dweller, Mechanic`
	default:
		return `- Race must be one of: Human, Elf, Dwarf, Halfling
- Class must be one of: Fighter, Rogue, Wizard, Cleric
- Background must be one of: Soldier, Acolyte, Criminal, Folk Hero`
	}
}

func randomCharacterPrompt(genre entities.GameGenre) string {
	return fmt.Sprintf(`Generate a unique, creative RPG player character for a %s setting.
Strictly choose options based on these constraints:
%s

Return JSON with the following keys:
{
  "name": "string",
  "concept": "short character concept (max 15 words)",
  "race": "string",
  "class": "string",
  "background": "string",
  "spells": "string (comma separated list of 2-3 spells if spellcaster, else empty)",
  "appearance": {
     "hair": "string",
     "eyes": "string",
     "skin": "string",
     "height": "string",
     "weight": "string",
     "age": "string",
     "body_type": "string",
     "clothing": "string"
  },
  "desire": "string",
  "flaw": "string"
}`, genre, randomCharacterConstraints(genre))
}

func locationTitlePrompt(description string) string {
	return fmt.Sprintf(`Create a very short (2-5 words), atmospheric title for a location described as: "%s". Do not use quotes. Example: "The Dark Forest", "Sector 7 Slums". Return ONLY the title.`, description)
}
