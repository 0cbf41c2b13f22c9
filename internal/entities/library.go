package entities

// LibraryCategory selects which reference section an item belongs to
type LibraryCategory string

const (
	CategorySpells   LibraryCategory = "spells"
	CategoryMonsters LibraryCategory = "monsters"
	CategoryWeapons  LibraryCategory = "weapons"
	CategoryArmor    LibraryCategory = "armor"
	CategoryClasses  LibraryCategory = "classes"
	CategoryRaces    LibraryCategory = "races"
)

// LibraryAction is a named action on a monster entry
type LibraryAction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LibraryFeature is a leveled class feature
type LibraryFeature struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LibraryItem is a unified record for SRD lookups and AI-generated
// content. Only the fields relevant to the item's category are set.
type LibraryItem struct {
	Category    LibraryCategory `json:"category,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Slug        string          `json:"slug,omitempty"`
	ImagePrompt string          `json:"image_prompt,omitempty"`
	Flavor      string          `json:"flavor,omitempty"`

	// Monster fields
	HitPoints  string           `json:"hit_points,omitempty"` // often "7 (2d6)"
	ArmorClass int              `json:"armor_class,omitempty"`
	CR         string           `json:"cr,omitempty"`
	Type       string           `json:"type,omitempty"`
	Subtype    string           `json:"subtype,omitempty"`
	Alignment  string           `json:"alignment,omitempty"`
	Speed      string           `json:"speed,omitempty"`
	Stats      map[string]int   `json:"stats,omitempty"`
	Actions    []*LibraryAction `json:"actions,omitempty"`
	Traits     []string         `json:"traits,omitempty"`
	Senses     string           `json:"senses,omitempty"`
	Languages  []string         `json:"languages,omitempty"`

	// Spell fields
	Level      int      `json:"level,omitempty"`
	School     string   `json:"school,omitempty"`
	Range      string   `json:"range,omitempty"`
	Duration   string   `json:"duration,omitempty"`
	Components string   `json:"components,omitempty"`
	Classes    []string `json:"classes,omitempty"`

	// Weapon and armor fields
	Damage               string   `json:"damage,omitempty"`
	Properties           []string `json:"properties,omitempty"`
	Cost                 string   `json:"cost,omitempty"`
	Weight               string   `json:"weight,omitempty"`
	ACBonus              int      `json:"ac_bonus,omitempty"`
	StealthDisadvantage  bool     `json:"stealth_disadvantage,omitempty"`

	// Skill fields
	Ability    string   `json:"ability,omitempty"`
	Situations []string `json:"situations,omitempty"`

	// Class and race fields
	HitDie         string            `json:"hit_die,omitempty"`
	PrimaryAbility string            `json:"primary_ability,omitempty"`
	Proficiencies  []string          `json:"proficiencies,omitempty"`
	SavingThrows   []string          `json:"saving_throws,omitempty"`
	KeyFeatures    []*LibraryFeature `json:"key_features,omitempty"`
	Subraces       []string          `json:"subraces,omitempty"`
	AbilityBonuses map[string]int    `json:"ability_bonuses,omitempty"`
}
