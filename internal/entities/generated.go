package entities

// Quest is an AI-generated quest outline
type Quest struct {
	Title       string   `json:"title"`
	Hook        string   `json:"hook"`
	Difficulty  string   `json:"difficulty"`
	Enemies     []string `json:"enemies"`
	Rewards     []string `json:"rewards"`
	Description string   `json:"description"`
}

// GeneratedNPC is an AI-generated non-player character
type GeneratedNPC struct {
	Name        string   `json:"name"`
	Race        string   `json:"race"`
	Role        string   `json:"role"`
	Personality string   `json:"personality"`
	Secret      string   `json:"secret"`
	Inventory   []string `json:"inventory"`
}

// Story is an AI-generated narrative piece
type Story struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Hook    string `json:"hook"`
}

// CharacterConcept is an AI-generated character creation seed
type CharacterConcept struct {
	Name       string             `json:"name"`
	Concept    string             `json:"concept"`
	Race       string             `json:"race"`
	Class      string             `json:"class"`
	Background string             `json:"background"`
	Spells     string             `json:"spells,omitempty"`
	Appearance *AppearanceDetails `json:"appearance,omitempty"`
	Desire     string             `json:"desire,omitempty"`
	Flaw       string             `json:"flaw,omitempty"`
}
