package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Attribute is one of the six ability scores
type Attribute string

const (
	AttributeStrength     Attribute = "STR"
	AttributeDexterity    Attribute = "DEX"
	AttributeConstitution Attribute = "CON"
	AttributeIntelligence Attribute = "INT"
	AttributeWisdom       Attribute = "WIS"
	AttributeCharisma     Attribute = "CHA"
)

// Attributes lists the six ability scores in display order
var Attributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

// AbilityModifier converts an ability score to its modifier
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// HitPoints tracks current and maximum HP
type HitPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// AppearanceDetails describes a character's physical appearance
type AppearanceDetails struct {
	Hair     string `json:"hair,omitempty"`
	Eyes     string `json:"eyes,omitempty"`
	Skin     string `json:"skin,omitempty"`
	Height   string `json:"height,omitempty"`
	Weight   string `json:"weight,omitempty"`
	Age      string `json:"age,omitempty"`
	BodyType string `json:"body_type,omitempty"`
	Clothing string `json:"clothing,omitempty"`
}

// SpellList holds a caster's known spells by level
type SpellList struct {
	Cantrips []string `json:"cantrips"`
	Level1   []string `json:"level1"`
}

// Character is a player character sheet
type Character struct {
	ID         string             `json:"id"`
	OwnerID    string             `json:"owner_id"`
	Name       string             `json:"name"`
	Race       string             `json:"race"`
	Class      string             `json:"class"`
	Level      int                `json:"level"`
	HP         HitPoints          `json:"hp"`
	AC         int                `json:"ac"`
	Stats      map[Attribute]int  `json:"stats"`
	Skills     []string           `json:"skills"`
	Inventory  []*InventoryItem   `json:"inventory"`
	Notes      string             `json:"notes"`
	AvatarURL  string             `json:"avatar_url,omitempty"`
	Appearance *AppearanceDetails `json:"appearance,omitempty"`
	Spells     *SpellList         `json:"spells,omitempty"`
	Genre      GameGenre          `json:"genre,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// StatModifier returns the modifier for one of the character's abilities
func (c *Character) StatModifier(attr Attribute) int {
	return AbilityModifier(c.Stats[attr])
}

// ApplyHPDelta adjusts current HP, clamped to [0, max].
// Returns the effective change, which is zero when already at a bound.
func (c *Character) ApplyHPDelta(amount int) int {
	newCurrent := c.HP.Current + amount
	if newCurrent > c.HP.Max {
		newCurrent = c.HP.Max
	}
	if newCurrent < 0 {
		newCurrent = 0
	}

	diff := newCurrent - c.HP.Current
	c.HP.Current = newCurrent
	return diff
}

// AddItem appends a new unequipped item with quantity 1
func (c *Character) AddItem(id, name string) *InventoryItem {
	item := &InventoryItem{
		ID:       id,
		Name:     name,
		Equipped: false,
		Quantity: 1,
	}
	c.Inventory = append(c.Inventory, item)
	return item
}

// RemoveItemByName removes the first item whose name matches case-insensitively.
// Removing an absent item is a no-op.
func (c *Character) RemoveItemByName(name string) bool {
	lower := strings.ToLower(name)
	for i, item := range c.Inventory {
		if strings.ToLower(item.Name) == lower {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// FindItem returns the first item with the given ID
func (c *Character) FindItem(id string) *InventoryItem {
	for _, item := range c.Inventory {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// wealthNumberRegex extracts the first embedded integer from a wealth entry.
// Entries can carry arbitrary currency labels ("Wealth: 50 gp", "100 Credits").
var wealthNumberRegex = regexp.MustCompile(`-?\d+`)

// wealthPrefixRegex strips everything through the first number and any
// following whitespace, leaving the currency label
var wealthPrefixRegex = regexp.MustCompile(`(?s)^.*?-?\d+\s*`)

// isWealthName reports whether an inventory entry tracks currency
func isWealthName(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "wealth") {
		return true
	}
	for _, marker := range []string{"gold", "gp", "credits", "caps"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// AdjustWealth applies a currency delta to the character's wealth entry.
// The entry is reserialized as "Wealth: <value> <label>", preserving the
// currency label when one can be recovered and defaulting to "Gold".
// When no wealth entry exists one is created with the given ID.
// Returns false when an existing entry carries no parseable amount.
func (c *Character) AdjustWealth(amount int, newEntryID string) bool {
	var wealth *InventoryItem
	for _, item := range c.Inventory {
		if isWealthName(item.Name) {
			wealth = item
			break
		}
	}

	if wealth == nil {
		c.Inventory = append(c.Inventory, &InventoryItem{
			ID:       newEntryID,
			Name:     fmt.Sprintf("Wealth: %d Gold", amount),
			Equipped: false,
			Quantity: 1,
		})
		return true
	}

	match := wealthNumberRegex.FindString(wealth.Name)
	if match == "" {
		return false
	}

	currentVal, err := strconv.Atoi(match)
	if err != nil {
		return false
	}

	suffix := wealthPrefixRegex.ReplaceAllString(wealth.Name, "")
	if suffix == "" {
		suffix = "Gold"
	}
	wealth.Name = fmt.Sprintf("Wealth: %d %s", currentVal+amount, suffix)
	return true
}
