package dnd5e

import (
	"net/http"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

// TODO: add context to functions once the upstream client supports it

// maxDetailFetches caps how many per-item detail requests a single
// search fans out into
const maxDetailFetches = 12

type client struct {
	client dnd5e.Interface
}

// Config holds configuration for the SRD client
type Config struct {
	HTTPClient *http.Client
	BaseURL    string // empty uses the public SRD API
}

// New creates a new SRD reference data client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperrors.InvalidArgument("cfg is required")
	}

	// The upstream client joins paths by plain concatenation
	baseURL := cfg.BaseURL
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	apiClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  cfg.HTTPClient,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &client{client: apiClient}, nil
}

// matchRefs filters reference items by case-insensitive name substring
// and caps the result for detail fetching. An empty query matches all.
func matchRefs(refs []*apiEntities.ReferenceItem, query string) []*apiEntities.ReferenceItem {
	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]*apiEntities.ReferenceItem, 0, maxDetailFetches)
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(ref.Name), query) {
			continue
		}
		matched = append(matched, ref)
		if len(matched) == maxDetailFetches {
			break
		}
	}
	return matched
}

func (c *client) SearchSpells(query, class string) ([]*entities.LibraryItem, error) {
	refs, err := c.client.ListSpells(&dnd5e.ListSpellsInput{Class: class})
	if err != nil {
		return nil, err
	}

	items := make([]*entities.LibraryItem, 0, maxDetailFetches)
	for _, ref := range matchRefs(refs, query) {
		spell, err := c.client.GetSpell(ref.Key)
		if err != nil {
			log.Warn().Err(err).Str("spell", ref.Key).Msg("skipping spell detail fetch")
			continue
		}
		items = append(items, apiSpellToLibraryItem(spell))
	}
	return items, nil
}

func (c *client) SearchMonsters(query string) ([]*entities.LibraryItem, error) {
	refs, err := c.client.ListMonstersWithFilter(&dnd5e.ListMonstersInput{})
	if err != nil {
		return nil, err
	}

	items := make([]*entities.LibraryItem, 0, maxDetailFetches)
	for _, ref := range matchRefs(refs, query) {
		monster, err := c.client.GetMonster(ref.Key)
		if err != nil {
			log.Warn().Err(err).Str("monster", ref.Key).Msg("skipping monster detail fetch")
			continue
		}
		items = append(items, apiMonsterToLibraryItem(monster))
	}
	return items, nil
}

// searchEquipment looks up an equipment category and converts entries
// that pass the type filter
func (c *client) searchEquipment(category, query string, convert func(any) *entities.LibraryItem) ([]*entities.LibraryItem, error) {
	categoryData, err := c.client.GetEquipmentCategory(category)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.LibraryItem, 0, maxDetailFetches)
	for _, ref := range matchRefs(categoryData.Equipment, query) {
		equip, err := c.client.GetEquipment(ref.Key)
		if err != nil {
			log.Warn().Err(err).Str("equipment", ref.Key).Msg("skipping equipment detail fetch")
			continue
		}
		if item := convert(equip); item != nil {
			items = append(items, item)
			if len(items) == maxDetailFetches {
				break
			}
		}
	}
	return items, nil
}

func (c *client) SearchWeapons(query string) ([]*entities.LibraryItem, error) {
	return c.searchEquipment("weapon", query, func(equip any) *entities.LibraryItem {
		weapon, ok := equip.(*apiEntities.Weapon)
		if !ok {
			return nil
		}
		return apiWeaponToLibraryItem(weapon)
	})
}

func (c *client) SearchArmor(query string) ([]*entities.LibraryItem, error) {
	return c.searchEquipment("armor", query, func(equip any) *entities.LibraryItem {
		armor, ok := equip.(*apiEntities.Armor)
		if !ok {
			return nil
		}
		return apiArmorToLibraryItem(armor)
	})
}

func (c *client) SearchClasses(query string) ([]*entities.LibraryItem, error) {
	refs, err := c.client.ListClasses()
	if err != nil {
		return nil, err
	}

	items := make([]*entities.LibraryItem, 0, maxDetailFetches)
	for _, ref := range matchRefs(refs, query) {
		class, err := c.client.GetClass(ref.Key)
		if err != nil {
			log.Warn().Err(err).Str("class", ref.Key).Msg("skipping class detail fetch")
			continue
		}
		items = append(items, apiClassToLibraryItem(class))
	}
	return items, nil
}

func (c *client) SearchRaces(query string) ([]*entities.LibraryItem, error) {
	refs, err := c.client.ListRaces()
	if err != nil {
		return nil, err
	}

	items := make([]*entities.LibraryItem, 0, maxDetailFetches)
	for _, ref := range matchRefs(refs, query) {
		race, err := c.client.GetRace(ref.Key)
		if err != nil {
			log.Warn().Err(err).Str("race", ref.Key).Msg("skipping race detail fetch")
			continue
		}
		items = append(items, apiRaceToLibraryItem(race))
	}
	return items, nil
}
