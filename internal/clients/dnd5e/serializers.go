package dnd5e

import (
	"fmt"
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

func apiSpellToLibraryItem(input *apiEntities.Spell) *entities.LibraryItem {
	if input == nil {
		return nil
	}

	item := &entities.LibraryItem{
		Category: entities.CategorySpells,
		Name:     input.Name,
		Slug:     input.Key,
		Level:    input.SpellLevel,
		Range:    input.Range,
		Duration: input.Duration,
		Classes:  referenceNames(input.SpellClasses),
	}

	if input.SpellSchool != nil {
		item.School = input.SpellSchool.Name
	}

	var parts []string
	if input.CastingTime != "" {
		parts = append(parts, "Casting Time: "+input.CastingTime)
	}
	if input.Concentration {
		parts = append(parts, "Concentration")
	}
	if input.Ritual {
		parts = append(parts, "Ritual")
	}
	item.Description = strings.Join(parts, ". ")

	return item
}

func apiMonsterToLibraryItem(input *apiEntities.Monster) *entities.LibraryItem {
	if input == nil {
		return nil
	}

	item := &entities.LibraryItem{
		Category:   entities.CategoryMonsters,
		Name:       input.Name,
		Slug:       input.Key,
		Type:       input.Type,
		ArmorClass: input.ArmorClass,
		HitPoints:  fmt.Sprintf("%d (%s)", input.HitPoints, input.HitDice),
		CR:         formatCR(input.ChallengeRating),
	}

	for _, action := range input.MonsterActions {
		if action == nil {
			continue
		}
		item.Actions = append(item.Actions, &entities.LibraryAction{
			Name:        action.Name,
			Description: action.Description,
		})
	}

	return item
}

// formatCR renders a challenge rating the way stat blocks print them,
// with the fractional values as fractions
func formatCR(cr float32) string {
	switch cr {
	case 0.125:
		return "1/8"
	case 0.25:
		return "1/4"
	case 0.5:
		return "1/2"
	default:
		return fmt.Sprintf("%g", cr)
	}
}

func apiWeaponToLibraryItem(input *apiEntities.Weapon) *entities.LibraryItem {
	if input == nil {
		return nil
	}

	item := &entities.LibraryItem{
		Category:    entities.CategoryWeapons,
		Name:        input.Name,
		Slug:        input.Key,
		Description: fmt.Sprintf("Category: %s %s", input.WeaponCategory, input.WeaponRange),
		Cost:        formatCost(input.Cost),
		Weight:      fmt.Sprintf("%g lb", input.Weight),
		Properties:  referenceNames(input.Properties),
	}

	if input.Damage != nil {
		damageType := ""
		if input.Damage.DamageType != nil {
			damageType = input.Damage.DamageType.Name
		}
		item.Damage = strings.TrimSpace(fmt.Sprintf("%s %s", input.Damage.DamageDice, damageType))
	}

	return item
}

func apiArmorToLibraryItem(input *apiEntities.Armor) *entities.LibraryItem {
	if input == nil {
		return nil
	}

	item := &entities.LibraryItem{
		Category:    entities.CategoryArmor,
		Name:        input.Name,
		Slug:        input.Key,
		Description: fmt.Sprintf("Category: %s", input.ArmorCategory),
		Cost:        formatCost(input.Cost),
		Weight:      fmt.Sprintf("%g lb", input.Weight),
	}

	if input.ArmorClass != nil {
		item.ACBonus = input.ArmorClass.Base
		if input.ArmorClass.DexBonus {
			item.Description += ". Add DEX modifier"
		}
	}
	item.StealthDisadvantage = input.StealthDisadvantage

	return item
}

func apiClassToLibraryItem(input *apiEntities.Class) *entities.LibraryItem {
	if input == nil {
		return nil
	}

	return &entities.LibraryItem{
		Category:      entities.CategoryClasses,
		Name:          input.Name,
		Slug:          input.Key,
		HitDie:        fmt.Sprintf("d%d", input.HitDie),
		Description:   fmt.Sprintf("Hit Die: d%d", input.HitDie),
		Proficiencies: referenceNames(input.Proficiencies),
	}
}

func apiRaceToLibraryItem(input *apiEntities.Race) *entities.LibraryItem {
	if input == nil {
		return nil
	}

	item := &entities.LibraryItem{
		Category:    entities.CategoryRaces,
		Name:        input.Name,
		Slug:        input.Key,
		Description: fmt.Sprintf("Speed: %d ft", input.Speed),
	}

	if len(input.AbilityBonuses) > 0 {
		item.AbilityBonuses = make(map[string]int, len(input.AbilityBonuses))
		for _, bonus := range input.AbilityBonuses {
			if bonus == nil || bonus.AbilityScore == nil {
				continue
			}
			item.AbilityBonuses[strings.ToUpper(bonus.AbilityScore.Key)] = bonus.Bonus
		}
	}

	return item
}

func referenceNames(refs []*apiEntities.ReferenceItem) []string {
	if len(refs) == 0 {
		return nil
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != nil {
			names = append(names, ref.Name)
		}
	}
	return names
}

func formatCost(cost *apiEntities.Cost) string {
	if cost == nil {
		return ""
	}
	return fmt.Sprintf("%d %s", cost.Quantity, cost.Unit)
}
