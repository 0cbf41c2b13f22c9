package dnd5e

import "github.com/arcanenexus/arcane-nexus/internal/entities"

// Client looks up SRD reference data and maps it into library items.
// Searches are best-effort: an empty result is normal, errors come from
// the upstream API only.
type Client interface {
	// SearchSpells finds spells matching the query, optionally filtered
	// by class (SRD class name, e.g. "Wizard")
	SearchSpells(query, class string) ([]*entities.LibraryItem, error)

	// SearchMonsters finds monsters matching the query
	SearchMonsters(query string) ([]*entities.LibraryItem, error)

	// SearchWeapons finds weapons matching the query
	SearchWeapons(query string) ([]*entities.LibraryItem, error)

	// SearchArmor finds armor matching the query
	SearchArmor(query string) ([]*entities.LibraryItem, error)

	// SearchClasses finds character classes matching the query
	SearchClasses(query string) ([]*entities.LibraryItem, error)

	// SearchRaces finds races matching the query
	SearchRaces(query string) ([]*entities.LibraryItem, error)
}
