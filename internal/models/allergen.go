// ABOUTME: Allergen represents one of the 9 tracked food allergen kinds
// ABOUTME: Derived exposure fields are maintained by the stat projector
package models

import "time"

// AllergenKind identifies one of the fixed allergen categories
type AllergenKind string

const (
	KindEgg     AllergenKind = "egg"
	KindDairy   AllergenKind = "dairy"
	KindSoy     AllergenKind = "soy"
	KindWheat   AllergenKind = "wheat"
	KindPeanut  AllergenKind = "peanut"
	KindTreeNut AllergenKind = "tree-nut"
	KindSesame  AllergenKind = "sesame"
	KindFish    AllergenKind = "fish"
	KindSeafood AllergenKind = "seafood"
)

// AllKinds returns the fixed allergen kinds in seed order
func AllKinds() []AllergenKind {
	return []AllergenKind{
		KindEgg, KindDairy, KindSoy, KindWheat, KindPeanut,
		KindTreeNut, KindSesame, KindFish, KindSeafood,
	}
}

// ValidKind reports whether k is one of the fixed allergen kinds
func ValidKind(k AllergenKind) bool {
	for _, kind := range AllKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// Allergen represents a tracked allergen with its derived exposure stats.
// FirstExposedAt and LastExposedAt are never written directly; they are
// recomputed from the feeding event history on every mutation.
// DaysSinceLastExposure is filled at read time and never stored.
type Allergen struct {
	ID                    string       `json:"id"`
	Kind                  AllergenKind `json:"kind"`
	Name                  string       `json:"name"`
	Emoji                 string       `json:"emoji"`
	Paused                bool         `json:"paused"`
	FirstExposedAt        *time.Time   `json:"first_exposed_at,omitempty"`
	LastExposedAt         *time.Time   `json:"last_exposed_at,omitempty"`
	DaysSinceLastExposure *int         `json:"days_since_last_exposure,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
	ModifiedAt            time.Time    `json:"modified_at"`
}

// AllergenID returns the stable row id for a kind ("allergen-<kind>"),
// so reseeding can never create kind duplicates
func AllergenID(kind AllergenKind) string {
	return "allergen-" + string(kind)
}

// DefaultAllergens returns the 9 pre-seeded allergen rows
func DefaultAllergens() []Allergen {
	defs := []struct {
		kind  AllergenKind
		name  string
		emoji string
	}{
		{KindEgg, "Egg", "🥚"},
		{KindDairy, "Dairy", "🥛"},
		{KindSoy, "Soy", "🫘"},
		{KindWheat, "Wheat", "🌾"},
		{KindPeanut, "Peanut", "🥜"},
		{KindTreeNut, "Tree Nut", "🌰"},
		{KindSesame, "Sesame", "🌱"},
		{KindFish, "Fish", "🐟"},
		{KindSeafood, "Seafood", "🦐"},
	}

	allergens := make([]Allergen, 0, len(defs))
	for _, d := range defs {
		allergens = append(allergens, Allergen{
			ID:    AllergenID(d.kind),
			Kind:  d.kind,
			Name:  d.name,
			Emoji: d.emoji,
		})
	}
	return allergens
}
