// pkg/core/unit.go
package core

import "strings"

// Faction is the kingdom a unit fights for
type Faction string

const (
	FactionBlue Faction = "blue"
	FactionRed  Faction = "red"
)

// Unit is an immutable catalog entry that can be enqueued
type Unit struct {
	ID      string  `json:"id"`
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	Faction Faction `json:"faction"`
}

// Label returns the symbol and name, as shown in notifications
func (u Unit) Label() string {
	return u.Symbol + " " + u.Name
}

// Catalog is the fixed list of units available for enqueuing
type Catalog struct {
	units []Unit
}

// NewCatalog creates a catalog holding a copy of units
func NewCatalog(units []Unit) *Catalog {
	c := &Catalog{units: make([]Unit, len(units))}
	copy(c.units, units)
	return c
}

// DefaultCatalog returns the eight troops of the blue and red kingdoms
func DefaultCatalog() *Catalog {
	return NewCatalog([]Unit{
		{ID: "1", Symbol: "⚔️", Name: "Knight", Faction: FactionBlue},
		{ID: "2", Symbol: "🏹", Name: "Archer", Faction: FactionBlue},
		{ID: "3", Symbol: "🧙", Name: "Wizard", Faction: FactionBlue},
		{ID: "4", Symbol: "🐉", Name: "Dragon", Faction: FactionBlue},
		{ID: "5", Symbol: "💀", Name: "Skeleton", Faction: FactionRed},
		{ID: "6", Symbol: "👹", Name: "Goblin", Faction: FactionRed},
		{ID: "7", Symbol: "🔥", Name: "Fire Spirit", Faction: FactionRed},
		{ID: "8", Symbol: "🧟", Name: "Zombie", Faction: FactionRed},
	})
}

// Units returns a copy of all units in catalog order
func (c *Catalog) Units() []Unit {
	out := make([]Unit, len(c.units))
	copy(out, c.units)
	return out
}

// Len returns the number of units in the catalog
func (c *Catalog) Len() int {
	return len(c.units)
}

// ByFaction returns the units of one faction in catalog order
func (c *Catalog) ByFaction(f Faction) []Unit {
	var out []Unit
	for _, u := range c.units {
		if u.Faction == f {
			out = append(out, u)
		}
	}
	return out
}

// Lookup finds a unit by ID or by case-insensitive name
func (c *Catalog) Lookup(key string) (Unit, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Unit{}, false
	}
	for _, u := range c.units {
		if u.ID == key {
			return u, true
		}
	}
	for _, u := range c.units {
		if strings.EqualFold(u.Name, key) {
			return u, true
		}
	}
	return Unit{}, false
}
