// pkg/core/marker.go
package core

// AttackKind is the animation flavor of an attack marker
type AttackKind string

const (
	AttackMelee AttackKind = "melee"
	AttackArea  AttackKind = "area"
)

// wizardUnitID is the catalog ID of the one spell caster
const wizardUnitID = "3"

// AttackKindFor maps a deployed unit to the attack it launches at the castle.
func AttackKindFor(u Unit) AttackKind {
	if u.ID == wizardUnitID {
		return AttackArea
	}
	return AttackMelee
}

// AttackMarker is a transient battlefield marker. It is removed automatically
// once its lifetime has passed.
type AttackMarker struct {
	ID       string     `json:"id"`
	Kind     AttackKind `json:"kind"`
	Position int        `json:"position"`
	UnitID   string     `json:"unitId"`
}
