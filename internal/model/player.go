package model

import "sync"

// Player is a player record: a combatant plus progression and the
// legacy combat bookkeeping other subsystems still mutate directly.
type Player struct {
	*Combatant

	pmu sync.RWMutex

	experience int64
	classID    string

	// currentEnemy is the active encounter snapshot, nil outside combat.
	// Legacy paths (taming, dungeon teardown, admin commands) reset it
	// directly, which is why the engine reconciles state against it
	// before every action instead of trusting the state enum blindly.
	currentEnemy *Enemy

	// activePet is the companion fighting alongside the player, if any.
	activePet *Combatant
}

// NewPlayer creates a player record with zero experience.
func NewPlayer(c *Combatant, classID string) *Player {
	return &Player{Combatant: c, classID: classID}
}

// Experience returns current experience.
func (p *Player) Experience() int64 {
	p.pmu.RLock()
	defer p.pmu.RUnlock()
	return p.experience
}

// AddExperience adds experience (may be negative for penalties, floored at 0).
func (p *Player) AddExperience(exp int64) {
	p.pmu.Lock()
	defer p.pmu.Unlock()
	p.experience += exp
	if p.experience < 0 {
		p.experience = 0
	}
}

// SetExperience sets the exact experience value (floored at 0).
func (p *Player) SetExperience(exp int64) {
	p.pmu.Lock()
	defer p.pmu.Unlock()
	if exp < 0 {
		exp = 0
	}
	p.experience = exp
}

// ClassID returns the player's class id.
func (p *Player) ClassID() string {
	p.pmu.RLock()
	defer p.pmu.RUnlock()
	return p.classID
}

// SetClassID sets the player's class id.
func (p *Player) SetClassID(id string) {
	p.pmu.Lock()
	defer p.pmu.Unlock()
	p.classID = id
}

// CurrentEnemy returns the active encounter snapshot, nil outside combat.
func (p *Player) CurrentEnemy() *Enemy {
	p.pmu.RLock()
	defer p.pmu.RUnlock()
	return p.currentEnemy
}

// SetCurrentEnemy sets or clears the active encounter snapshot.
func (p *Player) SetCurrentEnemy(e *Enemy) {
	p.pmu.Lock()
	defer p.pmu.Unlock()
	p.currentEnemy = e
}

// ActivePet returns the companion combatant, nil if none.
func (p *Player) ActivePet() *Combatant {
	p.pmu.RLock()
	defer p.pmu.RUnlock()
	return p.activePet
}

// SetActivePet sets or clears the companion combatant.
func (p *Player) SetActivePet(pet *Combatant) {
	p.pmu.Lock()
	defer p.pmu.Unlock()
	p.activePet = pet
}
