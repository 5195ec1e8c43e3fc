package domain

import "slices"

// Tally is the score and remaining wait budget shared by every party stage.
type Tally struct {
	Points uint8 `json:"points"`
	Waits  uint8 `json:"waits"`
}

// ApplyWaitPenalty spends cost waits. When the budget cannot cover the cost it
// is emptied and 1 is returned: the point the opponent earns.
func (t *Tally) ApplyWaitPenalty(cost uint8) uint8 {
	if t.Waits < cost {
		t.Waits = 0
		return 1
	}
	t.Waits -= cost
	return 0
}

// Award adds points to the tally.
func (t *Tally) Award(points uint8) {
	t.Points += points
}

// CharacterlessParty is a party that has not locked in a character yet.
type CharacterlessParty struct {
	Tally
	CharacterStreak Streak[Character] `json:"character_streak"`
}

// NewCharacterlessParty returns a party at the start of a match.
func NewCharacterlessParty() CharacterlessParty {
	return CharacterlessParty{Tally: Tally{Waits: InitialWaits}}
}

// AvailableCharacters lists the catalog's characters minus one picked
// StreakLimit times in a row.
func (p CharacterlessParty) AvailableCharacters(cat Catalog) []Character {
	all := cat.AllCharacters()
	out := make([]Character, 0, len(all))
	for _, c := range all {
		if p.CharacterStreak.Times == StreakLimit && p.CharacterStreak.Repeated == c {
			continue
		}
		out = append(out, c)
	}
	return out
}

// LockCharacter advances the party to the booster stage.
func (p CharacterlessParty) LockCharacter(c Character) BoosterlessParty {
	return BoosterlessParty{Tally: p.Tally, Character: c}
}

// BoosterlessParty has a character but no booster.
type BoosterlessParty struct {
	Tally
	Character Character `json:"character"`
}

// AvailableBoosters returns the two boosters of the locked character.
func (p BoosterlessParty) AvailableBoosters(cat Catalog) []Booster {
	b := cat.BoostersOf(p.Character)
	return []Booster{b[0], b[1]}
}

// LockBooster advances the party to the battle stage with a fresh move
// streak and no destroyed moves.
func (p BoosterlessParty) LockBooster(b Booster) FullParty {
	return FullParty{Tally: p.Tally, Character: p.Character, Booster: b}
}

// FullParty is a party ready for battle.
type FullParty struct {
	Tally
	Character      Character    `json:"character"`
	Booster        Booster      `json:"booster"`
	MoveStreak     Streak[Move] `json:"move_streak"`
	DestroyedMoves []Move       `json:"destroyed_moves"`
}

// AvailableMoves lists the character's and booster's moves, minus destroyed
// moves and a move played StreakLimit times in a row.
func (p FullParty) AvailableMoves(cat Catalog) []Move {
	moves := append(cat.CharacterMoves(p.Character), cat.BoosterMoves(p.Booster)...)
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if p.IsDestroyed(m) || p.MoveStreak.Excludes(m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// IsDestroyed reports whether m is permanently unusable for this party.
func (p FullParty) IsDestroyed(m Move) bool {
	return slices.Contains(p.DestroyedMoves, m)
}

// Destroy marks m permanently unusable. The destroyed list is copied, so
// earlier copies of the party are unaffected.
func (p *FullParty) Destroy(m Move) {
	if p.IsDestroyed(m) {
		return
	}
	p.DestroyedMoves = append(slices.Clip(p.DestroyedMoves), m)
}

// OwnsViaOtherBooster reports whether m comes from one of the party's
// character boosters other than the equipped one.
func (p FullParty) OwnsViaOtherBooster(cat Catalog, m Move) bool {
	for _, b := range cat.BoostersOf(p.Character) {
		if b == p.Booster {
			continue
		}
		if slices.Contains(cat.BoosterMoves(b), m) {
			return true
		}
	}
	return false
}
