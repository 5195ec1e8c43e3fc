package domain

// Character is one of the four playable fighters.
type Character string

// Booster is a character-specific add-on granting two extra moves.
type Booster string

// Move is a single battle action.
type Move string

const (
	Ninja   Character = "Ninja"
	Zombie  Character = "Zombie"
	Samurai Character = "Samurai"
	Clown   Character = "Clown"
)

const (
	Shadow       Booster = "Shadow"
	Speedy       Booster = "Speedy"
	Regenerative Booster = "Regenerative"
	Zombiecorns  Booster = "Zombiecorns"
	Atlas        Booster = "Atlas"
	Strong       Booster = "Strong"
	Backwards    Booster = "Backwards"
	Moustachio   Booster = "Moustachio"
)

const (
	Kick       Move = "Kick"
	NinjaSword Move = "NinjaSword"
	Nunchucks  Move = "Nunchucks"

	ShadowFireball          Move = "ShadowFireball"
	ShadowSlip              Move = "ShadowSlip"
	RunInCircles            Move = "RunInCircles"
	LightningFastKarateChop Move = "LightningFastKarateChop"

	Rampage Move = "Rampage"
	Muscle  Move = "Muscle"
	Zap     Move = "Zap"

	Regenerate  Move = "Regenerate"
	MakeAMove   Move = "MakeAMove"
	ZombieCorps Move = "ZombieCorps"
	Apocalypse  Move = "Apocalypse"

	SamuraiSword Move = "SamuraiSword"
	Helmet       Move = "Helmet"
	Smash        Move = "Smash"

	Lightning  Move = "Lightning"
	Earthquake Move = "Earthquake"
	Twist      Move = "Twist"
	Bend       Move = "Bend"

	JugglingKnives Move = "JugglingKnives"
	AcidSpray      Move = "AcidSpray"
	Nose           Move = "Nose"

	BackwardsMoustachio Move = "BackwardsMoustachio"
	NoseOfTheTaunted    Move = "NoseOfTheTaunted"
	MustacheMash        Move = "MustacheMash"
	BigHairyDeal        Move = "BigHairyDeal"
)

// Catalog describes which characters exist and what each one can use.
// Slices are returned in a stable order; callers may rely on it for
// deterministic selection.
type Catalog interface {
	AllCharacters() []Character
	BoostersOf(c Character) [2]Booster
	CharacterMoves(c Character) []Move
	BoosterMoves(b Booster) []Move
	// SingleUse reports whether a move is destroyed after its first use.
	SingleUse(m Move) bool
	// Destructive reports whether a move destroys the move it is played against.
	Destructive(m Move) bool
}

type characterEntry struct {
	moves    []Move
	boosters [2]Booster
}

// StandardCatalog is the stock NZSC roster.
type StandardCatalog struct{}

var standardCharacters = []Character{Ninja, Zombie, Samurai, Clown}

var standardRoster = map[Character]characterEntry{
	Ninja:   {moves: []Move{Kick, NinjaSword, Nunchucks}, boosters: [2]Booster{Shadow, Speedy}},
	Zombie:  {moves: []Move{Rampage, Muscle, Zap}, boosters: [2]Booster{Regenerative, Zombiecorns}},
	Samurai: {moves: []Move{SamuraiSword, Helmet, Smash}, boosters: [2]Booster{Atlas, Strong}},
	Clown:   {moves: []Move{JugglingKnives, AcidSpray, Nose}, boosters: [2]Booster{Backwards, Moustachio}},
}

var standardBoosterMoves = map[Booster][]Move{
	Shadow:       {ShadowFireball, ShadowSlip},
	Speedy:       {RunInCircles, LightningFastKarateChop},
	Regenerative: {Regenerate, MakeAMove},
	Zombiecorns:  {ZombieCorps, Apocalypse},
	Atlas:        {Lightning, Earthquake},
	Strong:       {Twist, Bend},
	Backwards:    {BackwardsMoustachio, NoseOfTheTaunted},
	Moustachio:   {MustacheMash, BigHairyDeal},
}

var (
	singleUseMoves   = map[Move]bool{Zap: true, Regenerate: true, AcidSpray: true}
	destructiveMoves = map[Move]bool{Zap: true, AcidSpray: true}
)

// Standard is the default catalog used by new engines.
var Standard Catalog = StandardCatalog{}

func (StandardCatalog) AllCharacters() []Character {
	return append([]Character(nil), standardCharacters...)
}

func (StandardCatalog) BoostersOf(c Character) [2]Booster {
	return standardRoster[c].boosters
}

func (StandardCatalog) CharacterMoves(c Character) []Move {
	return append([]Move(nil), standardRoster[c].moves...)
}

func (StandardCatalog) BoosterMoves(b Booster) []Move {
	return append([]Move(nil), standardBoosterMoves[b]...)
}

func (StandardCatalog) SingleUse(m Move) bool { return singleUseMoves[m] }

func (StandardCatalog) Destructive(m Move) bool { return destructiveMoves[m] }

// AllBoosters lists every booster in catalog order.
func AllBoosters(cat Catalog) []Booster {
	var out []Booster
	for _, c := range cat.AllCharacters() {
		b := cat.BoostersOf(c)
		out = append(out, b[0], b[1])
	}
	return out
}

// AllMoves lists every move in catalog order: each character's moves followed
// by its boosters' moves.
func AllMoves(cat Catalog) []Move {
	var out []Move
	for _, c := range cat.AllCharacters() {
		out = append(out, cat.CharacterMoves(c)...)
		for _, b := range cat.BoostersOf(c) {
			out = append(out, cat.BoosterMoves(b)...)
		}
	}
	return out
}
