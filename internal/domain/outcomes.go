package domain

// OutcomeTable scores character and move pairings. The first value of each
// result belongs to the party named first.
type OutcomeTable interface {
	// Headstart returns the pre-battle bonus for a character pairing. At most
	// one of the two values is non-zero.
	Headstart(a, b Character) (uint8, uint8)
	// Points returns the points each move scores against the other, each 0 or 1.
	Points(a, b Move) (uint8, uint8)
}

// StandardOutcomes is the stock NZSC outcome table.
type StandardOutcomes struct{}

// StandardTable is the default outcome table used by new engines.
var StandardTable OutcomeTable = StandardOutcomes{}

// headstartOver maps a character to the one it gets a headstart against.
var headstartOver = map[Character]Character{
	Ninja:   Zombie,
	Zombie:  Samurai,
	Samurai: Clown,
	Clown:   Ninja,
}

func (StandardOutcomes) Headstart(a, b Character) (uint8, uint8) {
	switch {
	case a == b:
		return 0, 0
	case headstartOver[a] == b:
		return 1, 0
	case headstartOver[b] == a:
		return 0, 1
	default:
		return 0, 0
	}
}

func (StandardOutcomes) Points(a, b Move) (uint8, uint8) {
	if a == b {
		return 0, 0
	}
	if trades[movePair{a, b}] || trades[movePair{b, a}] {
		return 1, 1
	}
	return boolPoint(beats[a][b]), boolPoint(beats[b][a])
}

func boolPoint(ok bool) uint8 {
	if ok {
		return 1
	}
	return 0
}

type movePair struct{ a, b Move }

// beats lists, for each move, the moves it scores against.
var beats = buildBeats(map[Move][]Move{
	Kick:                    {ShadowFireball, ShadowSlip, RunInCircles, LightningFastKarateChop, MakeAMove, SamuraiSword, Lightning, Earthquake, Twist, Bend, NoseOfTheTaunted, MustacheMash},
	NinjaSword:              {Kick, ShadowFireball, LightningFastKarateChop, Rampage, MakeAMove, Apocalypse, Lightning, Twist, AcidSpray, NoseOfTheTaunted, BigHairyDeal},
	Nunchucks:               {Kick, ShadowSlip, RunInCircles, Rampage, SamuraiSword, Helmet, Smash, Bend, BackwardsMoustachio, NoseOfTheTaunted, BigHairyDeal},
	ShadowFireball:          {Nunchucks, RunInCircles, LightningFastKarateChop, Rampage, Zap, Regenerate, ZombieCorps, Apocalypse, SamuraiSword, Helmet, Twist, Bend, Nose, MustacheMash},
	ShadowSlip:              {NinjaSword, ShadowFireball, RunInCircles, Muscle, Zap, SamuraiSword, Smash, Earthquake, Bend, JugglingKnives, MustacheMash, BigHairyDeal},
	RunInCircles:            {Zap, Regenerate, MakeAMove, ZombieCorps, Apocalypse, Twist, JugglingKnives, BackwardsMoustachio, BigHairyDeal},
	LightningFastKarateChop: {ShadowSlip, Muscle, Regenerate, MakeAMove, ZombieCorps, Apocalypse, SamuraiSword, Earthquake, Twist, Nose, MustacheMash, BigHairyDeal},
	Rampage:                 {Kick, ShadowSlip, RunInCircles, LightningFastKarateChop, Regenerate, Smash, Twist, JugglingKnives, AcidSpray, Nose, BackwardsMoustachio, BigHairyDeal},
	Muscle:                  {Kick, NinjaSword, Nunchucks, ShadowFireball, RunInCircles, Rampage, MakeAMove, SamuraiSword, Helmet, Earthquake, Twist, Bend, JugglingKnives, BackwardsMoustachio, MustacheMash, BigHairyDeal},
	Zap:                     {Kick, NinjaSword, LightningFastKarateChop, Rampage, Muscle, Regenerate, ZombieCorps, Smash, Earthquake, Twist, Bend, AcidSpray, BackwardsMoustachio, MustacheMash, BigHairyDeal},
	Regenerate:              {Kick, Nunchucks, ShadowSlip, Muscle, MakeAMove, Apocalypse, SamuraiSword, Helmet, Lightning, Earthquake, Twist, Bend, AcidSpray, Nose, BackwardsMoustachio, BigHairyDeal},
	MakeAMove:               {Nunchucks, ShadowFireball, ShadowSlip, Rampage, Zap, ZombieCorps, Apocalypse, SamuraiSword, Helmet, Smash, JugglingKnives, AcidSpray, Nose, BackwardsMoustachio, MustacheMash, BigHairyDeal},
	ZombieCorps:             {NinjaSword, Nunchucks, ShadowSlip, Rampage, Muscle, Regenerate, SamuraiSword, Helmet, Earthquake, Twist, JugglingKnives, BackwardsMoustachio, MustacheMash, BigHairyDeal},
	Apocalypse:              {Nunchucks, ShadowSlip, Rampage, Muscle, Zap, ZombieCorps, Lightning, Twist, Bend, BackwardsMoustachio, NoseOfTheTaunted, BigHairyDeal},
	SamuraiSword:            {NinjaSword, RunInCircles, Zap, Apocalypse, Earthquake, Twist, JugglingKnives, AcidSpray, BackwardsMoustachio, NoseOfTheTaunted, MustacheMash, BigHairyDeal},
	Helmet:                  {NinjaSword, ShadowSlip, RunInCircles, LightningFastKarateChop, Rampage, Zap, Apocalypse, SamuraiSword, Smash, Earthquake, Twist, JugglingKnives, NoseOfTheTaunted, MustacheMash, BigHairyDeal},
	Smash:                   {Kick, NinjaSword, ShadowFireball, RunInCircles, LightningFastKarateChop, Muscle, Apocalypse, Lightning, Earthquake, Twist, Bend, JugglingKnives, BackwardsMoustachio, MustacheMash},
	Lightning:               {ShadowSlip, LightningFastKarateChop, Muscle, Zap, MakeAMove, SamuraiSword, Helmet, Earthquake, Twist, Bend, AcidSpray, Nose, BackwardsMoustachio, NoseOfTheTaunted},
	Earthquake:              {NinjaSword, ShadowFireball, RunInCircles, Rampage, MakeAMove, Apocalypse, Bend, JugglingKnives, AcidSpray, BackwardsMoustachio, MustacheMash, BigHairyDeal},
	Twist:                   {Nunchucks, ShadowSlip, MakeAMove, Earthquake, AcidSpray, Nose, NoseOfTheTaunted, MustacheMash, BigHairyDeal},
	Bend:                    {NinjaSword, RunInCircles, Rampage, MakeAMove, Helmet, Nose, NoseOfTheTaunted},
	JugglingKnives:          {Kick, Nunchucks, Apocalypse, Lightning, Twist, Bend, Nose, MustacheMash},
	AcidSpray:               {Kick, Nunchucks, ShadowFireball, ShadowSlip, RunInCircles, LightningFastKarateChop, ZombieCorps, Apocalypse, Helmet, Smash, JugglingKnives, BackwardsMoustachio, MustacheMash, BigHairyDeal},
	Nose:                    {NinjaSword, Nunchucks, ShadowSlip, RunInCircles, Muscle, Zap, Apocalypse, SamuraiSword, Helmet, Smash, Earthquake, AcidSpray, MustacheMash},
	BackwardsMoustachio:     {Kick, NinjaSword, ShadowFireball, ShadowSlip, LightningFastKarateChop, Helmet, Twist, Bend, Nose},
	NoseOfTheTaunted:        {ShadowFireball, ShadowSlip, RunInCircles, Rampage, Muscle, Zap, MakeAMove, ZombieCorps, Smash, Earthquake, AcidSpray, Nose, BackwardsMoustachio, MustacheMash},
	MustacheMash:            {NinjaSword, Nunchucks, RunInCircles, Regenerate, Lightning, Bend, BackwardsMoustachio},
	BigHairyDeal:            {Kick, ShadowFireball, Smash, Lightning, Bend, JugglingKnives, Nose, BackwardsMoustachio, NoseOfTheTaunted, MustacheMash},
})

// trades are pairings where both moves score.
var trades = map[movePair]bool{
	{Kick, ZombieCorps}:                         true,
	{Kick, Helmet}:                              true,
	{Kick, Nose}:                                true,
	{NinjaSword, RunInCircles}:                  true,
	{NinjaSword, JugglingKnives}:                true,
	{Nunchucks, LightningFastKarateChop}:        true,
	{RunInCircles, LightningFastKarateChop}:     true,
	{RunInCircles, Lightning}:                   true,
	{LightningFastKarateChop, Bend}:             true,
	{LightningFastKarateChop, NoseOfTheTaunted}: true,
	{Rampage, MustacheMash}:                     true,
	{Muscle, AcidSpray}:                         true,
	{Regenerate, Smash}:                         true,
	{Regenerate, JugglingKnives}:                true,
	{ZombieCorps, Smash}:                        true,
	{ZombieCorps, Nose}:                         true,
	{SamuraiSword, Smash}:                       true,
	{SamuraiSword, Bend}:                        true,
	{Bend, AcidSpray}:                           true,
	{JugglingKnives, NoseOfTheTaunted}:          true,
}

func buildBeats(lists map[Move][]Move) map[Move]map[Move]bool {
	out := make(map[Move]map[Move]bool, len(lists))
	for m, victims := range lists {
		set := make(map[Move]bool, len(victims))
		for _, v := range victims {
			set[v] = true
		}
		out[m] = set
	}
	return out
}
