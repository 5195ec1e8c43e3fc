package app

import (
	"fmt"
	"slices"

	"nzsc/internal/domain"
)

// penalty is a rejected human selection: the notification to emit and the
// number of waits it costs.
type penalty struct {
	note Notification
	cost uint8
}

func nonexistentPenalty(kind NotificationKind, name string) penalty {
	return penalty{
		note: notify(kind, NonexistentPenaltyPayload{AttemptedName: name, WaitCost: WaitCostNonexistent}),
		cost: WaitCostNonexistent,
	}
}

// characterPenalty reports why the human's character cannot be selected, if
// it cannot.
func characterPenalty(cat domain.Catalog, human domain.CharacterlessParty, a Answer) (penalty, bool) {
	if a.Nonexistent || !slices.Contains(cat.AllCharacters(), a.Character) {
		return nonexistentPenalty(NotificationCharacterNonexistentPenalty, answerName(a)), true
	}
	if slices.Contains(human.AvailableCharacters(cat), a.Character) {
		return penalty{}, false
	}
	return penalty{
		note: notify(NotificationCharacterThreeTimesInARowPenalty, CharacterPenaltyPayload{
			AttemptedCharacter: a.Character,
			WaitCost:           WaitCostStreak,
		}),
		cost: WaitCostStreak,
	}, true
}

func boosterPenalty(cat domain.Catalog, human domain.BoosterlessParty, a Answer) (penalty, bool) {
	if a.Nonexistent || !slices.Contains(domain.AllBoosters(cat), a.Booster) {
		return nonexistentPenalty(NotificationBoosterNonexistentPenalty, answerName(a)), true
	}
	if slices.Contains(human.AvailableBoosters(cat), a.Booster) {
		return penalty{}, false
	}
	return penalty{
		note: notify(NotificationBoosterFromWrongCharacterPenalty, BoosterPenaltyPayload{
			AttemptedBooster: a.Booster,
			WaitCost:         WaitCostWrongCharacter,
		}),
		cost: WaitCostWrongCharacter,
	}, true
}

// movePenalty resolves an unavailable move. The first matching rule wins:
// destroyed single-use, destroyed, streak, other booster, wrong character.
func movePenalty(cat domain.Catalog, human domain.FullParty, a Answer) (penalty, bool) {
	if a.Nonexistent || !slices.Contains(domain.AllMoves(cat), a.Move) {
		return nonexistentPenalty(NotificationMoveNonexistentPenalty, answerName(a)), true
	}
	m := a.Move
	if slices.Contains(human.AvailableMoves(cat), m) {
		return penalty{}, false
	}

	var kind NotificationKind
	var cost uint8
	switch {
	case human.IsDestroyed(m) && cat.SingleUse(m):
		kind, cost = NotificationMoveSingleUsePenalty, WaitCostExhausted
	case human.IsDestroyed(m):
		kind, cost = NotificationMoveDestroyedPenalty, WaitCostExhausted
	case human.MoveStreak.Excludes(m):
		kind, cost = NotificationMoveThreeTimesInARowPenalty, WaitCostStreak
	case human.OwnsViaOtherBooster(cat, m):
		kind, cost = NotificationMoveFromWrongBoosterPenalty, WaitCostWrongBooster
	default:
		kind, cost = NotificationMoveFromWrongCharacterPenalty, WaitCostWrongCharacter
	}
	return penalty{
		note: notify(kind, MovePenaltyPayload{AttemptedMove: m, WaitCost: cost}),
		cost: cost,
	}, true
}

// answerName is the text to echo back in a nonexistent penalty.
func answerName(a Answer) string {
	if a.Nonexistent {
		return a.Name
	}
	switch a.Kind {
	case AnswerCharacter:
		return string(a.Character)
	case AnswerBooster:
		return string(a.Booster)
	default:
		return string(a.Move)
	}
}

// comboPoints overrides the outcome table for ShadowFireball against Smash:
// the Smash side wins exactly when it carries the Strong booster.
func comboPoints(humanMove, computerMove domain.Move, humanBooster, computerBooster domain.Booster) (uint8, uint8, bool) {
	switch {
	case humanMove == domain.ShadowFireball && computerMove == domain.Smash:
		if computerBooster == domain.Strong {
			return 0, 1, true
		}
		return 1, 0, true
	case humanMove == domain.Smash && computerMove == domain.ShadowFireball:
		if humanBooster == domain.Strong {
			return 1, 0, true
		}
		return 0, 1, true
	}
	return 0, 0, false
}

func classifyHeadstart(human, computer uint8) WhoGetsTheHeadstart {
	switch {
	case human == 0 && computer == 0:
		return HeadstartNeither
	case human == 0 && computer == 1:
		return HeadstartJustComputer
	case human == 1 && computer == 0:
		return HeadstartJustHuman
	}
	panic(fmt.Sprintf("app: impossible headstart %d-%d", human, computer))
}

func classifyPoints(human, computer uint8) WhoGetsThePoint {
	switch {
	case human == 0 && computer == 0:
		return PointNeither
	case human == 0 && computer == 1:
		return PointJustComputer
	case human == 1 && computer == 0:
		return PointJustHuman
	case human == 1 && computer == 1:
		return PointBoth
	}
	panic(fmt.Sprintf("app: impossible move points %d-%d", human, computer))
}

// gameOverNote builds the terminal notification for a decided score.
func gameOverNote(human, computer uint8) Notification {
	if human == computer {
		panic(fmt.Sprintf("app: game over on a tied score %d-%d", human, computer))
	}
	p := GameOverPayload{HumanPoints: human, ComputerPoints: computer}
	if human > computer {
		p.Winner = WinnerHuman
		p.VictoryTerm = domain.VictoryTerm(human - computer)
	} else {
		p.Winner = WinnerComputer
		p.VictoryTerm = domain.VictoryTerm(computer - human)
	}
	return notify(NotificationGameOver, p)
}
