package main

import (
	"fmt"
	"io"
	"strings"

	"nzsc/internal/app"
	"nzsc/internal/domain"
)

type renderer struct {
	w        io.Writer
	opponent string
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *renderer) output(o app.Output) {
	for _, n := range o.Notifications {
		r.notification(n)
	}
	if o.Question != nil {
		r.question(*o.Question)
	}
}

func (r *renderer) question(q app.Question) {
	var options []string
	switch q.Kind {
	case app.QuestionChooseCharacter:
		r.printf("Choose a character:\n")
		options = names(q.AvailableCharacters)
	case app.QuestionChooseBooster:
		r.printf("Choose a booster:\n")
		options = names(q.AvailableBoosters)
	case app.QuestionChooseMove:
		r.printf("Choose a move:\n")
		options = names(q.AvailableMoves)
	}
	for _, o := range options {
		r.printf("\t%s\n", o)
	}
}

func names[T ~string](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = string(it)
	}
	return out
}

func (r *renderer) notification(n app.Notification) {
	switch p := n.Payload.(type) {
	case app.CharacterSelectionAndHeadstartPayload:
		r.printf("You chose %s. %s chose %s.\n", p.HumanCharacter, r.opponent, p.ComputerCharacter)
		switch p.WhoGetsTheHeadstart {
		case app.HeadstartJustHuman:
			r.printf("You get a headstart.\n")
		case app.HeadstartJustComputer:
			r.printf("%s gets a headstart.\n", r.opponent)
		default:
			r.printf("Nobody gets a headstart.\n")
		}
	case app.SameCharacterSelectionPayload:
		r.printf("You both chose %s, so pick again. You have picked it %s, %s %s.\n",
			p.BothCharacter, times(p.HumanTimes), r.opponent, times(p.ComputerTimes))
	case app.BoosterSelectionPayload:
		r.printf("You chose %s. %s chose %s.\nLet the battle begin!\n", p.HumanBooster, r.opponent, p.ComputerBooster)
	case app.MoveSelectionAndOutcomePayload:
		r.printf("You chose %s. %s chose %s.\n", p.HumanMove, r.opponent, p.ComputerMove)
		switch p.WhoGetsThePoint {
		case app.PointJustHuman:
			r.printf("You get a point.\n")
		case app.PointJustComputer:
			r.printf("%s gets a point.\n", r.opponent)
		case app.PointBoth:
			r.printf("You both get a point.\n")
		default:
			r.printf("Nobody gets a point.\n")
		}
	case app.ScoreUpdatePayload:
		r.printf("The score is now %d-%d.\n\n", p.HumanPoints, p.ComputerPoints)
	case app.TiebreakingScoreSetbackPayload:
		r.printf("Tied at the finish, so the score goes back to %d-%d.\n\n", p.BothPoints, p.BothPoints)
	case app.GameOverPayload:
		verb := "won"
		if p.Winner == app.WinnerComputer {
			verb = "lost"
		}
		r.printf("You %s %d-%d (%s).\n", verb, p.HumanPoints, p.ComputerPoints, p.VictoryTerm)
	case app.NonexistentPenaltyPayload:
		r.printf("%q is not a %s. %d wait penalty!\n", p.AttemptedName, penaltySubject(n.Kind), p.WaitCost)
	case app.CharacterPenaltyPayload:
		r.printf("You already chose %s %d times in a row. %d wait penalty!\n", p.AttemptedCharacter, domain.StreakLimit, p.WaitCost)
	case app.BoosterPenaltyPayload:
		r.printf("%s belongs to another character. %d wait penalty!\n", p.AttemptedBooster, p.WaitCost)
	case app.MovePenaltyPayload:
		r.printf("%s %s %d wait penalty!\n", p.AttemptedMove, moveReason(n.Kind), p.WaitCost)
	default:
		r.printf("%s\n", n.Kind)
	}
}

func times(n uint8) string {
	if n == 1 {
		return "once"
	}
	return fmt.Sprintf("%d times", n)
}

func penaltySubject(kind app.NotificationKind) string {
	return strings.TrimSuffix(string(kind), "_nonexistent_penalty")
}

func moveReason(kind app.NotificationKind) string {
	switch kind {
	case app.NotificationMoveSingleUsePenalty:
		return "is single-use and already spent."
	case app.NotificationMoveDestroyedPenalty:
		return "has been destroyed."
	case app.NotificationMoveThreeTimesInARowPenalty:
		return fmt.Sprintf("was already chosen %d times in a row.", domain.StreakLimit)
	case app.NotificationMoveFromWrongBoosterPenalty:
		return "comes from your other booster."
	default:
		return "belongs to another character."
	}
}
