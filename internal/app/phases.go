package app

import "nzsc/internal/domain"

// phase is the sealed set of match stages. Each variant holds exactly the
// data that stage needs.
type phase interface {
	name() domain.Phase
	scores() (human, computer uint8)
	waits() (human, computer uint8)
}

type characterChoosing struct {
	human, computer domain.CharacterlessParty
}

type boosterChoosing struct {
	human, computer domain.BoosterlessParty
}

type moveChoosing struct {
	human, computer domain.FullParty
}

type gameOver struct {
	humanPoints, computerPoints uint8
}

func (characterChoosing) name() domain.Phase { return domain.PhaseCharacterChoosing }
func (boosterChoosing) name() domain.Phase   { return domain.PhaseBoosterChoosing }
func (moveChoosing) name() domain.Phase      { return domain.PhaseMoveChoosing }
func (gameOver) name() domain.Phase          { return domain.PhaseGameOver }

func (p characterChoosing) scores() (uint8, uint8) { return p.human.Points, p.computer.Points }
func (p boosterChoosing) scores() (uint8, uint8)   { return p.human.Points, p.computer.Points }
func (p moveChoosing) scores() (uint8, uint8)      { return p.human.Points, p.computer.Points }
func (p gameOver) scores() (uint8, uint8)          { return p.humanPoints, p.computerPoints }

func (p characterChoosing) waits() (uint8, uint8) { return p.human.Waits, p.computer.Waits }
func (p boosterChoosing) waits() (uint8, uint8)   { return p.human.Waits, p.computer.Waits }
func (p moveChoosing) waits() (uint8, uint8)      { return p.human.Waits, p.computer.Waits }
func (gameOver) waits() (uint8, uint8)            { return 0, 0 }

func (e *Engine) characterQuestion(human domain.CharacterlessParty) *Question {
	return &Question{Kind: QuestionChooseCharacter, AvailableCharacters: human.AvailableCharacters(e.catalog)}
}

func (e *Engine) boosterQuestion(human domain.BoosterlessParty) *Question {
	return &Question{Kind: QuestionChooseBooster, AvailableBoosters: human.AvailableBoosters(e.catalog)}
}

func (e *Engine) moveQuestion(human domain.FullParty) *Question {
	return &Question{Kind: QuestionChooseMove, AvailableMoves: human.AvailableMoves(e.catalog)}
}

// penalize charges the human for a rejected selection. When the human cannot
// cover the cost the computer earns a point, which may end the match; otherwise
// the same question is asked again via stay.
func (e *Engine) penalize(human, computer *domain.Tally, pen penalty, stay func() (phase, *Question)) (phase, Output) {
	computer.Award(human.ApplyWaitPenalty(pen.cost))
	notes := []Notification{
		pen.note,
		notify(NotificationScoreUpdate, ScoreUpdatePayload{HumanPoints: human.Points, ComputerPoints: computer.Points}),
	}
	if computer.Points >= domain.PointsToWin {
		return e.finish(human.Points, computer.Points, notes)
	}
	next, q := stay()
	return next, Output{Question: q, Notifications: notes}
}

func (e *Engine) finish(human, computer uint8, notes []Notification) (phase, Output) {
	notes = append(notes, gameOverNote(human, computer))
	return gameOver{humanPoints: human, computerPoints: computer}, Output{Notifications: notes}
}

func (e *Engine) chooseCharacter(p characterChoosing, a Answer) (phase, Output) {
	if pen, rejected := characterPenalty(e.catalog, p.human, a); rejected {
		return e.penalize(&p.human.Tally, &p.computer.Tally, pen, func() (phase, *Question) {
			return p, e.characterQuestion(p.human)
		})
	}

	human := a.Character
	computer := e.brain.ChooseCharacter(p.computer.AvailableCharacters(e.catalog))
	if human == computer {
		p.human.CharacterStreak = p.human.CharacterStreak.Update(human)
		p.computer.CharacterStreak = p.computer.CharacterStreak.Update(computer)
		note := notify(NotificationSameCharacterSelection, SameCharacterSelectionPayload{
			BothCharacter: human,
			HumanTimes:    p.human.CharacterStreak.Times,
			ComputerTimes: p.computer.CharacterStreak.Times,
		})
		return p, Output{Question: e.characterQuestion(p.human), Notifications: []Notification{note}}
	}

	humanBonus, computerBonus := e.outcomes.Headstart(human, computer)
	who := classifyHeadstart(humanBonus, computerBonus)
	hp := p.human.LockCharacter(human)
	cp := p.computer.LockCharacter(computer)
	hp.Award(humanBonus)
	cp.Award(computerBonus)

	notes := []Notification{notify(NotificationCharacterSelectionAndHeadstart, CharacterSelectionAndHeadstartPayload{
		HumanCharacter:      human,
		ComputerCharacter:   computer,
		WhoGetsTheHeadstart: who,
	})}
	if cp.Points >= domain.PointsToWin {
		return e.finish(hp.Points, cp.Points, notes)
	}
	return boosterChoosing{human: hp, computer: cp}, Output{Question: e.boosterQuestion(hp), Notifications: notes}
}

func (e *Engine) chooseBooster(p boosterChoosing, a Answer) (phase, Output) {
	if pen, rejected := boosterPenalty(e.catalog, p.human, a); rejected {
		return e.penalize(&p.human.Tally, &p.computer.Tally, pen, func() (phase, *Question) {
			return p, e.boosterQuestion(p.human)
		})
	}

	computer := e.brain.ChooseBooster(p.computer.AvailableBoosters(e.catalog))
	hp := p.human.LockBooster(a.Booster)
	cp := p.computer.LockBooster(computer)
	note := notify(NotificationBoosterSelection, BoosterSelectionPayload{
		HumanBooster:    a.Booster,
		ComputerBooster: computer,
	})
	return moveChoosing{human: hp, computer: cp}, Output{Question: e.moveQuestion(hp), Notifications: []Notification{note}}
}

func (e *Engine) chooseMove(p moveChoosing, a Answer) (phase, Output) {
	if pen, rejected := movePenalty(e.catalog, p.human, a); rejected {
		return e.penalize(&p.human.Tally, &p.computer.Tally, pen, func() (phase, *Question) {
			return p, e.moveQuestion(p.human)
		})
	}

	h, c := p.human, p.computer
	humanMove := a.Move
	computerMove := e.brain.ChooseMove(c.AvailableMoves(e.catalog))

	h.MoveStreak = h.MoveStreak.Update(humanMove)
	c.MoveStreak = c.MoveStreak.Update(computerMove)
	if e.catalog.SingleUse(humanMove) || e.catalog.Destructive(computerMove) {
		h.Destroy(humanMove)
	}
	if e.catalog.SingleUse(computerMove) || e.catalog.Destructive(humanMove) {
		c.Destroy(computerMove)
	}

	humanPoint, computerPoint, ok := comboPoints(humanMove, computerMove, h.Booster, c.Booster)
	if !ok {
		humanPoint, computerPoint = e.outcomes.Points(humanMove, computerMove)
	}
	who := classifyPoints(humanPoint, computerPoint)
	h.Award(humanPoint)
	c.Award(computerPoint)

	notes := []Notification{
		notify(NotificationMoveSelectionAndOutcome, MoveSelectionAndOutcomePayload{
			HumanMove:       humanMove,
			ComputerMove:    computerMove,
			WhoGetsThePoint: who,
		}),
		notify(NotificationScoreUpdate, ScoreUpdatePayload{HumanPoints: h.Points, ComputerPoints: c.Points}),
	}

	if h.Points >= domain.PointsToWin || c.Points >= domain.PointsToWin {
		if h.Points != c.Points {
			return e.finish(h.Points, c.Points, notes)
		}
		h.Points, c.Points = domain.TiebreakPoints, domain.TiebreakPoints
		notes = append(notes, notify(NotificationTiebreakingScoreSetback, TiebreakingScoreSetbackPayload{
			BothPoints: domain.TiebreakPoints,
		}))
	}
	return moveChoosing{human: h, computer: c}, Output{Question: e.moveQuestion(h), Notifications: notes}
}
