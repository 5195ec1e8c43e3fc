package app

import (
	"nzsc/internal/bot"
	"nzsc/internal/domain"
	"nzsc/internal/random"
)

// Engine runs a single human-versus-computer match. It is not safe for
// concurrent use; hosting code serializes access.
type Engine struct {
	seed     uint32
	catalog  domain.Catalog
	outcomes domain.OutcomeTable
	selector bot.Selector
	brain    bot.Brain
	phase    phase
	turns    int
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithCatalog replaces the stock character, booster and move catalog.
func WithCatalog(cat domain.Catalog) Option {
	return func(e *Engine) { e.catalog = cat }
}

// WithOutcomes replaces the stock outcome table.
func WithOutcomes(t domain.OutcomeTable) Option {
	return func(e *Engine) { e.outcomes = t }
}

// WithSelector replaces the seeded generator driving the computer's picks.
func WithSelector(sel bot.Selector) Option {
	return func(e *Engine) { e.selector = sel }
}

// WithBrain replaces the computer strategy outright. It takes precedence
// over WithSelector.
func WithBrain(b bot.Brain) Option {
	return func(e *Engine) { e.brain = b }
}

// New creates an engine whose computer choices are fully determined by seed.
func New(seed uint32, opts ...Option) *Engine {
	e := &Engine{
		seed:     seed,
		catalog:  domain.Standard,
		outcomes: domain.StandardTable,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.selector == nil {
		e.selector = random.New(seed)
	}
	if e.brain == nil {
		e.brain = bot.NewUniformBrain(e.selector)
	}
	e.phase = characterChoosing{
		human:    domain.NewCharacterlessParty(),
		computer: domain.NewCharacterlessParty(),
	}
	return e
}

// InitialOutput returns the opening question. It fails once the match has
// progressed past its first question.
func (e *Engine) InitialOutput() (Output, error) {
	p, ok := e.phase.(characterChoosing)
	if !ok || e.turns > 0 {
		return Output{}, ErrMatchInProgress
	}
	return Output{
		Question:      e.characterQuestion(p.human),
		Notifications: []Notification{},
	}, nil
}

// Apply advances the match by one human answer. A mismatched answer yields a
// *ProtocolError and leaves the engine unchanged.
func (e *Engine) Apply(a Answer) (Output, error) {
	var (
		next phase
		out  Output
	)
	switch p := e.phase.(type) {
	case characterChoosing:
		if a.Kind != AnswerCharacter {
			return Output{}, e.mismatch(a)
		}
		next, out = e.chooseCharacter(p, a)
	case boosterChoosing:
		if a.Kind != AnswerBooster {
			return Output{}, e.mismatch(a)
		}
		next, out = e.chooseBooster(p, a)
	case moveChoosing:
		if a.Kind != AnswerMove {
			return Output{}, e.mismatch(a)
		}
		next, out = e.chooseMove(p, a)
	default:
		return Output{}, e.mismatch(a)
	}
	e.phase = next
	e.turns++
	return out, nil
}

func (e *Engine) mismatch(a Answer) error {
	return &ProtocolError{Phase: e.phase.name(), Answer: a.Kind}
}

// Phase reports the current lifecycle stage.
func (e *Engine) Phase() domain.Phase {
	return e.phase.name()
}

// Scores returns the current human and computer points.
func (e *Engine) Scores() (human, computer uint8) {
	return e.phase.scores()
}

// Waits returns the human's and computer's remaining waits. Both are zero
// once the match is over.
func (e *Engine) Waits() (human, computer uint8) {
	return e.phase.waits()
}

// Turns counts the answers accepted so far.
func (e *Engine) Turns() int {
	return e.turns
}

// Seed returns the seed the engine was created with.
func (e *Engine) Seed() uint32 {
	return e.seed
}

// Catalog returns the catalog answers are resolved against.
func (e *Engine) Catalog() domain.Catalog {
	return e.catalog
}

// Finished reports whether the match is over.
func (e *Engine) Finished() bool {
	_, ok := e.phase.(gameOver)
	return ok
}
