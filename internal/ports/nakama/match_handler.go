package nakama

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"nzsc/internal/app"
	"nzsc/internal/bot"
	"nzsc/internal/config"
	"nzsc/internal/domain"
	"nzsc/internal/ports"
	"nzsc/internal/random"

	"github.com/heroiclabs/nakama-common/runtime"
)

const labelGame = "nzsc"

// MatchState holds the authoritative runtime state for one human-versus-computer match.
type MatchState struct {
	MatchID          string            `json:"match_id"`
	Seed             uint32            `json:"-"` // revealed only at game over
	HumanID          string            `json:"human_id"`
	Username         string            `json:"username"`
	Presence         runtime.Presence  `json:"-"`
	Engine           *app.Engine       `json:"-"`
	Opponent         *bot.Agent        `json:"-"`
	LastOutput       app.Output        `json:"-"`
	Receipt          app.SeedReceipt   `json:"-"`
	Tick             int64             `json:"tick"`
	LastActivityTick int64             `json:"last_activity_tick"`
	IdleTimeoutTicks int64             `json:"idle_timeout_ticks"`
	Finished         bool              `json:"finished"`
	Started          bool              `json:"-"`
	Results          ports.ResultsPort `json:"-"`
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	seed, ok := seedParam(params)
	if !ok {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			logger.Error("MatchInit: Failed to generate seed: %v", err)
			return nil, 0, ""
		}
	}

	var results ports.ResultsPort
	if nk != nil {
		results = NewNakamaLeaderboardAdapter(nk, config.LeaderboardID())
	}
	state := newMatchState(matchID, seed, results)

	if receiptService != nil && matchID != "" {
		receipt, err := receiptService.Issue(matchID, seed)
		if err != nil {
			logger.Warn("MatchInit: Could not issue seed receipt: %v", err)
		} else {
			state.Receipt = receipt
		}
	}

	label, err := encodeLabel(state.label())
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	logger.Debug("MatchInit: Match %s ready against %s.", matchID, state.Opponent.Name())
	return state, config.TickRate(), label
}

func newMatchState(matchID string, seed uint32, results ports.ResultsPort) *MatchState {
	opponent := bot.NewAgent(int(seed%uint32(max(bot.PersonaCount(), 1))), random.New(seed))
	engine := app.New(seed, app.WithBrain(opponent.Brain))
	initial, _ := engine.InitialOutput()
	return &MatchState{
		MatchID:          matchID,
		Seed:             seed,
		Engine:           engine,
		Opponent:         opponent,
		LastOutput:       initial,
		IdleTimeoutTicks: config.IdleTimeoutTicks(),
		Results:          results,
	}
}

// seedParam reads an explicit seed from match create params.
func seedParam(params map[string]interface{}) (uint32, bool) {
	switch v := params["seed"].(type) {
	case uint32:
		return v, true
	case int:
		return uint32(v), v >= 0
	case int64:
		return uint32(v), v >= 0
	case float64:
		return uint32(v), v >= 0
	case string:
		n, err := strconv.ParseUint(v, 10, 32)
		return uint32(n), err == nil
	default:
		return 0, false
	}
}

func (ms *MatchState) label() matchLabel {
	open := 0
	if ms.HumanID == "" {
		open = 1
	}
	return matchLabel{
		Game:     labelGame,
		Phase:    ms.Engine.Phase(),
		Open:     open,
		Opponent: ms.Opponent.Name(),
	}
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}
	if matchState.Finished {
		return state, false, "Match finished"
	}
	if matchState.HumanID != "" && matchState.HumanID != presence.GetUserId() {
		return state, false, "Match full"
	}
	if matchState.Presence != nil {
		return state, false, "Already joined"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		if matchState.HumanID != "" && matchState.HumanID != p.GetUserId() {
			logger.Warn("MatchJoin: User %s joined a match owned by %s.", p.GetUserId(), matchState.HumanID)
			continue
		}
		matchState.HumanID = p.GetUserId()
		matchState.Username = p.GetUsername()
		matchState.Presence = p
		matchState.LastActivityTick = tick
		logger.Info("MatchJoin: User %s is playing against %s.", p.GetUserId(), matchState.Opponent.Name())

		// Rejoining players get the pending question again.
		mh.sendOutput(matchState, dispatcher, logger, matchState.LastOutput)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave keeps the match open for the human to rejoin; the idle timeout
// ends it if they never come back.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		if p.GetUserId() == matchState.HumanID {
			logger.Info("MatchLeave: User %s left match %s.", p.GetUserId(), matchState.MatchID)
			matchState.Presence = nil
			matchState.LastActivityTick = tick
		}
	}
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick
	if matchState.Finished {
		logger.Debug("MatchLoop: Match %s finished, terminating.", matchState.MatchID)
		return nil
	}

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpAnswer:
			mh.handleAnswer(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
		if matchState.Finished {
			break
		}
	}

	// An unjoined match counts as idle from its creation tick.
	if !matchState.Started {
		matchState.Started = true
		if matchState.HumanID == "" {
			matchState.LastActivityTick = tick
		}
	}
	if matchState.IdleTimeoutTicks > 0 && tick-matchState.LastActivityTick > matchState.IdleTimeoutTicks {
		if matchState.HumanID == "" {
			logger.Info("MatchLoop: Match %s never joined, terminating.", matchState.MatchID)
		} else {
			logger.Info("MatchLoop: User %s idle for %d ticks, terminating.", matchState.HumanID, tick-matchState.LastActivityTick)
		}
		return nil
	}
	return matchState
}

func (mh *matchHandler) handleAnswer(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if senderID != state.HumanID {
		logger.Warn("handleAnswer: Ignoring answer from non-player %s.", senderID)
		return
	}
	state.LastActivityTick = state.Tick

	req, err := decodeAnswer(msg.GetData())
	if err != nil {
		logger.Warn("handleAnswer: Invalid answer from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, ErrCodeBadRequest, err.Error())
		return
	}

	answer, err := app.ParseAnswer(state.Engine.Catalog(), req.Kind, req.Name)
	if err != nil {
		logger.Warn("handleAnswer: User %s sent unknown answer kind %q", senderID, req.Kind)
		mh.sendError(state, dispatcher, logger, ErrCodeBadRequest, err.Error())
		return
	}

	out, err := state.Engine.Apply(answer)
	if err != nil {
		code := ErrCodeBadRequest
		if errors.Is(err, app.ErrPhaseMismatch) {
			code = ErrCodePhaseMismatch
		}
		logger.Warn("handleAnswer: User %s answer rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, code, err.Error())
		return
	}

	state.LastOutput = out
	mh.sendOutput(state, dispatcher, logger, out)
	mh.updateLabel(state, dispatcher, logger)

	if out.Finished() {
		mh.finishMatch(ctx, state, dispatcher, logger)
	}
}

// finishMatch reveals the seed and records the result. The match terminates
// on the next loop.
func (mh *matchHandler) finishMatch(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	state.Finished = true

	mh.send(state, dispatcher, logger, OpSeedReveal, seedRevealMessage{
		Seed:    state.Seed,
		Salt:    state.Receipt.Salt,
		Receipt: state.Receipt.Token,
	})

	human, computer := state.Engine.Scores()
	result := ports.MatchResult{
		MatchID:        state.MatchID,
		UserID:         state.HumanID,
		Username:       state.Username,
		HumanPoints:    human,
		ComputerPoints: computer,
		HumanWon:       human > computer,
		Seed:           state.Seed,
	}
	if result.HumanWon {
		result.VictoryTerm = domain.VictoryTerm(human - computer)
	} else {
		result.VictoryTerm = domain.VictoryTerm(computer - human)
	}
	logger.Info("finishMatch: Match %s ended %d-%d (%s).", state.MatchID, human, computer, result.VictoryTerm)

	if state.Results == nil {
		return
	}
	if err := state.Results.RecordResult(ctx, result); err != nil {
		logger.Error("finishMatch: Failed to record result: %v", err)
	}
}

func (mh *matchHandler) sendOutput(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, out app.Output) {
	data, err := encodeOutput(out)
	if err != nil {
		logger.Error("sendOutput: Failed to marshal output: %v", err)
		return
	}
	mh.dispatch(state, dispatcher, logger, OpOutput, data)
}

// sendError reports a rejected message to the player only.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, code int, message string) {
	mh.send(state, dispatcher, logger, OpMatchError, matchErrorMessage{Code: code, Message: message})
}

func (mh *matchHandler) send(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, v any) {
	data, err := encodeJSON(v)
	if err != nil {
		logger.Error("send: Failed to marshal op %d: %v", opCode, err)
		return
	}
	mh.dispatch(state, dispatcher, logger, opCode, data)
}

func (mh *matchHandler) dispatch(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, data []byte) {
	if state.Presence == nil {
		logger.Warn("dispatch: No presence to receive op %d", opCode)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, data, []runtime.Presence{state.Presence}, nil, true); err != nil {
		logger.Error("dispatch: Failed to send op %d: %v", opCode, err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := encodeLabel(state.label())
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}

// MatchSignal answers SignalReceipt with the seed receipt token.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, ""
	}
	switch data {
	case SignalReceipt:
		return matchState, matchState.Receipt.Token
	default:
		logger.Warn("MatchSignal: Unknown signal %q", data)
		return matchState, ""
	}
}
