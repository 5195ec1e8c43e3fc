package nakama

import (
	"context"
	"database/sql"

	"nzsc/internal/app"
	"nzsc/internal/bot"
	"nzsc/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs, the leaderboard and the match handler for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("InitModule: Could not load game config, using defaults: %v", err)
	}

	personas := config.PersonasPath()
	if personas == "" {
		personas = defaultPersonasPath
	}
	if err := bot.LoadPersonas(personas); err != nil {
		logger.Warn("InitModule: Could not load personas: %v", err)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret, issuer := env[EnvReceiptSecret], env[EnvReceiptIssuer]
	if secret == "" || issuer == "" {
		logger.Warn("InitModule: Receipt credentials missing from env, seed receipts disabled.")
	} else {
		receiptService = app.NewReceiptService(secret, issuer)
	}

	if err := EnsureLeaderboard(ctx, nk, config.LeaderboardID()); err != nil {
		logger.Error("InitModule: %v", err)
		return err
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameNZSC, NewMatch); err != nil {
		return err
	}

	logger.Info("NZSC Go module loaded.")
	return nil
}
