package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

const (
	defaultTickRate           = 5
	defaultIdleTimeoutSeconds = 300
	defaultLeaderboardID      = "nzsc_wins"
)

type GameConfig struct {
	// TickRate is the authoritative match loop frequency in ticks per second.
	TickRate           int    `json:"tick_rate"`
	IdleTimeoutSeconds int    `json:"idle_timeout_seconds"`
	LeaderboardID      string `json:"leaderboard_id"`
	PersonasPath       string `json:"personas_path"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}
		cfg, loadErr = parseGameConfig(data)
	})
	return loadErr
}

func parseGameConfig(data []byte) (*GameConfig, error) {
	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if c.TickRate < 0 || c.IdleTimeoutSeconds < 0 {
		return nil, fmt.Errorf("game config: negative tick rate or idle timeout")
	}
	return &c, nil
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// TickRate returns the configured tick rate, or the default.
func TickRate() int {
	if cfg == nil || cfg.TickRate == 0 {
		return defaultTickRate
	}
	return cfg.TickRate
}

// IdleTimeoutTicks converts the idle timeout into match loop ticks.
func IdleTimeoutTicks() int64 {
	seconds := defaultIdleTimeoutSeconds
	if cfg != nil && cfg.IdleTimeoutSeconds > 0 {
		seconds = cfg.IdleTimeoutSeconds
	}
	return int64(seconds) * int64(TickRate())
}

// LeaderboardID returns the leaderboard wins are recorded on.
func LeaderboardID() string {
	if cfg == nil || cfg.LeaderboardID == "" {
		return defaultLeaderboardID
	}
	return cfg.LeaderboardID
}

// PersonasPath returns the configured persona file, if any.
func PersonasPath() string {
	if cfg == nil {
		return ""
	}
	return cfg.PersonasPath
}
