package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/osse101/FishingBot_Go/internal/validation"
)

// GameConfig holds the tunable game rules. It is immutable once built:
// pass it by value and read bonuses through BonusFor.
type GameConfig struct {
	InitialCoins int
	MinReward    int
	MaxReward    int
	bonuses      map[int]int
}

// gameFile mirrors configs/game.json. Pointers distinguish missing keys from zero.
type gameFile struct {
	User struct {
		InitialCoins *int `json:"initial_coins"`
	} `json:"user"`
	SignIn struct {
		MinReward          *int                       `json:"min_reward"`
		MaxReward          *int                       `json:"max_reward"`
		ConsecutiveBonuses map[string]json.RawMessage `json:"consecutive_bonuses"`
	} `json:"signin"`
}

// DefaultGameConfig returns the rules used when no config file is present
func DefaultGameConfig() GameConfig {
	return GameConfig{
		InitialCoins: DefaultInitialCoins,
		MinReward:    DefaultMinReward,
		MaxReward:    DefaultMaxReward,
		bonuses:      map[int]int{},
	}
}

// NewGameConfig validates the rules and copies the bonus table
func NewGameConfig(initialCoins, minReward, maxReward int, bonuses map[int]int) (GameConfig, error) {
	if minReward > maxReward {
		return GameConfig{}, fmt.Errorf("signin.min_reward (%d) exceeds signin.max_reward (%d)", minReward, maxReward)
	}
	copied := make(map[int]int, len(bonuses))
	for day, bonus := range bonuses {
		copied[day] = bonus
	}
	return GameConfig{
		InitialCoins: initialCoins,
		MinReward:    minReward,
		MaxReward:    maxReward,
		bonuses:      copied,
	}, nil
}

// BonusFor returns the extra coins for reaching a streak of days, or 0
func (g GameConfig) BonusFor(days int) int {
	return g.bonuses[days]
}

// Bonuses returns a copy of the streak bonus table
func (g GameConfig) Bonuses() map[int]int {
	out := make(map[int]int, len(g.bonuses))
	for day, bonus := range g.bonuses {
		out[day] = bonus
	}
	return out
}

// LoadGameConfig reads a game config file, checks it against the game schema and parses it
func LoadGameConfig(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	if err := validation.NewSchemaValidator().ValidateBytes(data, validation.GameSchema); err != nil {
		return GameConfig{}, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig parses game config JSON. Missing keys fall back to defaults.
// Bonus values may be JSON numbers or numeric strings.
func ParseGameConfig(data []byte) (GameConfig, error) {
	var f gameFile
	if err := json.Unmarshal(data, &f); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse game config: %w", err)
	}

	initial := DefaultInitialCoins
	if f.User.InitialCoins != nil {
		initial = *f.User.InitialCoins
	}
	minReward := DefaultMinReward
	if f.SignIn.MinReward != nil {
		minReward = *f.SignIn.MinReward
	}
	maxReward := DefaultMaxReward
	if f.SignIn.MaxReward != nil {
		maxReward = *f.SignIn.MaxReward
	}

	bonuses := make(map[int]int, len(f.SignIn.ConsecutiveBonuses))
	for key, raw := range f.SignIn.ConsecutiveBonuses {
		day, err := strconv.Atoi(key)
		if err != nil {
			return GameConfig{}, fmt.Errorf("invalid consecutive_bonuses key %q: %w", key, err)
		}
		// "07" and "7" would otherwise collide on day 7
		if strconv.Itoa(day) != key {
			return GameConfig{}, fmt.Errorf("invalid consecutive_bonuses key %q: use %q", key, strconv.Itoa(day))
		}
		bonus, err := parseIntValue(raw)
		if err != nil {
			return GameConfig{}, fmt.Errorf("invalid consecutive_bonuses value for day %d: %w", day, err)
		}
		bonuses[day] = bonus
	}

	return NewGameConfig(initial, minReward, maxReward, bonuses)
}

func parseIntValue(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("expected integer, got %s", string(raw))
	}
	return strconv.Atoi(s)
}
