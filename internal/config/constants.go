package config

const (
	// Configuration file paths
	ConfigPathGame  = "configs/game.json"
	ConfigPathItems = "configs/items.json"
)

// Game defaults applied when a key is missing from the game config file
const (
	DefaultInitialCoins = 200
	DefaultMinReward    = 100
	DefaultMaxReward    = 300
)

// EnvironmentProduction is the ENVIRONMENT value that enables production-only checks
const EnvironmentProduction = "prod"
