package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort string
	AppEnv  string

	// DataPath is the sqlite file holding the single snapshot record.
	DataPath string

	JWTSecret string

	// Fixed leader login. Helpers log in with just a name.
	LeaderUsername string
	LeaderPassword string
	LeaderName     string

	// SaveDebounce is the quiet period before a state change is persisted.
	SaveDebounce time.Duration
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	debounceMS, err := strconv.Atoi(get("SAVE_DEBOUNCE_MS", "1000"))
	if err != nil || debounceMS < 0 {
		debounceMS = 1000
	}
	return &Config{
		AppPort:        get("APP_PORT", "8080"),
		AppEnv:         get("APP_ENV", "dev"),
		DataPath:       get("DATA_PATH", "data/mci_kids.db"),
		JWTSecret:      get("JWT_SECRET", "dev-secret"),
		LeaderUsername: get("LEADER_USERNAME", "lider"),
		LeaderPassword: get("LEADER_PASSWORD", "lider"),
		LeaderName:     get("LEADER_NAME", "Líder"),
		SaveDebounce:   time.Duration(debounceMS) * time.Millisecond,
	}
}
