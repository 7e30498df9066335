package config

// Config holds runtime settings for the onboarding CLI.
type Config struct {
	// DatabasePath is the SQLite file the profile lives in. ":memory:"
	// keeps everything in the process.
	DatabasePath string `env:"ONBOARDING_DB"`
	LogLevel     string `env:"ONBOARDING_LOG_LEVEL"`
	LogFormat    string `env:"ONBOARDING_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "onboarding.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, the JSON file, the
// environment and the flags in os.Args, in that order.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
