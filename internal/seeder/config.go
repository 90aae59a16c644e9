package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo data generator settings.
type Config struct {
	// Seeded users log in with PasswordPrefix followed by their number.
	PasswordPrefix string `yaml:"password_prefix" env:"SEEDER_PASSWORD_PREFIX" env-default:"pass"`
	BcryptCost     int    `yaml:"bcrypt_cost"     env:"SEEDER_BCRYPT_COST"     env-default:"4"`
	// RandomSeed makes a run reproducible. Zero picks a fresh seed.
	RandomSeed uint64 `yaml:"random_seed" env:"SEEDER_RANDOM_SEED"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
