package config

import "github.com/caarlos0/env/v11"

// BonusConfig is read once per account creation; it never affects existing
// balances.
type BonusConfig struct {
	WelcomeBonusEnabled bool    `env:"WELCOME_BONUS_ENABLED" envDefault:"true"`
	BonusAmount         float64 `env:"WELCOME_BONUS_AMOUNT" envDefault:"20"`
}

func LoadBonus() (BonusConfig, error) {
	var cfg BonusConfig
	err := env.Parse(&cfg)
	return cfg, err
}
