package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type OTPConfig struct {
	TTL         time.Duration `env:"OTP_TTL" envDefault:"3m"`
	MaxAttempts int           `env:"OTP_MAX_ATTEMPTS" envDefault:"3"`
}

func LoadOTP() (OTPConfig, error) {
	var cfg OTPConfig
	err := env.Parse(&cfg)
	return cfg, err
}
