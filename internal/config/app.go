package config

type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
	Bonus  BonusConfig
	OTP    OTPConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	bonusCfg, err := LoadBonus()
	if err != nil {
		return AppConfig{}, err
	}
	otpCfg, err := LoadOTP()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Log:    logCfg,
		Bonus:  bonusCfg,
		OTP:    otpCfg,
	}, nil
}
