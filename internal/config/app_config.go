package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	VacancyExpirationInDays int `mapstructure:"vacancy_expiration_days"`
}

func (config AppConfig) validate() error {
	if config.VacancyExpirationInDays <= 0 {
		return fmt.Errorf("vacancy_expiration_days must be greater than zero")
	}
	return nil
}

func (config AppConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("app.vacancy_expiration_days", "VACANCY_EXPIRATION_DAYS")
}
