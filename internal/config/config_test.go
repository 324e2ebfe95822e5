package config

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		Logger: LoggerConfig{
			LogLevel:   LevelDebug,
			AppName:    "dreamjob-test",
			OutputFile: "./logs/errors.log",
		},
		App: AppConfig{VacancyExpirationInDays: 128},
		DB:  DBConfig{ConnectionString: "newConnectionString"},
	}

	os.Setenv("MODE", "test")
	os.Setenv("LOG_LEVEL", string(override.Logger.LogLevel))
	os.Setenv("APP_NAME", override.Logger.AppName)
	os.Setenv("VACANCY_EXPIRATION_DAYS", strconv.Itoa(override.App.VacancyExpirationInDays))
	os.Setenv("DB_CONNECTION_STRING", override.DB.ConnectionString)

	cfg := Get()

	assert.Equal(t, override.Logger.LogLevel, cfg.Logger.LogLevel)
	assert.Equal(t, override.Logger.AppName, cfg.Logger.AppName)
	assert.Equal(t, override.App.VacancyExpirationInDays, cfg.App.VacancyExpirationInDays)
	assert.Equal(t, override.DB.ConnectionString, cfg.DB.ConnectionString)
}
