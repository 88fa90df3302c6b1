package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Remote RemoteAPIConfig
	Redis  RedisConfig
	JWT    JWTConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Timezone string
}

type RemoteAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TurnsTTL time.Duration
}

type JWTConfig struct {
	Secret string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	remoteTimeout, err := time.ParseDuration(viper.GetString("REMOTE_API_TIMEOUT"))
	if err != nil {
		remoteTimeout = 10 * time.Second
	}

	turnsTTL, err := time.ParseDuration(viper.GetString("REDIS_TURNS_TTL"))
	if err != nil {
		turnsTTL = 30 * time.Second
	}

	timezone := viper.GetString("APP_TIMEZONE")
	if timezone == "" {
		timezone = "America/Argentina/Buenos_Aires"
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			Timezone: timezone,
		},
		Remote: RemoteAPIConfig{
			BaseURL: viper.GetString("REMOTE_API_BASE_URL"),
			Timeout: remoteTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			TurnsTTL: turnsTTL,
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
	}

	return config, nil
}
