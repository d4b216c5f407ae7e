package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Log      Log
	CORS     CORS
}

type Server struct {
	Port string
	Mode string // gin mode: "debug", "release" or "test"
}

type Database struct {
	Driver   string // "postgres", "mysql", "sqlite" or "memory"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file, ignored by other drivers
	LogLevel string
}

type Log struct {
	Level string
	File  string
}

type CORS struct {
	AllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_MODE", "debug")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_PATH", "questionbank.db")
	v.SetDefault("DATABASE_LOG_LEVEL", "warn")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, falling back to environment")
	}

	cfg := fromViper(v)
	log.Info().
		Str("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("db_driver", cfg.Database.Driver).
		Msg("Config loaded")
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.Mode = v.GetString("SERVER_MODE")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.Path = v.GetString("DATABASE_PATH")
	config.Database.LogLevel = strings.ToLower(v.GetString("DATABASE_LOG_LEVEL"))

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.File = v.GetString("LOG_FILE")

	config.CORS.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return &config
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
