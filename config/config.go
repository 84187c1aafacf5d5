package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Catalog  Catalog
	Redis    Redis
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret         string
	TokenTTLHours     int
	AdminPassword     string
	AdminPasswordHash string
}

type Catalog struct {
	// Path to a question bank YAML; empty uses the embedded default bank.
	Path string
}

type Redis struct {
	// Addr enables the report cache when set; empty disables it.
	Addr            string
	ReportTTLMinute int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_TTL_HOURS", 12)
	viper.SetDefault("REPORT_CACHE_TTL_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTLHours = viper.GetInt("JWT_TTL_HOURS")
	config.Auth.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	config.Auth.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")

	config.Catalog.Path = viper.GetString("CATALOG_PATH")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.ReportTTLMinute = viper.GetInt("REPORT_CACHE_TTL_MINUTES")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
