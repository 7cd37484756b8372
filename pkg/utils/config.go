package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

const minSecretLength = 32

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Bcrypt   BcryptConfig
	Seed     SeedConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret           string
	AccessTTLMinutes int
	RefreshTTLDays   int
}

type BcryptConfig struct {
	Cost int
}

// SeedConfig describes the pre-provisioned employee account. Employees are
// never created through the public registration endpoint.
type SeedConfig struct {
	EmployeeUsername string
	EmployeeEmail    string
	EmployeePassword string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 15)
	viper.SetDefault("REFRESH_TOKEN_TTL_DAYS", 30)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:           viper.GetString("JWT_SECRET"),
			AccessTTLMinutes: viper.GetInt("ACCESS_TOKEN_TTL_MINUTES"),
			RefreshTTLDays:   viper.GetInt("REFRESH_TOKEN_TTL_DAYS"),
		},
		Bcrypt: BcryptConfig{
			Cost: viper.GetInt("BCRYPT_COST"),
		},
		Seed: SeedConfig{
			EmployeeUsername: viper.GetString("SEED_EMPLOYEE_USERNAME"),
			EmployeeEmail:    viper.GetString("SEED_EMPLOYEE_EMAIL"),
			EmployeePassword: viper.GetString("SEED_EMPLOYEE_PASSWORD"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
	}

	// Refuse to start with a weak or missing signing secret.
	if len(config.JWT.Secret) < minSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLength)
	}

	return config, nil
}
