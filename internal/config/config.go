package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	OTP      OTPConfig
	Log      LogConfig
	CORS     CORSConfig
	Server   ServerConfig
}

type AppConfig struct {
	Env   string
	Port  int
	Name  string
	Debug bool
}

type DatabaseConfig struct {
	URL                string
	MaxConnections     int
	MaxIdleConnections int
	ConnectionLifetime time.Duration
}

// SMTPConfig configures the outbound OTP mail transport. The service runs
// fine without it: an empty From or Password marks the mailer unconfigured
// and OTP issuance falls back to server-log delivery.
type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	Password string
}

type OTPConfig struct {
	TTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	IdleTimeout    int
	MaxHeaderBytes int
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config

	config.App = AppConfig{
		Env:   viper.GetString("APP_ENV"),
		Port:  viper.GetInt("APP_PORT"),
		Name:  viper.GetString("APP_NAME"),
		Debug: viper.GetBool("APP_DEBUG"),
	}

	config.Database = DatabaseConfig{
		URL:                viper.GetString("DATABASE_URL"),
		MaxConnections:     viper.GetInt("DB_MAX_CONNECTIONS"),
		MaxIdleConnections: viper.GetInt("DB_MAX_IDLE_CONNECTIONS"),
		ConnectionLifetime: time.Duration(viper.GetInt("DB_CONNECTION_LIFETIME_SECONDS")) * time.Second,
	}

	config.SMTP = SMTPConfig{
		Host:     viper.GetString("SMTP_HOST"),
		Port:     viper.GetInt("SMTP_PORT"),
		From:     viper.GetString("SMTP_FROM"),
		Password: viper.GetString("SMTP_PASSWORD"),
	}

	config.OTP = OTPConfig{
		TTL: time.Duration(viper.GetInt("OTP_TTL_MINUTES")) * time.Minute,
	}

	config.Log = LogConfig{
		Level:  viper.GetString("LOG_LEVEL"),
		Format: viper.GetString("LOG_FORMAT"),
		Output: viper.GetString("LOG_OUTPUT"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins:   viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		AllowedMethods:   viper.GetStringSlice("CORS_ALLOWED_METHODS"),
		AllowedHeaders:   viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		ExposeHeaders:    viper.GetStringSlice("CORS_EXPOSE_HEADERS"),
		AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
		MaxAge:           viper.GetInt("CORS_MAX_AGE"),
	}

	config.Server = ServerConfig{
		ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT_SECONDS"),
		WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT_SECONDS"),
		IdleTimeout:    viper.GetInt("SERVER_IDLE_TIMEOUT_SECONDS"),
		MaxHeaderBytes: viper.GetInt("SERVER_MAX_HEADER_BYTES"),
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", 5000)
	viper.SetDefault("APP_NAME", "notesmate-api")
	viper.SetDefault("APP_DEBUG", false)

	viper.SetDefault("DB_MAX_CONNECTIONS", 100)
	viper.SetDefault("DB_MAX_IDLE_CONNECTIONS", 10)
	viper.SetDefault("DB_CONNECTION_LIFETIME_SECONDS", 300)

	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)

	viper.SetDefault("OTP_TTL_MINUTES", 5)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("LOG_OUTPUT", "stdout")

	viper.SetDefault("CORS_MAX_AGE", 86400)

	viper.SetDefault("SERVER_READ_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SERVER_WRITE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SERVER_IDLE_TIMEOUT_SECONDS", 60)
	viper.SetDefault("SERVER_MAX_HEADER_BYTES", 1048576)
}
