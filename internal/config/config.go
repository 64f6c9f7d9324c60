package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port       int    `yaml:"port"`
	GinMode    string `yaml:"gin_mode"`
	BcryptCost int    `yaml:"bcrypt_cost"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type VerificationConfig struct {
	ResendWindow string `yaml:"resend_window"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	SMTP         SMTPConfig         `yaml:"smtp"`
	Verification VerificationConfig `yaml:"verification"`
}

type Config struct {
	Port          string
	GinMode       string
	BcryptCost    int
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	TokenTTL      time.Duration
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	ResendWindow  time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.Verification.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid verification resend window: %w", err)
	}

	// The signing secret must be present at startup; the environment
	// overrides whatever the file carries.
	secret := env("TOKEN_SECRET", configFile.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("missing token secret: set TOKEN_SECRET or jwt.secret")
	}

	return &Config{
		Port:          fmt.Sprintf("%d", configFile.App.Port),
		GinMode:       configFile.App.GinMode,
		BcryptCost:    configFile.App.BcryptCost,
		DSN:           configFile.Database.DSN,
		RedisAddr:     configFile.Redis.Addr,
		RedisPassword: configFile.Redis.Password,
		RedisDB:       configFile.Redis.DB,
		JWTSecret:     secret,
		JWTIssuer:     configFile.JWT.Issuer,
		TokenTTL:      tokenTTL,
		SMTPHost:      configFile.SMTP.Host,
		SMTPPort:      configFile.SMTP.Port,
		SMTPUser:      configFile.SMTP.Username,
		SMTPPass:      configFile.SMTP.Password,
		SMTPFrom:      configFile.SMTP.From,
		ResendWindow:  resWnd,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
