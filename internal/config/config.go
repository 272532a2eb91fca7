package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything read from config.yaml plus the env-backed
// secrets. Loaded once at startup.
type Config struct {
	SiteTitle  string `mapstructure:"siteTitle"`
	BaseURL    string `mapstructure:"baseURL"`
	Addr       string `mapstructure:"addr"`
	DataDir    string `mapstructure:"dataDir"`
	ContentDir string `mapstructure:"contentDir"`
	Theme      Theme  `mapstructure:"theme"`

	SMTP  SMTP
	Admin Admin
}

// Theme is the styling section of config.yaml.
type Theme struct {
	Primary string `mapstructure:"primary"`
}

// SMTP carries the contact-form mail settings. Credentials come from the
// environment only, never from config.yaml.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Admin carries the dashboard login credentials from the environment.
type Admin struct {
	Username string
	Password string
	DBPath   string
}

// Load reads config.yaml (path overridable via cfgFile) and the
// environment. Malformed config is an error; callers treat it as fatal.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetDefault("siteTitle", "Portfolio")
	v.SetDefault("addr", ":8080")
	v.SetDefault("dataDir", "data")
	v.SetDefault("contentDir", "content/posts")
	v.SetDefault("theme.primary", "primary-blue")

	if err := v.ReadInConfig(); err != nil {
		// A missing file just means defaults + env; anything else is a
		// real config problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// PORT beats the yaml addr so the usual PaaS convention still works.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = fixAddr(port)
	} else {
		cfg.Addr = fixAddr(cfg.Addr)
	}

	cfg.SMTP = SMTP{
		Host: getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port: getEnv("SMTP_PORT", "587"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		To:   os.Getenv("TO_EMAIL"),
	}
	cfg.Admin = Admin{
		Username: os.Getenv("ADMIN_USERNAME"),
		Password: os.Getenv("ADMIN_PASSWORD"),
		DBPath:   getEnv("METRICS_DB", "metrics.db"),
	}

	return &cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fixAddr(addr string) string {
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
