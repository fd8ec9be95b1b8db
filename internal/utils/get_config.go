package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort     string `yaml:"APP_PORT"`
	Development bool   `yaml:"DEVELOPMENT"`

	// External Masterchef backend
	BackendAPIURL  string `yaml:"BACKEND_API_URL"`
	BackendTimeout int    `yaml:"BACKEND_TIMEOUT_SECONDS"`

	// Session store database
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Session cookie
	SessionCookie   string `yaml:"SESSION_COOKIE"`
	SessionTTLHours int    `yaml:"SESSION_TTL_HOURS"`
	CookieSecure    bool   `yaml:"COOKIE_SECURE"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "BACKEND_API_URL":
		return config.BackendAPIURL
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SESSION_COOKIE":
		return config.SessionCookie
	default:
		return ""
	}
}

func GetConfigInt(key string) int {
	switch key {
	case "BACKEND_TIMEOUT_SECONDS":
		return config.BackendTimeout
	case "SESSION_TTL_HOURS":
		return config.SessionTTLHours
	default:
		return 0
	}
}

func GetConfigBool(key string) bool {
	switch key {
	case "DEVELOPMENT":
		return config.Development
	case "COOKIE_SECURE":
		return config.CookieSecure
	default:
		return false
	}
}
