package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	AppEnv         string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	FrontendURL    string
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		DbHost:         getEnv("DB_HOST", "localhost"),
		DbPort:         getEnv("DB_PORT", "3306"),
		DbUser:         getEnv("DB_USER", "root"),
		DbPassword:     getEnv("DB_PASSWORD", ""),
		DbName:         getEnv("DB_NAME", "todo_db"),
		DbParams:       getEnv("DB_PARAMS", "parseTime=true&multiStatements=true"),
		FrontendURL:    getEnv("FRONTEND_URL", "*"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

// DevMode controls whether internal error detail is echoed to clients.
func (c *Config) DevMode() bool {
	return c.AppEnv != "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
