package config

import "os"

// Config is read once at process start and never mutated afterwards.
type Config struct {
	// APIBaseURL is where the tracker UI reaches the job applications API.
	APIBaseURL string
	// HTTPPort and PostgresDSN are only used by the API server binary.
	HTTPPort    string
	PostgresDSN string
}

func Load() *Config {
	return &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		PostgresDSN: getEnv("DATABASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
