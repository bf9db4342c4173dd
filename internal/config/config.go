package config

import (
	"os"

	"github.com/gorilla/securecookie"
)

type Config struct {
	// HTTP
	Addr      string
	StaticDir string

	// REST backend the client talks to
	APIBaseURL string

	// Cookie session auth key. Generated per process when unset, which
	// logs everyone out on restart.
	SessionKey []byte
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		Addr:       getEnv("HTTP_ADDR", ":8080"),
		StaticDir:  getEnv("STATIC_DIR", "./static"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:3000"),
		SessionKey: sessionKey(),
	}
}

func sessionKey() []byte {
	if v := os.Getenv("SESSION_KEY"); v != "" {
		return []byte(v)
	}
	return securecookie.GenerateRandomKey(32)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
